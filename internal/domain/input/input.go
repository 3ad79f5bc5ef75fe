// Package input defines the logical action set the simulation consumes.
//
// Device bindings live in the adapters; the core only sees a Set sampled
// once per tick.
package input

import (
	"fmt"
	"strings"
)

// Action is a logical player action
type Action uint8

const (
	MoveLeft Action = 1 << iota
	MoveRight
	Jump
	ShootFire
)

var actionNames = []struct {
	action Action
	name   string
}{
	{MoveLeft, "left"},
	{MoveRight, "right"},
	{Jump, "jump"},
	{ShootFire, "fire"},
}

// String returns the action name
func (a Action) String() string {
	for _, n := range actionNames {
		if n.action == a {
			return n.name
		}
	}
	return "unknown"
}

// Set is an immutable snapshot of pressed actions
type Set uint8

// None is the empty set
const None Set = 0

// Of builds a set from actions
func Of(actions ...Action) Set {
	var s Set
	for _, a := range actions {
		s |= Set(a)
	}
	return s
}

// Has reports whether a is pressed
func (s Set) Has(a Action) bool {
	return s&Set(a) != 0
}

// With returns the set with a pressed
func (s Set) With(a Action) Set {
	return s | Set(a)
}

// Without returns the set with a released
func (s Set) Without(a Action) Set {
	return s &^ Set(a)
}

// Pressed returns actions in s that were not in prev
func (s Set) Pressed(prev Set) Set {
	return s &^ prev
}

// String returns a comma separated action list, e.g. "left,jump"
func (s Set) String() string {
	var parts []string
	for _, n := range actionNames {
		if s.Has(n.action) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseSet parses the String form. Empty input is the empty set.
func ParseSet(text string) (Set, error) {
	var s Set
	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(strings.ToLower(field))
		if field == "" {
			continue
		}
		found := false
		for _, n := range actionNames {
			if n.name == field {
				s = s.With(n.action)
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("unknown action %q", field)
		}
	}
	return s, nil
}
