package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for kind names outside the closed set
var ErrUnknownKind = errors.New("unknown entity kind")

// Kind is the closed set of simulated object types
type Kind int

const (
	KindPlayer Kind = iota
	KindGoomba
	KindKoopa
	KindPiranha
	KindMushroom
	KindFireFlower
	KindOneUp
	KindStarman
	KindCoin
	KindFireball
	KindElevator
	KindQuestion
	KindBrick
	KindPipe
	KindGround
	KindFlag
)

var kindNames = [...]string{
	KindPlayer:     "player",
	KindGoomba:     "goomba",
	KindKoopa:      "koopa",
	KindPiranha:    "piranha",
	KindMushroom:   "mushroom",
	KindFireFlower: "fireflower",
	KindOneUp:      "oneup",
	KindStarman:    "starman",
	KindCoin:       "coin",
	KindFireball:   "fireball",
	KindElevator:   "elevator",
	KindQuestion:   "question",
	KindBrick:      "brick",
	KindPipe:       "pipe",
	KindGround:     "ground",
	KindFlag:       "flag",
}

// String returns the level-file name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a level-file kind name
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// IsEnemy reports whether the kind can hurt the player and be killed
func (k Kind) IsEnemy() bool {
	switch k {
	case KindGoomba, KindKoopa, KindPiranha:
		return true
	}
	return false
}

// IsItem reports whether the kind is a collectible power-up
func (k Kind) IsItem() bool {
	switch k {
	case KindMushroom, KindFireFlower, KindOneUp, KindStarman:
		return true
	}
	return false
}

// IsBlock reports whether the kind reacts to a hit from below
func (k Kind) IsBlock() bool {
	return k == KindQuestion || k == KindBrick
}

// IsSolid reports whether entities of this kind collide as terrain
func (k Kind) IsSolid() bool {
	switch k {
	case KindQuestion, KindBrick, KindPipe, KindGround, KindElevator:
		return true
	}
	return false
}
