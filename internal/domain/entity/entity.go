package entity

// EntityID is a unique identifier for an entity within one world
type EntityID uint32

// Entity is the common envelope shared by every simulated object.
// Kind-specific state lives in Data; terrain kinds carry no payload.
type Entity struct {
	ID   EntityID
	Kind Kind
	Rect

	VX, VY float64

	// Active is false once the entity is removed from simulation.
	// Inactive entities are skipped for the rest of the tick and pruned after it.
	Active bool
	Solid  bool

	Data Payload
}

// New creates an active entity of the given kind with its default solidity
func New(kind Kind, box Rect, data Payload) *Entity {
	return &Entity{
		Kind:   kind,
		Rect:   box,
		Active: true,
		Solid:  kind.IsSolid(),
		Data:   data,
	}
}

// Bounds returns the entity's bounding box
func (e *Entity) Bounds() Rect {
	return e.Rect
}

// Clone returns a deep copy of the entity and its payload
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := *e
	if e.Data != nil {
		c.Data = e.Data.clonePayload()
	}
	return &c
}

// Deactivate removes the entity from simulation
func (e *Entity) Deactivate() {
	e.Active = false
}

// Player returns the player payload, or nil
func (e *Entity) Player() *PlayerState {
	p, _ := e.Data.(*PlayerState)
	return p
}

// Patrol returns the ground patrol payload, or nil
func (e *Entity) Patrol() *Patrol {
	p, _ := e.Data.(*Patrol)
	return p
}

// Shell returns the koopa payload, or nil
func (e *Entity) Shell() *Shell {
	s, _ := e.Data.(*Shell)
	return s
}

// Oscillator returns the vertical patrol payload, or nil
func (e *Entity) Oscillator() *Oscillator {
	o, _ := e.Data.(*Oscillator)
	return o
}

// Projectile returns the fireball payload, or nil
func (e *Entity) Projectile() *Projectile {
	p, _ := e.Data.(*Projectile)
	return p
}

// Block returns the block payload, or nil
func (e *Entity) Block() *Block {
	b, _ := e.Data.(*Block)
	return b
}

// Falling returns the popped-coin payload, or nil. Static coins have none.
func (e *Entity) Falling() *Falling {
	f, _ := e.Data.(*Falling)
	return f
}

// Sprout returns the rising-flower payload, or nil
func (e *Entity) Sprout() *Sprout {
	s, _ := e.Data.(*Sprout)
	return s
}

// IsShell reports whether the entity is a koopa in shell form
func (e *Entity) IsShell() bool {
	s := e.Shell()
	return e.Kind == KindKoopa && s != nil && s.Mode != ShellNone
}
