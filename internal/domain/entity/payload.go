package entity

// Payload is the kind-specific part of an entity.
// The set of implementations is closed to this package.
type Payload interface {
	clonePayload() Payload
}

// PlayerState holds the player's power and control state
type PlayerState struct {
	Tier            Tier
	InvincibleTicks int
	Grounded        bool
	FacingRight     bool
	FireCooldown    int

	// Top-left corner before this tick's integration
	PrevX, PrevY float64
}

func (p *PlayerState) clonePayload() Payload { c := *p; return &c }

// Invincible reports whether contact damage is suppressed
func (p *PlayerState) Invincible() bool {
	return p.InvincibleTicks > 0
}

// Patrol is a ground walker heading left (-1) or right (+1)
type Patrol struct {
	Direction float64
}

func (p *Patrol) clonePayload() Payload { c := *p; return &c }

// ShellMode is the koopa sub-state
type ShellMode int

const (
	ShellNone ShellMode = iota // walking
	ShellIdle
	ShellSliding
)

// String returns the mode name
func (m ShellMode) String() string {
	switch m {
	case ShellNone:
		return "walking"
	case ShellIdle:
		return "idle"
	case ShellSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Shell is the koopa payload
type Shell struct {
	Direction float64
	Mode      ShellMode

	// Ticks during which the kicking player cannot be hurt by the shell
	KickGrace int
}

func (s *Shell) clonePayload() Payload { c := *s; return &c }

// Oscillator bounces an entity vertically between MinY and MaxY
type Oscillator struct {
	MinY, MaxY float64
	Speed      float64
}

func (o *Oscillator) clonePayload() Payload { c := *o; return &c }

// Projectile tracks a fireball's floor bounces
type Projectile struct {
	Bounces int
}

func (p *Projectile) clonePayload() Payload { c := *p; return &c }

// Contents is what a question block yields
type Contents string

const (
	ContentsRandom   Contents = ""
	ContentsCoin     Contents = "coin"
	ContentsMushroom Contents = "mushroom"
	ContentsPowerUp  Contents = "powerup" // fire flower when big, else mushroom
	ContentsOneUp    Contents = "oneup"
	ContentsStar     Contents = "star"
)

// Valid reports whether c is a known policy
func (c Contents) Valid() bool {
	switch c {
	case ContentsRandom, ContentsCoin, ContentsMushroom, ContentsPowerUp, ContentsOneUp, ContentsStar:
		return true
	}
	return false
}

// Block is the payload for question blocks and bricks
type Block struct {
	Contents Contents
	// Empty marks a question block that already gave up its contents
	Empty  bool
	Broken bool
}

func (b *Block) clonePayload() Payload { c := *b; return &c }

// Falling is a coin popped out of a block
type Falling struct {
	Age int
}

func (f *Falling) clonePayload() Payload { c := *f; return &c }

// Sprout is a fire flower rising out of its block
type Sprout struct {
	TargetY float64
}

func (s *Sprout) clonePayload() Payload { c := *s; return &c }
