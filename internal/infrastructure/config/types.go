package config

// PhysicsConfig is the root config for game.yaml.
// Distances are world units, speeds are units per tick, durations are ticks.
type PhysicsConfig struct {
	Display  DisplayConfig         `yaml:"display"`
	World    WorldConfig           `yaml:"world"`
	Player   PlayerConfig          `yaml:"player"`
	Enemies  EnemyConfig           `yaml:"enemies"`
	Items    ItemConfig            `yaml:"items"`
	Fireball FireballConfig        `yaml:"fireball"`
	Scoring  ScoringConfig         `yaml:"scoring"`
	Timers   TimerConfig           `yaml:"timers"`
	Sizes    map[string]SizeConfig `yaml:"sizes"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

type WorldConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminalVelocity"`
	FloorY           float64 `yaml:"floorY"`
	StartLives       int     `yaml:"startLives"`
	CoinsPerLife     int     `yaml:"coinsPerLife"`
}

type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	SmallHeight  float64 `yaml:"smallHeight"`
	BigHeight    float64 `yaml:"bigHeight"`
	WalkSpeed    float64 `yaml:"walkSpeed"`
	JumpVelocity float64 `yaml:"jumpVelocity"`

	// Downward speed after bumping a block from below
	HeadBumpSpeed float64 `yaml:"headBumpSpeed"`
	// How far the previous top edge may sit inside a block and still count as a hit from below
	HitTolerance float64 `yaml:"hitTolerance"`
	// Minimum height of the previous top edge above an enemy's top for a stomp
	StompMargin float64 `yaml:"stompMargin"`
	StompBounce float64 `yaml:"stompBounce"`
}

type EnemyConfig struct {
	GoombaSpeed   float64 `yaml:"goombaSpeed"`
	KoopaSpeed    float64 `yaml:"koopaSpeed"`
	ShellSpeed    float64 `yaml:"shellSpeed"`
	ShellHeight   float64 `yaml:"shellHeight"`
	PiranhaSpeed  float64 `yaml:"piranhaSpeed"`
	ElevatorSpeed float64 `yaml:"elevatorSpeed"`
	KickGrace     int     `yaml:"kickGrace"`
	// Number of steps probed ahead before a walker turns around
	LookAhead float64 `yaml:"lookAhead"`
}

type ItemConfig struct {
	MushroomSpeed      float64       `yaml:"mushroomSpeed"`
	StarSpeed          float64       `yaml:"starSpeed"`
	StarHopVelocity    float64       `yaml:"starHopVelocity"`
	FlowerRiseSpeed    float64       `yaml:"flowerRiseSpeed"`
	CoinPopVelocity    float64       `yaml:"coinPopVelocity"`
	CoinExpireVelocity float64       `yaml:"coinExpireVelocity"`
	CoinMaxAge         int           `yaml:"coinMaxAge"`
	RandomWeights      RandomWeights `yaml:"randomWeights"`
}

// RandomWeights is the fallback distribution for question blocks without contents
type RandomWeights struct {
	Coin     int `yaml:"coin"`
	Mushroom int `yaml:"mushroom"`
	OneUp    int `yaml:"oneUp"`
}

type FireballConfig struct {
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	DropSpeed   float64 `yaml:"dropSpeed"`
	Restitution float64 `yaml:"restitution"`
	MaxBounces  int     `yaml:"maxBounces"`
	MaxAlive    int     `yaml:"maxAlive"`
	Cooldown    int     `yaml:"cooldown"`
}

type ScoringConfig struct {
	Stomp          int `yaml:"stomp"`
	ShellKick      int `yaml:"shellKick"`
	ShellKill      int `yaml:"shellKill"`
	FireballKill   int `yaml:"fireballKill"`
	InvincibleKill int `yaml:"invincibleKill"`
	Coin           int `yaml:"coin"`
	Mushroom       int `yaml:"mushroom"`
	FireFlower     int `yaml:"fireFlower"`
	OneUp          int `yaml:"oneUp"`
	Starman        int `yaml:"starman"`
	Brick          int `yaml:"brick"`
	LevelBonus     int `yaml:"levelBonus"`
	FinalBonus     int `yaml:"finalBonus"`
}

type TimerConfig struct {
	DamageInvincibility  int `yaml:"damageInvincibility"`
	RespawnInvincibility int `yaml:"respawnInvincibility"`
	StarInvincibility    int `yaml:"starInvincibility"`
	TransitionDelay      int `yaml:"transitionDelay"`
}

// SizeConfig is the default box of a kind when a level omits it
type SizeConfig struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Size returns the default size for a kind name
func (c *PhysicsConfig) Size(kind string) (SizeConfig, bool) {
	s, ok := c.Sizes[kind]
	return s, ok
}

// PlayerHeight returns the body height for the small or big form
func (c *PhysicsConfig) PlayerHeight(big bool) float64 {
	if big {
		return c.Player.BigHeight
	}
	return c.Player.SmallHeight
}
