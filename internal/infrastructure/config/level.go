package config

// LevelConfig is one levels/*.yaml file
type LevelConfig struct {
	ID        int           `yaml:"id"`
	Name      string        `yaml:"name"`
	Width     float64       `yaml:"width"`
	TimeLimit int           `yaml:"timeLimit"`
	Entities  []SpawnConfig `yaml:"entities"`
}

// SpawnConfig places one entity. Omitted optional fields default to zero,
// or to the kind's configured size for w and h.
type SpawnConfig struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`

	W *float64 `yaml:"w,omitempty"`
	H *float64 `yaml:"h,omitempty"`

	VX        float64 `yaml:"vx,omitempty"`
	VY        float64 `yaml:"vy,omitempty"`
	Direction float64 `yaml:"direction,omitempty"`

	MinY *float64 `yaml:"minY,omitempty"`
	MaxY *float64 `yaml:"maxY,omitempty"`

	Contents string `yaml:"contents,omitempty"`

	// Shell places a koopa as an idle shell resting on the floor
	Shell bool `yaml:"shell,omitempty"`
}
