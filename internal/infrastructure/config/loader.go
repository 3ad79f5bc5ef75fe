package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultFS embed.FS

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Levels  []*LevelConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Default returns a loader over the embedded defaults
func Default() *Loader {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		// embed paths are fixed at build time
		panic(err)
	}
	return NewFSLoader(sub, "defaults")
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads game.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg PhysicsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads levels/<name>.yaml
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join("levels", name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadLevels loads every levels/*.yaml file ordered by level id
func (l *Loader) LoadLevels() ([]*LevelConfig, error) {
	entries, err := fs.ReadDir(l.fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	var levels []*LevelConfig
	seen := make(map[int]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		cfg, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[cfg.ID]; dup {
			return nil, fmt.Errorf("levels %s and %s share id %d", prev, name, cfg.ID)
		}
		seen[cfg.ID] = name
		levels = append(levels, cfg)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files under levels/")
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].ID < levels[j].ID })
	return levels, nil
}

// LoadAll loads game.yaml and every level
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Levels:  levels,
	}, nil
}
