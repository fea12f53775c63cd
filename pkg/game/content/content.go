// Package content holds the résumé data, NPC roster, quests and tile map.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CVFile  = "cv.yaml"
	MapFile = "map.yaml"
)

// ErrInvalid is wrapped by Validate failures
var ErrInvalid = errors.New("content: invalid")

//go:embed data/*.yaml
var dataFS embed.FS

// Personal is the owner's contact card
type Personal struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Website  string `yaml:"website"`
}

// Skill is one technical skill
type Skill struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Level       string `yaml:"level"`
	Description string `yaml:"description"`
}

// Experience is one job
type Experience struct {
	ID           string   `yaml:"id"`
	Company      string   `yaml:"company"`
	Position     string   `yaml:"position"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Skills       []string `yaml:"skills"`
}

// Project is one portfolio project
type Project struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Status       string   `yaml:"status"`
	Highlights   []string `yaml:"highlights"`
}

// Tile is a map cell reference
type Tile struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// NPC is a character the player can talk to
type NPC struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Dialogue string `yaml:"dialogue"`
	Skill    string `yaml:"skill"`
	Quest    string `yaml:"quest"`
	Area     string `yaml:"area"`
	Tile     Tile   `yaml:"tile"`
}

// Quest is a goal met by collecting skills or completing NPC quests
type Quest struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
	Reward       string   `yaml:"reward"`
}

// CV is the whole résumé
type CV struct {
	Personal   Personal     `yaml:"personal"`
	Skills     []Skill      `yaml:"skills"`
	Experience []Experience `yaml:"experience"`
	Projects   []Project    `yaml:"projects"`
	NPCs       []NPC        `yaml:"npcs"`
	Quests     []Quest      `yaml:"quests"`
}

// Bundle is everything a scene needs
type Bundle struct {
	CV  CV
	Map Map
}

// Embedded returns the built-in content files
func Embedded() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads content from dir, falling back to the embedded copy per file
// when dir is empty or lacks that file.
func Load(dir string) (*Bundle, error) {
	var disk fs.FS
	if dir != "" {
		disk = os.DirFS(dir)
	}
	return load(disk, Embedded())
}

// LoadFS reads content only from fsys
func LoadFS(fsys fs.FS) (*Bundle, error) {
	return load(nil, fsys)
}

func load(disk, fallback fs.FS) (*Bundle, error) {
	var b Bundle
	if err := decode(disk, fallback, CVFile, &b.CV); err != nil {
		return nil, err
	}

	var spec mapSpec
	if err := decode(disk, fallback, MapFile, &spec); err != nil {
		return nil, err
	}
	m, err := spec.build()
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", MapFile, err)
	}
	b.Map = m

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func decode(disk, fallback fs.FS, name string, out any) error {
	data, err := readFirst(name, disk, fallback)
	if err != nil {
		return fmt.Errorf("content: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("content: unmarshal %s: %w", name, err)
	}
	return nil
}

func readFirst(name string, sources ...fs.FS) ([]byte, error) {
	var lastErr error = fs.ErrNotExist
	for _, src := range sources {
		if src == nil {
			continue
		}
		data, err := fs.ReadFile(src, name)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Skill returns the skill called name
func (cv *CV) Skill(name string) (Skill, bool) {
	for _, s := range cv.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}

// ExperienceByID returns the job with id
func (cv *CV) ExperienceByID(id string) (Experience, bool) {
	for _, e := range cv.Experience {
		if e.ID == id {
			return e, true
		}
	}
	return Experience{}, false
}

// Project returns the project with id
func (cv *CV) Project(id string) (Project, bool) {
	for _, p := range cv.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// NPC returns the NPC with id
func (cv *CV) NPC(id string) (NPC, bool) {
	for _, n := range cv.NPCs {
		if n.ID == id {
			return n, true
		}
	}
	return NPC{}, false
}

// Validate checks cross references between the CV and the map
func (b *Bundle) Validate() error {
	seen := make(map[string]bool, len(b.CV.NPCs))
	known := make(map[string]bool)
	for _, n := range b.CV.NPCs {
		if n.ID == "" {
			return fmt.Errorf("%w: npc %q has no id", ErrInvalid, n.Name)
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: duplicate npc id %q", ErrInvalid, n.ID)
		}
		seen[n.ID] = true

		if n.Tile.Col < 0 || n.Tile.Col >= b.Map.Width || n.Tile.Row < 0 || n.Tile.Row >= b.Map.Height {
			return fmt.Errorf("%w: npc %q tile %d:%d outside %dx%d map", ErrInvalid, n.ID, n.Tile.Col, n.Tile.Row, b.Map.Width, b.Map.Height)
		}
		if b.Map.Tiles[n.Tile.Row][n.Tile.Col] != 0 {
			return fmt.Errorf("%w: npc %q stands on a wall at %d:%d", ErrInvalid, n.ID, n.Tile.Col, n.Tile.Row)
		}
		if n.Quest != "" {
			known[n.Quest] = true
		}
		if n.Skill != "" {
			known[n.Skill] = true
		}
	}

	for _, q := range b.CV.Quests {
		for _, req := range q.Requirements {
			if !known[req] {
				return fmt.Errorf("%w: quest %q requires %q which no npc grants", ErrInvalid, q.ID, req)
			}
		}
	}
	return nil
}
