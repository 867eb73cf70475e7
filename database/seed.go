package database

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpupo63/content-mock-backend/errs"
	"github.com/rpupo63/content-mock-backend/models"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/seed.yaml
var defaultSeed []byte

// Fixtures is the startup data for every collection, in insertion order.
type Fixtures struct {
	Posts       []models.BlogPost         `yaml:"posts"`
	Courses     []models.Course           `yaml:"courses"`
	Projects    []models.Project          `yaml:"projects"`
	Leaderboard []models.LeaderboardEntry `yaml:"leaderboard"`
}

// DefaultFixtures returns the sample records compiled into the binary
func DefaultFixtures() (Fixtures, error) {
	return ParseFixtures(defaultSeed)
}

// LoadFixtures reads fixtures from path, or the compiled-in defaults when path is empty
func LoadFixtures(path string) (Fixtures, error) {
	if path == "" {
		return DefaultFixtures()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, errs.NewInvalidSeedError(path, "cannot read fixture file", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes YAML fixtures, fills in empty required lists and
// checks keys and levels. Unknown fields are rejected.
func ParseFixtures(data []byte) (Fixtures, error) {
	var f Fixtures
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixtures{}, errs.NewInvalidSeedError("fixtures", "document is empty", err)
		}
		return Fixtures{}, errs.NewInvalidSeedError("fixtures", "malformed YAML", err)
	}

	f.normalize()
	if err := f.validate(); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

// normalize makes required lists serialize as [] rather than null
func (f *Fixtures) normalize() {
	for i := range f.Posts {
		if f.Posts[i].Tags == nil {
			f.Posts[i].Tags = []string{}
		}
	}
	for i := range f.Projects {
		if f.Projects[i].Tags == nil {
			f.Projects[i].Tags = []string{}
		}
	}
	for i := range f.Leaderboard {
		if f.Leaderboard[i].Achievements == nil {
			f.Leaderboard[i].Achievements = []string{}
		}
	}
}

func (f *Fixtures) validate() error {
	if err := uniqueKeys("posts", "slug", f.Posts, func(p models.BlogPost) string { return p.Slug }); err != nil {
		return err
	}
	if err := uniqueKeys("posts", "id", f.Posts, func(p models.BlogPost) string { return p.ID }); err != nil {
		return err
	}
	if err := uniqueKeys("courses", "id", f.Courses, func(c models.Course) string { return c.ID }); err != nil {
		return err
	}
	if err := uniqueKeys("projects", "id", f.Projects, func(p models.Project) string { return p.ID }); err != nil {
		return err
	}
	if err := uniqueKeys("leaderboard", "id", f.Leaderboard, func(e models.LeaderboardEntry) string { return e.ID }); err != nil {
		return err
	}

	for _, c := range f.Courses {
		if !c.Level.Valid() {
			return errs.NewInvalidLevelError(c.ID, string(c.Level))
		}
		if c.Rating != nil && !(*c.Rating >= 0 && *c.Rating <= 5) {
			return errs.NewInvalidSeedError("courses", fmt.Sprintf("course %q has rating %v outside 0-5", c.ID, *c.Rating), nil)
		}
	}
	return nil
}

func uniqueKeys[T any](name, field string, records []T, key func(T) string) error {
	seen := make(map[string]struct{}, len(records))
	for i, record := range records {
		k := key(record)
		if k == "" {
			return errs.NewInvalidSeedError(name, fmt.Sprintf("record %d has an empty %s", i, field), nil)
		}
		if _, dup := seen[k]; dup {
			return errs.NewDuplicateKeyError(name, field, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
