package genealogy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/wija/pkg/validation"
)

// ErrInvalidFamily is wrapped by every validation failure from ParseFamily
var ErrInvalidFamily = errors.New("invalid family")

// Format of a family snapshot file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the snapshot format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported family file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Family is a named snapshot of persons.
type Family struct {
	Name    string   `json:"name" yaml:"name" validate:"max=200"`
	Persons []Person `json:"persons" yaml:"persons" validate:"dive"`
}

// LoadFamily reads and validates a family snapshot from disk
func LoadFamily(path string) (*Family, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read family file: %w", err)
	}

	family, err := ParseFamily(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return family, nil
}

// ParseFamily decodes a snapshot, assigns a UUID to every person without an
// id and validates the result. Dangling relationship ids are allowed.
func ParseFamily(data []byte, format Format) (*Family, error) {
	var family Family

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &family); err != nil {
			return nil, fmt.Errorf("parse family yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &family); err != nil {
			return nil, fmt.Errorf("parse family json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported family format %q", format)
	}

	for i := range family.Persons {
		if family.Persons[i].ID == "" {
			family.Persons[i].ID = uuid.NewString()
		}
	}

	if err := family.Validate(); err != nil {
		return nil, err
	}
	return &family, nil
}

// Validate checks every person record and rejects duplicate ids
func (f *Family) Validate() error {
	if err := validation.ValidateStruct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFamily, err)
	}

	seen := make(map[string]int, len(f.Persons))
	for i, p := range f.Persons {
		if err := validation.ValidateIdentifier(p.ID); err != nil {
			return fmt.Errorf("%w: person %d: %v", ErrInvalidFamily, i, err)
		}
		if prev, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate person id %q at %d and %d", ErrInvalidFamily, p.ID, prev, i)
		}
		seen[p.ID] = i
	}
	return nil
}

// Index maps person ids to persons
func (f *Family) Index() map[string]Person {
	index := make(map[string]Person, len(f.Persons))
	for _, p := range f.Persons {
		index[p.ID] = p
	}
	return index
}

// Root returns the person generations are counted from
func (f *Family) Root() (Person, bool) {
	return FindRootAncestor(f.Persons)
}

// Person looks up a member by id
func (f *Family) Person(id string) (Person, bool) {
	for _, p := range f.Persons {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

// DanglingReferences lists, sorted, the relationship ids that do not
// resolve to a person in the family.
func (f *Family) DanglingReferences() []string {
	known := make(map[string]bool, len(f.Persons))
	for _, p := range f.Persons {
		known[p.ID] = true
	}

	missing := make(map[string]bool)
	for _, p := range f.Persons {
		for _, ids := range [][]string{p.Parents, p.Spouses, p.Children} {
			for _, id := range ids {
				if !known[id] {
					missing[id] = true
				}
			}
		}
	}

	out := make([]string, 0, len(missing))
	for id := range missing {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
