package genealogy

import (
	"strings"
	"time"
)

// Gender of a family member
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// DateLayout is the layout of birth and death dates
const DateLayout = "2006-01-02"

// Person is a member of a family snapshot.
type Person struct {
	ID           string   `json:"id" yaml:"id" validate:"omitempty,max=64"`
	FirstName    string   `json:"firstName" yaml:"firstName" validate:"required,max=100"`
	MiddleName   string   `json:"middleName,omitempty" yaml:"middleName,omitempty" validate:"max=100"`
	LastName     string   `json:"lastName,omitempty" yaml:"lastName,omitempty" validate:"max=100"`
	LontaraName  string   `json:"lontaraName,omitempty" yaml:"lontaraName,omitempty"`
	Gender       Gender   `json:"gender,omitempty" yaml:"gender,omitempty" validate:"omitempty,oneof=male female"`
	BirthDate    string   `json:"birthDate,omitempty" yaml:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DeathDate    string   `json:"deathDate,omitempty" yaml:"deathDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BirthPlace   string   `json:"birthPlace,omitempty" yaml:"birthPlace,omitempty"`
	Occupation   string   `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Living       bool     `json:"isLiving" yaml:"isLiving"`
	RootAncestor bool     `json:"isRootAncestor,omitempty" yaml:"isRootAncestor,omitempty"`
	Parents      []string `json:"parentIds,omitempty" yaml:"parentIds,omitempty" validate:"dive,required"`
	Spouses      []string `json:"spouseIds,omitempty" yaml:"spouseIds,omitempty" validate:"dive,required"`
	Children     []string `json:"childIds,omitempty" yaml:"childIds,omitempty" validate:"dive,required"`
}

func (p Person) PersonID() string { return p.ID }

func (p Person) ChildIDs() []string { return p.Children }

func (p Person) IsRootAncestor() bool { return p.RootAncestor }

// DisplayName joins the non-empty name parts with single spaces
func (p Person) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// BirthYear returns the year of BirthDate, or false if it is unset or malformed
func (p Person) BirthYear() (int, bool) {
	if p.BirthDate == "" {
		return 0, false
	}
	t, err := time.Parse(DateLayout, p.BirthDate)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
