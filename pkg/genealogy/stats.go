package genealogy

// Stats summarizes a family snapshot.
type Stats struct {
	Total                int     `json:"total"`
	Male                 int     `json:"male"`
	Female               int     `json:"female"`
	Living               int     `json:"living"`
	Deceased             int     `json:"deceased"`
	Generations          int     `json:"generations"`
	AvgChildrenPerParent float64 `json:"avgChildrenPerParent"`
	OldestBirthYear      int     `json:"oldestBirthYear,omitempty"` // 0 when no birth dates are known
	NewestBirthYear      int     `json:"newestBirthYear,omitempty"`
}

// ComputeStats counts members by gender and living state and measures the
// depth of the tree below the root ancestor. A non-empty family always has
// at least one generation.
func ComputeStats(persons []Person) Stats {
	var s Stats
	if len(persons) == 0 {
		return s
	}

	s.Total = len(persons)
	parents, children := 0, 0
	index := make(map[string]Person, len(persons))

	for _, p := range persons {
		index[p.ID] = p

		switch p.Gender {
		case GenderMale:
			s.Male++
		case GenderFemale:
			s.Female++
		}
		if p.Living {
			s.Living++
		} else {
			s.Deceased++
		}

		if n := len(p.Children); n > 0 {
			parents++
			children += n
		}

		if year, ok := p.BirthYear(); ok {
			if s.OldestBirthYear == 0 || year < s.OldestBirthYear {
				s.OldestBirthYear = year
			}
			if year > s.NewestBirthYear {
				s.NewestBirthYear = year
			}
		}
	}

	if parents > 0 {
		s.AvgChildrenPerParent = float64(children) / float64(parents)
	}

	s.Generations = 1
	if root, ok := FindRootAncestor(persons); ok {
		if g := MaxGeneration(root.ID, index); g > s.Generations {
			s.Generations = g
		}
	}

	return s
}
