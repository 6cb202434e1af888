package genealogy

// FindRootAncestor picks the person generations are counted from: the first
// person flagged as root ancestor, or failing that the first person who is
// nobody's child. It returns false when neither exists.
func FindRootAncestor[P Node](persons []P) (P, bool) {
	for _, p := range persons {
		if f, ok := any(p).(rootFlagger); ok && f.IsRootAncestor() {
			return p, true
		}
	}

	isChild := make(map[string]bool)
	for _, p := range persons {
		for _, id := range p.ChildIDs() {
			if id != p.PersonID() {
				isChild[id] = true
			}
		}
	}
	for _, p := range persons {
		if !isChild[p.PersonID()] {
			return p, true
		}
	}

	var zero P
	return zero, false
}
