package genealogy

// GenerationDepth returns the generation of targetID counted from rootID,
// with the root itself at generation 1. It returns Unknown when either id is
// empty, the map is empty, either person is missing from the map, or the
// target is not a descendant of the root.
//
// The search is breadth-first, so a person reachable through several
// lineages gets the shortest one. Cycles and dangling child ids are
// tolerated.
func GenerationDepth[P Node](targetID, rootID string, persons map[string]P) int {
	return Search(targetID, rootID, persons).Depth
}

// Search is GenerationDepth that also reports how much of the tree it
// expanded before stopping.
func Search[P Node](targetID, rootID string, persons map[string]P) SearchResult {
	if targetID == "" || rootID == "" || len(persons) == 0 {
		return SearchResult{Depth: Unknown}
	}
	if _, ok := persons[targetID]; !ok {
		return SearchResult{Depth: Unknown}
	}

	result := SearchResult{Depth: Unknown}
	result.Visited = walk(rootID, persons, func(id string, depth int) bool {
		if id == targetID {
			result.Depth = depth
			return true
		}
		return false
	})
	return result
}

// Traverse runs one full breadth-first pass from rootID and records the
// generation of every reachable person. Callers needing many lookups
// against the same root should use this instead of repeated
// GenerationDepth calls.
func Traverse[P Node](rootID string, persons map[string]P) *TraversalResult {
	result := &TraversalResult{
		RootID:       rootID,
		Depths:       make(map[string]int),
		ByGeneration: make(map[int][]string),
	}
	if rootID == "" || len(persons) == 0 {
		return result
	}

	result.Visited = walk(rootID, persons, func(id string, depth int) bool {
		result.Depths[id] = depth
		result.ByGeneration[depth] = append(result.ByGeneration[depth], id)
		return false
	})
	return result
}

// AllDepths maps every person reachable from rootID to its generation
func AllDepths[P Node](rootID string, persons map[string]P) map[string]int {
	return Traverse(rootID, persons).Depths
}

// MaxGeneration returns the deepest generation below rootID, 1 for a root
// without descendants and 0 when the root is unknown.
func MaxGeneration[P Node](rootID string, persons map[string]P) int {
	return Traverse(rootID, persons).MaxDepth()
}

// walk visits each person reachable from rootID once, in breadth-first
// order, and stops early when visit returns true. Ids that do not resolve
// to a person are dropped. It returns the number of persons visited.
func walk[P Node](rootID string, persons map[string]P, visit func(id string, depth int) bool) int {
	visited := make(map[string]bool)
	queue := []bfsEntry{{id: rootID, depth: 1}}
	count := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.id] {
			continue
		}
		visited[current.id] = true

		person, ok := persons[current.id]
		if !ok {
			continue
		}
		count++

		if visit(current.id, current.depth) {
			return count
		}

		for _, childID := range person.ChildIDs() {
			if !visited[childID] {
				queue = append(queue, bfsEntry{id: childID, depth: current.depth + 1})
			}
		}
	}

	return count
}
