package genealogy

// Unknown is returned when a generation cannot be determined
const Unknown = -1

// Node is the minimal view of a person the traversal needs.
type Node interface {
	PersonID() string
	ChildIDs() []string
}

// rootFlagger is implemented by nodes that can mark themselves as the
// family's root ancestor.
type rootFlagger interface {
	IsRootAncestor() bool
}

// SearchResult is the outcome of a single targeted generation lookup.
type SearchResult struct {
	Depth   int // Unknown when the target was not reached
	Visited int // persons dequeued and expanded before the search stopped
}

// Found reports whether the target was reached
func (r SearchResult) Found() bool {
	return r.Depth != Unknown
}

// TraversalResult holds every generation reachable from a root.
type TraversalResult struct {
	RootID       string
	Depths       map[string]int   // person ID → generation (root = 1)
	ByGeneration map[int][]string // generation → person IDs in BFS order
	Visited      int
}

// MaxDepth returns the deepest generation in the result, 0 when empty
func (r *TraversalResult) MaxDepth() int {
	max := 0
	for d := range r.ByGeneration {
		if d > max {
			max = d
		}
	}
	return max
}

type bfsEntry struct {
	id    string
	depth int
}
