package analytics

import (
	"sort"
)

// HighRating is the minimum score that counts as liking a dish.
const HighRating = 4

// Edge is an unordered pair of similar customers, smaller id first.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// SimilarityGraph links customers who both rated the same dish HighRating or
// more. It is undirected and unweighted.
type SimilarityGraph struct {
	adjacency map[int]map[int]struct{}
	edges     map[Edge]struct{}
}

// BuildSimilarityGraph derives the similarity graph from the snapshot ratings.
func BuildSimilarityGraph(s *Snapshot) *SimilarityGraph {
	g := &SimilarityGraph{
		adjacency: make(map[int]map[int]struct{}),
		edges:     make(map[Edge]struct{}),
	}

	fans := make(map[int][]int)
	for _, r := range s.Ratings {
		if r.Score >= HighRating {
			fans[r.DishID] = append(fans[r.DishID], r.CustomerID)
		}
	}

	for _, customers := range fans {
		for i := 0; i < len(customers); i++ {
			for j := i + 1; j < len(customers); j++ {
				g.addEdge(customers[i], customers[j])
			}
		}
	}
	return g
}

func (g *SimilarityGraph) addEdge(a, b int) {
	if a == b {
		return
	}
	e := newEdge(a, b)
	if _, ok := g.edges[e]; ok {
		return
	}
	g.edges[e] = struct{}{}
	g.link(a, b)
	g.link(b, a)
}

func (g *SimilarityGraph) link(from, to int) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[int]struct{})
	}
	g.adjacency[from][to] = struct{}{}
}

// Edges returns every edge once, sorted by (A, B).
func (g *SimilarityGraph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// Neighbors returns the customers directly similar to custID, ascending.
func (g *SimilarityGraph) Neighbors(custID int) []int {
	return sortedKeys(g.adjacency[custID])
}

// Reachable returns every customer connected to source by a path of one or
// more edges, source excluded, ascending. It runs one breadth-first search.
func (g *SimilarityGraph) Reachable(source int) []int {
	visited := map[int]struct{}{source: {}}
	queue := []int{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range g.adjacency[current] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	delete(visited, source)
	return sortedKeys(visited)
}

// Connected reports whether b is reachable from a.
func (g *SimilarityGraph) Connected(a, b int) bool {
	if a == b {
		return false
	}
	for _, id := range g.Reachable(a) {
		if id == b {
			return true
		}
	}
	return false
}
