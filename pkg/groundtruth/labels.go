// Package groundtruth models the known partition that detected
// communities are scored against.
package groundtruth

import (
	"slices"
)

// Labels maps vertices to their ground-truth community and communities to
// their members. A vertex listed under several communities keeps only its
// last assignment in the vertex map, while every community keeps all of its
// listed members.
type Labels struct {
	vertexCommunity map[int64]int
	members         map[int]map[int64]struct{}
}

// New creates an empty labeling
func New() *Labels {
	return &Labels{
		vertexCommunity: make(map[int64]int),
		members:         make(map[int]map[int64]struct{}),
	}
}

// Assign records v as a member of community cid
func (l *Labels) Assign(v int64, cid int) {
	l.vertexCommunity[v] = cid

	set, ok := l.members[cid]
	if !ok {
		set = make(map[int64]struct{})
		l.members[cid] = set
	}
	set[v] = struct{}{}
}

// CommunityOf returns the community v was last assigned to
func (l *Labels) CommunityOf(v int64) (int, bool) {
	cid, ok := l.vertexCommunity[v]
	return cid, ok
}

// Members returns the member set of community cid. The returned map must
// not be modified.
func (l *Labels) Members(cid int) map[int64]struct{} {
	return l.members[cid]
}

// Communities returns all community IDs in ascending order
func (l *Labels) Communities() []int {
	out := make([]int, 0, len(l.members))
	for cid := range l.members {
		out = append(out, cid)
	}
	slices.Sort(out)
	return out
}

// CommunityCount returns the number of non-empty communities
func (l *Labels) CommunityCount() int {
	return len(l.members)
}

// LabeledCount returns the number of vertices that carry a label
func (l *Labels) LabeledCount() int {
	return len(l.vertexCommunity)
}

// VertexSet is the subset of graph queries labeling needs
type VertexSet interface {
	HasVertex(v int64) bool
}

// LabeledVertices returns, in ascending order, the vertices present in g
// that carry a label.
func (l *Labels) LabeledVertices(g VertexSet) []int64 {
	out := make([]int64, 0, len(l.vertexCommunity))
	for v := range l.vertexCommunity {
		if g.HasVertex(v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
