package pattern

import (
	"slices"
	"strconv"
	"strings"
)

// Group collects the lengths observed for one base rendering.
type Group struct {
	Base    string
	Lengths []int
}

// Render collapses the group's lengths into base{n} or base{min,max}. The
// range form also admits lengths between min and max that were never
// observed. A group without lengths renders as its bare base.
func (g Group) Render() string {
	if len(g.Lengths) == 0 {
		return g.Base
	}

	lengths := slices.Clone(g.Lengths)
	slices.Sort(lengths)
	lengths = slices.Compact(lengths)

	lo, hi := lengths[0], lengths[len(lengths)-1]
	if lo == hi {
		return g.Base + "{" + strconv.Itoa(lo) + "}"
	}
	return g.Base + "{" + strconv.Itoa(lo) + "," + strconv.Itoa(hi) + "}"
}

// Merger accumulates per-string patterns. Single-run patterns are grouped by
// base in first-seen order; everything else is kept verbatim as a leftover.
type Merger struct {
	groups    []*Group
	index     map[string]int
	leftovers []string
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{index: make(map[string]int)}
}

// Add records one pattern.
func (m *Merger) Add(p string) {
	run, ok := ParseRun(p)
	if !ok {
		m.leftovers = append(m.leftovers, p)
		return
	}

	if i, seen := m.index[run.Base]; seen {
		m.groups[i].Lengths = append(m.groups[i].Lengths, run.Count)
		return
	}
	m.index[run.Base] = len(m.groups)
	m.groups = append(m.groups, &Group{Base: run.Base, Lengths: []int{run.Count}})
}

// Groups returns a copy of the groups in discovery order.
func (m *Merger) Groups() []Group {
	out := make([]Group, len(m.groups))
	for i, g := range m.groups {
		out[i] = Group{Base: g.Base, Lengths: slices.Clone(g.Lengths)}
	}
	return out
}

// Leftovers returns the patterns that were not a single run, in input order.
func (m *Merger) Leftovers() []string {
	return slices.Clone(m.leftovers)
}

// Alternatives returns the group renderings followed by the leftovers.
func (m *Merger) Alternatives() []string {
	alts := make([]string, 0, len(m.groups)+len(m.leftovers))
	for _, g := range m.groups {
		alts = append(alts, g.Render())
	}
	return append(alts, m.leftovers...)
}

// String returns the anchored alternation of all alternatives.
func (m *Merger) String() string {
	return "^" + strings.Join(m.Alternatives(), "|") + "$"
}

// Merge merges patterns into a single anchored alternation. An empty input
// yields "^$".
func Merge(patterns []string) string {
	m := NewMerger()
	for _, p := range patterns {
		m.Add(p)
	}
	return m.String()
}
