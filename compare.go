// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// CompareOutcome is the result of one AdvanceToNextMatch step (§4.E).
type CompareOutcome uint8

const (
	Matched CompareOutcome = iota
	QueryExhausted
	ChildExhausted
	Mismatch
)

// CompareState pairs the query cursor (what the caller is looking for)
// against the child cursor exploring a candidate root (§4.E).
type CompareState struct {
	Query *CheckpointedCursor
	Child *CheckpointedCursor
}

// AdvanceToNextMatch drives one lockstep comparison step between the two
// cursors' current leaves. On Matched, the caller is responsible for
// advancing both cursors by one leaf and confirming with MarkMatch before
// calling this again — AdvanceToNextMatch itself never mutates state on a
// match, only while decomposing toward one (§4.E "order of advancement").
func AdvanceToNextMatch(g *Graph, st CompareState) CompareOutcome {
	q := st.Query.Current()
	c := st.Child.Current()
	if q.Path().Exhausted() {
		return QueryExhausted
	}
	if c.Path().Exhausted() {
		return ChildExhausted
	}
	return compareLeaves(g, st, q.Leaf(), c.Leaf())
}

// compareLeaves implements the decomposition rule: on a mismatch between
// two compound leaves, descend into whichever side has the smaller width
// and retry, so every recursive call strictly shrinks the remaining
// comparison and the recursion is well-founded (§4.E).
func compareLeaves(g *Graph, st CompareState, qLeaf, cLeaf Token) CompareOutcome {
	if tokensEqual(qLeaf, cLeaf) {
		return Matched
	}
	if qLeaf.IsZero() {
		// An unresolved query atom can never match; there is nothing
		// further to decompose on the query side.
		return Mismatch
	}

	qCompound := g.Kind(qLeaf) == KindCompound
	cCompound := g.Kind(cLeaf) == KindCompound
	if !qCompound && !cCompound {
		return Mismatch
	}

	qWidth, cWidth := g.Width(qLeaf), g.Width(cLeaf)
	if qCompound && (!cCompound || qWidth <= cWidth) {
		if !st.Query.DescendCurrent(g) {
			return Mismatch
		}
		return compareLeaves(g, st, st.Query.Current().Leaf(), cLeaf)
	}
	if cCompound {
		if !st.Child.DescendCurrent(g) {
			return Mismatch
		}
		return compareLeaves(g, st, qLeaf, st.Child.Current().Leaf())
	}
	return Mismatch
}
