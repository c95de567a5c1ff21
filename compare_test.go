// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newCompareState(query, child Cursor) CompareState {
	return CompareState{Query: ptrCK(NewCheckpointedCursor(query)), Child: ptrCK(NewCheckpointedCursor(child))}
}

func TestAdvanceToNextMatchAtomEquality(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	q := NewCursor(NewFreePath(RoleStart, []Token{a}))
	c := NewCursor(NewFreePath(RoleStart, []Token{a}))
	st := newCompareState(q, c)
	require.Equal(t, Matched, AdvanceToNextMatch(g, st))
}

func TestAdvanceToNextMatchMismatch(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	b := g.InsertAtom("b")
	q := NewCursor(NewFreePath(RoleStart, []Token{a}))
	c := NewCursor(NewFreePath(RoleStart, []Token{b}))
	st := newCompareState(q, c)
	require.Equal(t, Mismatch, AdvanceToNextMatch(g, st))
}

func TestAdvanceToNextMatchDecomposesCompoundSide(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom("a"), g.InsertAtom("b")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)

	q := NewCursor(NewFreePath(RoleStart, []Token{a}))
	c := NewCursor(NewFreePath(RoleStart, []Token{ab}))
	st := newCompareState(q, c)
	require.Equal(t, Matched, AdvanceToNextMatch(g, st))
	// decomposition descended into the child, leaving the query untouched
	require.Equal(t, a, st.Query.Current().Leaf())
	require.Equal(t, a, st.Child.Current().Leaf())
}

func TestAdvanceToNextMatchQueryExhausted(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	qPath := NewFreePath(RoleStart, []Token{a})
	qPath.AdvanceNext(g)
	q := NewCursor(qPath)
	c := NewCursor(NewFreePath(RoleStart, []Token{a}))
	st := newCompareState(q, c)
	require.Equal(t, QueryExhausted, AdvanceToNextMatch(g, st))
}

func TestCompareLeavesUnresolvedAtomAlwaysMismatches(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	q := NewCursor(NewFreePath(RoleStart, []Token{{}}))
	c := NewCursor(NewFreePath(RoleStart, []Token{a}))
	st := newCompareState(q, c)
	require.Equal(t, Mismatch, AdvanceToNextMatch(g, st))
}
