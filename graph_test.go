// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAtomIdempotent(t *testing.T) {
	g := NewGraph()
	a1 := g.InsertAtom("a")
	a2 := g.InsertAtom("a")
	require.Equal(t, a1, a2)
	require.Equal(t, 1, g.Width(a1))
	require.Equal(t, KindAtom, g.Kind(a1))
}

func TestInsertOrGetCompleteReusesExisting(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	b := g.InsertAtom("b")
	tok1, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	tok2, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	require.Equal(t, tok1, tok2)
	require.Equal(t, 2, g.Width(tok1))
	require.Equal(t, KindCompound, g.Kind(tok1))
}

func TestInsertOrGetCompleteSingleTokenIsError(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	_, err := g.InsertOrGetComplete([][]Token{{a}})
	require.ErrorIs(t, err, ErrSingleIndex)
}

func TestWidthConservation(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	abc, err := g.InsertOrGetComplete([][]Token{{ab, c}})
	require.NoError(t, err)
	require.Equal(t, g.Width(a)+g.Width(b)+g.Width(c), g.Width(abc))
}

func TestParentsOfRoundTrips(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom("a"), g.InsertAtom("b")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)

	locs, err := g.ParentsOf(a)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	require.Equal(t, ab, locs[0].Parent)
	require.Equal(t, 0, locs[0].SubIndex)

	locs, err = g.ParentsOf(b)
	require.NoError(t, err)
	require.Len(t, locs, 1)
	require.Equal(t, 1, locs[0].SubIndex)
}

func TestAddChildPatternKeepsPreviousOne(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	bc, err := g.InsertOrGetComplete([][]Token{{b, c}})
	require.NoError(t, err)
	abc, err := g.InsertOrGetComplete([][]Token{{ab, c}})
	require.NoError(t, err)

	pid, err := g.AddChildPattern(abc, []Token{a, bc})
	require.NoError(t, err)

	data, err := g.GetVertex(abc)
	require.NoError(t, err)
	require.Len(t, data.Patterns, 2)
	require.Equal(t, []Token{a, bc}, data.Patterns[pid])
}

func TestAddChildPatternWidthMismatchPanics(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	require.Panics(t, func() {
		_, _ = g.AddChildPattern(ab, []Token{a, b, c})
	})
}

func TestGetVertexUnknownToken(t *testing.T) {
	g := NewGraph()
	_, err := g.GetVertex(Token{})
	require.ErrorIs(t, err, ErrVertexNotFound)
}

func TestGetAtomTokenReportsAbsence(t *testing.T) {
	g := NewGraph()
	_, ok := g.GetAtomToken("missing")
	require.False(t, ok)

	a := g.InsertAtom("a")
	got, ok := g.GetAtomToken("a")
	require.True(t, ok)
	require.Equal(t, a, got)
}
