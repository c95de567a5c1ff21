// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchIteratorFindsEntireRoot(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom("a"), g.InsertAtom("b")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)

	resp, err := FindSequence(g, []Token{a, b})
	require.NoError(t, err)
	complete, ok := resp.AsComplete()
	require.True(t, ok)
	require.Equal(t, ab, complete)
}

func TestSearchIteratorClimbsIntoParentOnChildExhausted(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	abc, err := g.InsertOrGetComplete([][]Token{{ab, c}})
	require.NoError(t, err)

	resp, err := FindSequence(g, []Token{a, b, c})
	require.NoError(t, err)
	complete, ok := resp.AsComplete()
	require.True(t, ok)
	require.Equal(t, abc, complete)
}

func TestSearchIteratorPartialMatchReportsCheckpoint(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	_, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)

	resp, err := FindSequence(g, []Token{a, b, c})
	require.NoError(t, err)
	_, ok := resp.AsComplete()
	require.False(t, ok)
	require.Equal(t, 2, resp.CheckpointPosition())
}

func TestSearchIteratorUnknownFirstAtomYieldsEmptyResponse(t *testing.T) {
	g := NewGraph()
	a := g.InsertAtom("a")
	_ = a

	resp, err := FindSequence(g, []Token{{}})
	require.NoError(t, err)
	require.True(t, resp.RootToken().IsZero())
}

func TestBetterPrefersMoreCheckpointThenEntireRootThenSmallerWidth(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom("a"), g.InsertAtom("b")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	it := &SearchIterator{graph: g}

	small := MatchResult{Checkpoint: 1, Coverage: CoveragePrefix, RootToken: a}
	big := MatchResult{Checkpoint: 2, Coverage: CoverageRange, RootToken: ab}
	require.True(t, it.better(big, small))

	tiePrefix := MatchResult{Checkpoint: 2, Coverage: CoveragePrefix, RootToken: ab}
	tieEntire := MatchResult{Checkpoint: 2, Coverage: CoverageEntireRoot, RootToken: ab}
	require.True(t, it.better(tieEntire, tiePrefix))
	require.False(t, it.better(tiePrefix, tieEntire))

	// Further tie: same checkpoint, same coverage kind, smaller root wins (§4.G).
	narrower := MatchResult{Checkpoint: 2, Coverage: CoverageEntireRoot, RootToken: a}
	wider := MatchResult{Checkpoint: 2, Coverage: CoverageEntireRoot, RootToken: ab}
	require.True(t, it.better(narrower, wider))
	require.False(t, it.better(wider, narrower))
}

func TestSearchIteratorSiblingParentsDoNotShareQueryPath(t *testing.T) {
	g := NewGraph()
	a, b, c, d := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c"), g.InsertAtom("d")
	_, err := g.InsertOrGetComplete([][]Token{{a, b, c}})
	require.NoError(t, err)
	_, err = g.InsertOrGetComplete([][]Token{{a, b, d}})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		resp, err := FindSequence(g, []Token{a, b})
		require.NoError(t, err)
		require.Equal(t, 2, resp.CheckpointPosition())
	})
}
