// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitAtPatternBoundaryNoop(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	abc, err := g.InsertOrGetComplete([][]Token{{a, b, c}})
	require.NoError(t, err)

	ig := Split(g, abc, []int{1})
	require.Len(t, ig.Partitions, 2)
	require.Equal(t, []Token{a}, ig.Partitions[0])
	require.Equal(t, []Token{b, c}, ig.Partitions[1])
}

func TestSplitThroughCompoundChild(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)
	abc, err := g.InsertOrGetComplete([][]Token{{ab, c}})
	require.NoError(t, err)

	// offset 1 falls strictly inside the compound ab child.
	ig := Split(g, abc, []int{1})
	require.Len(t, ig.Partitions, 2)
	require.Equal(t, []Token{a}, ig.Partitions[0])
	require.Equal(t, []Token{b, c}, ig.Partitions[1])
}

func TestSplitIgnoresOutOfRangeOffsets(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom("a"), g.InsertAtom("b")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	require.NoError(t, err)

	ig := Split(g, ab, []int{0, 2, 5})
	require.Len(t, ig.Partitions, 1)
	require.Equal(t, []Token{a, b}, ig.Partitions[0])
}

func TestSplitMultipleOffsets(t *testing.T) {
	g := NewGraph()
	a, b, c, d := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c"), g.InsertAtom("d")
	abcd, err := g.InsertOrGetComplete([][]Token{{a, b, c, d}})
	require.NoError(t, err)

	ig := Split(g, abcd, []int{1, 3})
	require.Len(t, ig.Partitions, 3)
	require.Equal(t, []Token{a}, ig.Partitions[0])
	require.Equal(t, []Token{b, c}, ig.Partitions[1])
	require.Equal(t, []Token{d}, ig.Partitions[2])
}
