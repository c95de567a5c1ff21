// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBandChainAppendCapGrowsSequentialBand(t *testing.T) {
	g := NewGraph()
	a, b := g.InsertAtom("a"), g.InsertAtom("b")
	chain := NewBandChain()

	chain.AppendCap(g, a)
	chain.AppendCap(g, b)

	bands := chain.Bands()
	require.Len(t, bands, 1)
	require.Equal(t, []Token{a, b}, bands[0].Pattern)
	require.Equal(t, 2, bands[0].EndBound)
}

func TestBandChainFrontComplementKeepsSequentialFirst(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	chain := NewBandChain()
	chain.AppendCap(g, a)
	chain.AppendCap(g, b)

	chain.AppendFrontComplement(g, a, c)

	bands := chain.Bands()
	require.Len(t, bands, 2)
	require.Equal(t, []Token{a, b}, bands[0].Pattern)
	require.Equal(t, []Token{a, c}, chain.OverlapBands()[0].Pattern)
}

func TestBandChainLinksAccumulate(t *testing.T) {
	chain := NewBandChain()
	chain.AppendOverlapLink(OverlapLink{StartBound: 1})
	chain.AppendOverlapLink(OverlapLink{StartBound: 2})
	require.Len(t, chain.Links(), 2)
}
