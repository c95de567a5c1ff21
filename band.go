// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// Band is a contiguous sub-region of read input paired with the token
// sequence that realizes it (§3.1).
type Band struct {
	Pattern    []Token
	StartBound AtomPosition
	EndBound   AtomPosition
}

// OverlapLink pairs two views of the same overlap region discovered during
// block expansion: the bound at which the upcoming tokens were found to
// re-enter a token already committed to the chain (§3.1, §4.L).
// commitOverlapBands sets only StartBound; ChildPath and SearchPath stay at
// their zero Path value.
type OverlapLink struct {
	StartBound AtomPosition
	ChildPath  Path
	SearchPath Path
}

// BandChain records the sequential band built up one committed token at a
// time, plus every alternative overlapping decomposition discovered over
// the same region (§4.L). The sequential band is always first: it is the
// only band AppendCap ever touches, and AppendFrontComplement only ever
// adds alternatives alongside it, never in front of it.
type BandChain struct {
	sequential *Band
	overlaps   []*Band
	links      []OverlapLink
}

// NewBandChain builds an empty chain.
func NewBandChain() *BandChain {
	return &BandChain{}
}

func (bc *BandChain) firstBand() *Band {
	return bc.sequential
}

// AppendCap extends the chain's sequential band with one more token, or
// starts it if the chain is empty.
func (bc *BandChain) AppendCap(g *Graph, tok Token) {
	if bc.sequential == nil {
		bc.sequential = &Band{Pattern: []Token{tok}, StartBound: 0, EndBound: g.Width(tok)}
		return
	}
	bc.sequential.Pattern = append(bc.sequential.Pattern, tok)
	bc.sequential.EndBound += g.Width(tok)
}

// AppendFrontComplement records a [complement, expansion] band as an
// alternative decomposition of the region the sequential band already
// covers (§4.L). It never displaces the sequential band — Bands always
// reports that one first.
func (bc *BandChain) AppendFrontComplement(g *Graph, complement, expansion Token) {
	w := g.Width(complement) + g.Width(expansion)
	b := &Band{Pattern: []Token{complement, expansion}, StartBound: 0, EndBound: w}
	bc.overlaps = append(bc.overlaps, b)
}

// AppendOverlapLink records one discovered overlap alongside the chain.
func (bc *BandChain) AppendOverlapLink(link OverlapLink) {
	bc.links = append(bc.links, link)
}

// Bands returns every band in the chain: the sequential band first, then
// every overlapping alternative in the order they were discovered.
func (bc *BandChain) Bands() []*Band {
	if bc.sequential == nil {
		return nil
	}
	out := make([]*Band, 0, 1+len(bc.overlaps))
	out = append(out, bc.sequential)
	out = append(out, bc.overlaps...)
	return out
}

// OverlapBands returns every alternative decomposition of the sequential
// band's region discovered via overlap expansion (§4.L).
func (bc *BandChain) OverlapBands() []*Band {
	return bc.overlaps
}

// Links returns every OverlapLink recorded alongside this chain.
func (bc *BandChain) Links() []OverlapLink {
	return bc.links
}
