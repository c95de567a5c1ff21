// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// Segment is one known/unknown alternation emitted while walking an input
// atom stream: the run of brand-new atom labels that precede it, and the
// run of already-known tokens that follow (§4.K).
type Segment struct {
	Unknown []string
	Known   []Token
}

// SegmentIter walks a label stream, grouping it into alternating unknown
// and known runs. Grounded on fox/iter.go's Iter.Prefix, which walks its
// own work-list explicitly rather than recursing, repurposed here from
// "walk the trie" to "walk the atom stream" (§4.K).
type SegmentIter struct {
	g      *Graph
	labels []string
	pos    int
}

// NewSegmentIter builds an iterator over labels against g.
func NewSegmentIter(g *Graph, labels []string) *SegmentIter {
	return &SegmentIter{g: g, labels: labels}
}

// Next emits the next unknown/known alternation, or false once the stream
// is exhausted.
func (si *SegmentIter) Next() (Segment, bool) {
	if si.pos >= len(si.labels) {
		return Segment{}, false
	}
	var seg Segment
	for si.pos < len(si.labels) {
		if _, ok := si.g.lookupAtom(si.labels[si.pos]); ok {
			break
		}
		seg.Unknown = append(seg.Unknown, si.labels[si.pos])
		si.pos++
	}
	for si.pos < len(si.labels) {
		tok, ok := si.g.lookupAtom(si.labels[si.pos])
		if !ok {
			break
		}
		seg.Known = append(seg.Known, tok)
		si.pos++
	}
	if len(seg.Unknown) == 0 && len(seg.Known) == 0 {
		return Segment{}, false
	}
	return seg, true
}

// largestKnownPrefix finds an existing token matching a prefix of seq, by
// running a search and reading its checkpoint (§4.K step 2). The search's
// best root is taken only when its width equals the confirmed prefix, i.e.
// when that root is exactly the prefix; otherwise the first token alone is
// returned, and no narrower token covering part of the prefix is looked for.
func largestKnownPrefix(g *Graph, seq []Token) (int, Token) {
	if len(seq) == 0 {
		return 0, Token{}
	}
	resp, err := FindSequence(g, seq)
	if err != nil || resp.RootToken().IsZero() {
		return 1, seq[0]
	}
	if resp.IsEntireRoot() && g.Width(resp.RootToken()) == len(seq) {
		return len(seq), resp.RootToken()
	}
	cp := resp.CheckpointPosition()
	if cp <= 0 || g.Width(resp.RootToken()) != cp {
		return 1, seq[0]
	}
	return cp, resp.RootToken()
}

// commitOverlapBands looks for a genuine overlap in a known run: a proper
// border, a non-empty prefix shorter than the whole run that recurs as its
// own suffix (§4.K step 3 — "a postfix of the committed block is itself a
// prefix of some token whose remainder matches the upcoming atoms"). Read
// end to end, a run with such a border can be re-grouped as
// [prefix-part, suffix-part] where the suffix-part restates the prefix-
// part's own tail — an alternative decomposition of exactly the same
// region the sequential band already covers, so every one found is
// committed onto chain as an additional band (§4.L). Borders are found by
// direct token comparison via sameSeq, the same identity check the graph
// itself uses to recognize an existing pattern. Callers only invoke this
// when known is the whole of the sequential band's region — every split
// token built here covers exactly known, so a wider region would produce
// a mismatched-width band.
func commitOverlapBands(g *Graph, chain *BandChain, known []Token) {
	w := len(known)
	for k := 1; k < w; k++ {
		if !sameSeq(known[:k], known[w-k:]) {
			continue
		}
		splitAt := w - k
		prefixTok, err := partitionToken(g, known[:splitAt])
		if err != nil {
			continue
		}
		suffixTok, err := partitionToken(g, known[splitAt:])
		if err != nil {
			continue
		}
		chain.AppendFrontComplement(g, prefixTok, suffixTok)
		chain.AppendOverlapLink(OverlapLink{StartBound: splitAt})
		g.traceHook().OnBandCommitted(*chain.OverlapBands()[len(chain.OverlapBands())-1])
	}
}

// processSegment ingests one Segment into chain: new atoms extend the
// sequential band directly; known atoms are matched against the graph as
// far as possible, each matched run extending the band in turn, and once
// the whole known run has been folded in it is checked for a self-overlap
// against the sequential band (§4.K).
func processSegment(g *Graph, chain *BandChain, seg Segment) {
	for _, label := range seg.Unknown {
		chain.AppendCap(g, g.InsertAtom(label))
	}
	if len(seg.Known) == 0 {
		return
	}
	remaining := seg.Known
	for len(remaining) > 0 {
		n, tok := largestKnownPrefix(g, remaining)
		chain.AppendCap(g, tok)
		remaining = remaining[n:]
	}
	// Only the known run itself can be re-grouped into a border-based
	// overlap band: the split tokens commitOverlapBands builds cover
	// exactly seg.Known, so unless the sequential band's whole region is
	// that run (no leading unknown atoms, no earlier segment already
	// folded in), a band with that width wouldn't match the region
	// commitToRoot needs every pattern to share.
	if chain.firstBand().EndBound == len(seg.Known) {
		commitOverlapBands(g, chain, seg.Known)
	}
}

// commitToRoot materializes the chain's sequential band plus every
// overlapping alternative as a single root token, or returns that band's
// sole token directly when no merge is needed (§4.K/§4.L commit-to-root).
// Every pattern handed to InsertOrGetComplete must share the region's
// total width, so any stale band that fell short of it is dropped first.
func commitToRoot(g *Graph, chain *BandChain) (Token, error) {
	bands := chain.Bands()
	if len(bands) == 0 {
		return Token{}, ErrVertexNotFound
	}
	primary := bands[0]
	if len(primary.Pattern) == 1 && len(bands) == 1 {
		return primary.Pattern[0], nil
	}
	patterns := [][]Token{primary.Pattern}
	for _, b := range chain.OverlapBands() {
		if b.EndBound != primary.EndBound {
			continue
		}
		patterns = append(patterns, b.Pattern)
	}
	return g.InsertOrGetComplete(patterns)
}

// ReadSequence drives the whole of component K: it partitions labels into
// known/unknown alternations, commits bands for each, and returns the
// single root token realizing the full input (§6 read_sequence).
func ReadSequence(g *Graph, labels []string) (Token, error) {
	if len(labels) == 0 {
		return Token{}, ErrVertexNotFound
	}
	chain := NewBandChain()
	it := NewSegmentIter(g, labels)
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		processSegment(g, chain, seg)
	}
	return commitToRoot(g, chain)
}
