// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// rangeKey identifies a contiguous run of partitions [start, end).
type rangeKey struct{ start, end int }

// RangeMap remembers, for each contiguous run of partitions already
// merged, the token materialized for it — so a wider run can reuse a
// narrower run's token as one of its own alternative decompositions
// instead of re-deriving it (§4.I). A run of a single partition maps to
// that partition's own representative token.
type RangeMap struct {
	tokens map[rangeKey]Token
}

func newRangeMap() *RangeMap {
	return &RangeMap{tokens: make(map[rangeKey]Token)}
}

// partitionToken returns a single token representing one partition's
// content, materializing a new one via the graph only if the partition
// spans more than one already-existing token (§4.H "leaf partitions").
func partitionToken(g *Graph, partition []Token) (Token, error) {
	if len(partition) == 1 {
		return partition[0], nil
	}
	return g.InsertOrGetComplete([][]Token{partition})
}

// Join merges an IntervalGraph's partitions bottom-up by range length,
// from adjacent pairs up to the full span, reusing InsertOrGetComplete's
// idempotent allocate-or-reuse contract at every step and feeding any
// already-known sub-range merge back in as an additional decomposition of
// the wider range, so a token can be born already carrying more than one
// valid breakdown (§4.I). It returns the token for the whole interval, and
// as a side effect commits any "perfect border" it discovers back onto the
// root as an additional pattern.
func (ig *IntervalGraph) Join(g *Graph) (Token, error) {
	n := len(ig.Partitions)
	if n == 0 {
		return Token{}, ErrSingleIndex
	}
	reps := make([]Token, n)
	for i, p := range ig.Partitions {
		tok, err := partitionToken(g, p)
		if err != nil {
			return Token{}, err
		}
		reps[i] = tok
	}
	if n == 1 {
		return reps[0], nil
	}

	rm := newRangeMap()
	for i, tok := range reps {
		rm.tokens[rangeKey{i, i + 1}] = tok
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length <= n; i++ {
			j := i + length
			seq := append([]Token(nil), reps[i:j]...)
			patterns := [][]Token{seq}
			for k := i + 1; k < j; k++ {
				lt, ok1 := rm.tokens[rangeKey{i, k}]
				rt, ok2 := rm.tokens[rangeKey{k, j}]
				if ok1 && ok2 {
					alt := []Token{lt, rt}
					if !sameSeq(alt, seq) {
						patterns = append(patterns, alt)
					}
				}
			}
			tok, err := g.InsertOrGetComplete(patterns)
			if err != nil {
				return Token{}, err
			}
			rm.tokens[rangeKey{i, j}] = tok
		}
	}

	merged := rm.tokens[rangeKey{0, n}]
	ig.commitPerfectBorders(g, rm)
	return merged, nil
}

// partitionBounds returns the cumulative atom offsets of each partition
// boundary, relative to the interval's own start.
func (ig *IntervalGraph) partitionBounds(g *Graph) []int {
	bounds := make([]int, len(ig.Partitions)+1)
	cum := 0
	for i, p := range ig.Partitions {
		bounds[i] = cum
		for _, t := range p {
			cum += g.Width(t)
		}
	}
	bounds[len(ig.Partitions)] = cum
	return bounds
}

// commitPerfectBorders finds merged ranges whose boundaries coincide
// exactly with the root's own canonical-pattern child boundaries and, for
// each one, adds a new child pattern to the root where that contiguous
// slice of children is replaced by the single merged token. The original
// pattern is never removed — this only grows the set of equivalent
// decompositions the root carries (§4.I "perfect border").
func (ig *IntervalGraph) commitPerfectBorders(g *Graph, rm *RangeMap) {
	v := g.vertexOf(ig.Root)
	if v == nil || v.kind != KindCompound {
		return
	}
	_, rootSeq := g.canonicalPattern(v)
	rootBounds := make([]int, len(rootSeq)+1)
	cum := 0
	for i, t := range rootSeq {
		rootBounds[i] = cum
		cum += g.Width(t)
	}
	rootBounds[len(rootSeq)] = cum
	boundIndex := make(map[int]int, len(rootBounds))
	for i, b := range rootBounds {
		boundIndex[b] = i
	}

	bounds := ig.partitionBounds(g)
	n := len(ig.Partitions)
	for i := 0; i < n; i++ {
		for j := i + 2; j <= n; j++ {
			ri, okI := boundIndex[bounds[i]]
			rj, okJ := boundIndex[bounds[j]]
			if !okI || !okJ {
				continue
			}
			tok, ok := rm.tokens[rangeKey{i, j}]
			if !ok {
				continue
			}
			newSeq := make([]Token, 0, len(rootSeq)-(rj-ri)+1)
			newSeq = append(newSeq, rootSeq[:ri]...)
			newSeq = append(newSeq, tok)
			newSeq = append(newSeq, rootSeq[rj:]...)
			if len(newSeq) >= 2 {
				_, _ = g.AddChildPattern(ig.Root, newSeq)
			}
		}
	}
}
