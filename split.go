// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import "sort"

// SplitCache memoizes, within one IntervalGraph, how a token flattens at a
// given local offset — the role fox/tree2.go's tXn2.writable plays for its
// copy-on-write insert: a per-traversal memo that makes repeated work on
// the same (token, offset) pair idempotent.
type SplitCache struct {
	entries map[splitKey]splitEntry
}

type splitKey struct {
	token  uint64
	offset int
}

type splitEntry struct {
	left, right []Token
}

// NewSplitCache builds an empty split cache.
func NewSplitCache() *SplitCache {
	return &SplitCache{entries: make(map[splitKey]splitEntry)}
}

func (sc *SplitCache) lookup(tok Token, offset int) (splitEntry, bool) {
	e, ok := sc.entries[splitKey{tok.index, offset}]
	return e, ok
}

func (sc *SplitCache) store(tok Token, offset int, left, right []Token) {
	sc.entries[splitKey{tok.index, offset}] = splitEntry{left: left, right: right}
}

// flattenSequence splits a flat token sequence at a local atom offset into
// a left part (width == offset) and a right part (width == total-offset).
// Any element straddling the offset is recursively split (§4.H).
func flattenSequence(g *Graph, sc *SplitCache, seq []Token, offset int) (left, right []Token) {
	cum := 0
	for _, tok := range seq {
		w := g.Width(tok)
		switch {
		case cum+w <= offset:
			left = append(left, tok)
		case cum >= offset:
			right = append(right, tok)
		default:
			localOff := offset - cum
			cl, cr := flattenSplit(g, sc, tok, localOff)
			left = append(left, cl...)
			right = append(right, cr...)
		}
		cum += w
	}
	return left, right
}

// flattenSplit splits one compound token at a local offset strictly inside
// it, walking its canonical pattern. Splitting through the canonical
// pattern is sufficient — split never needs to rewrite every one of a
// token's existing decompositions, only to produce one valid flattening
// that join can build a new decomposition from; the rest of the token's
// patterns are untouched alternatives that remain valid on their own
// terms. Memoized in sc so a child straddled by the same offset from
// multiple parent patterns is only split once.
func flattenSplit(g *Graph, sc *SplitCache, tok Token, offset int) (left, right []Token) {
	if cached, ok := sc.lookup(tok, offset); ok {
		return cached.left, cached.right
	}
	v := g.vertexOf(tok)
	if v == nil || v.kind != KindCompound {
		panicInvariant("split requested on a non-compound or unknown token")
	}
	if offset <= 0 || offset >= v.width {
		panicInvariant("split offset must fall strictly inside the token it straddles")
	}
	_, seq := g.canonicalPattern(v)
	left, right = flattenSequence(g, sc, seq, offset)
	sc.store(tok, offset, left, right)
	return left, right
}

// IntervalGraph is the working state of one split operation: the root
// token, the cache memoizing its recursive descents, and the resulting
// ordered partitions (§3.1, §4.H).
type IntervalGraph struct {
	Root       Token
	Cache      *SplitCache
	Partitions [][]Token
}

// Split partitions root at every offset in offsets (each strictly between
// 0 and root's width; out-of-range or duplicate offsets are ignored),
// producing an ordered list of flattened token partitions (§4.H).
func Split(g *Graph, root Token, offsets []int) *IntervalGraph {
	sc := NewSplitCache()
	width := g.Width(root)
	sorted := make([]int, 0, len(offsets))
	seen := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		if o > 0 && o < width && !seen[o] {
			seen[o] = true
			sorted = append(sorted, o)
		}
	}
	sort.Ints(sorted)

	v := g.vertexOf(root)
	var rootSeq []Token
	if v != nil && v.kind == KindCompound {
		_, rootSeq = g.canonicalPattern(v)
	} else {
		rootSeq = []Token{root}
	}

	current := rootSeq
	currentBase := 0
	var partitions [][]Token
	for _, off := range sorted {
		local := off - currentBase
		if local <= 0 {
			continue
		}
		left, right := flattenSequence(g, sc, current, local)
		if len(left) > 0 {
			partitions = append(partitions, left)
		}
		current = right
		currentBase = off
	}
	if len(current) > 0 {
		partitions = append(partitions, current)
	}

	g.traceHook().OnSplitApplied(root, sorted)
	return &IntervalGraph{Root: root, Cache: sc, Partitions: partitions}
}
