// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import "github.com/emirpasic/gods/v2/trees/binaryheap"

// SearchNode is one entry in the search priority queue: a candidate root
// token to explore, the width it was queued under, and either nothing
// (a brand-new top-level candidate) or a resume location (continuing a
// match inside a parent) (§4.G).
type SearchNode struct {
	Token  Token
	Width  int
	Role   Role
	Query  Cursor
	Resume *ChildLocation
}

// searchNodeLess orders the priority queue by width then by token index —
// the deterministic tie-break this module commits to everywhere the spec
// leaves the comparator open (§9, DESIGN.md Open Question 1).
func searchNodeLess(a, b SearchNode) int {
	if a.Width != b.Width {
		if a.Width < b.Width {
			return -1
		}
		return 1
	}
	return uint64Compare(a.Token.index, b.Token.index)
}

// Response is returned by every query-API entry point (§6).
type Response struct {
	Cache *TraceCache
	End   MatchResult
}

// QueryExhausted reports whether every query atom was confirmed matched.
func (r Response) QueryExhausted() bool { return r.End.QueryExhausted }

// IsEntireRoot reports whether the match covered its root token exactly.
func (r Response) IsEntireRoot() bool { return r.End.Coverage == CoverageEntireRoot }

// AsComplete returns the matched root token when the response is both
// query-exhausted and covers its root exactly — the only case in which a
// response stands for one single, already-existing token.
func (r Response) AsComplete() (Token, bool) {
	if r.QueryExhausted() && r.IsEntireRoot() {
		return r.End.RootToken, true
	}
	return Token{}, false
}

// RootToken returns the best candidate root the search settled on, zero if
// nothing matched at all.
func (r Response) RootToken() Token { return r.End.RootToken }

// QueryCursor returns the end-state query cursor (§4.F's end-state
// policy): current on QueryExhausted, checkpoint on Mismatch.
func (r Response) QueryCursor() Cursor { return r.End.EndCursor }

// CheckpointPosition returns the confirmed atom position — the only
// position safe to drive an insertion from (§4.J).
func (r Response) CheckpointPosition() AtomPosition { return r.End.Checkpoint }

// SearchIterator explores candidate roots in increasing width order,
// tracking the best confirmed match seen so far (§4.G). Next is the only
// externally observable yield point (§5).
type SearchIterator struct {
	graph    *Graph
	queue    *binaryheap.Heap[SearchNode]
	cache    *TraceCache
	best     MatchResult
	haveBest bool
	done     bool
	steps    int
	maxSteps int
}

// NewSearchIterator seeds the queue with roots and begins a search for
// query against them.
func NewSearchIterator(g *Graph, query Cursor, roots []Token, opts ...SearchOption) *SearchIterator {
	cfg := newSearchConfig(opts)
	h := binaryheap.NewWith(searchNodeLess)
	for _, r := range roots {
		h.Push(SearchNode{Token: r, Width: g.Width(r), Role: query.Role(), Query: query.clone()})
	}
	return &SearchIterator{graph: g, queue: h, cache: NewTraceCache(), maxSteps: cfg.maxSteps}
}

// better implements the best_checkpoint update rule: prefer more confirmed
// query atoms; on a tie prefer an EntireRoot result; on a further tie
// prefer the smaller-width root (§4.G).
func (it *SearchIterator) better(a, b MatchResult) bool {
	if a.Checkpoint != b.Checkpoint {
		return a.Checkpoint > b.Checkpoint
	}
	aEntire, bEntire := a.Coverage == CoverageEntireRoot, b.Coverage == CoverageEntireRoot
	if aEntire != bEntire {
		return aEntire
	}
	return it.graph.Width(a.RootToken) < it.graph.Width(b.RootToken)
}

func (it *SearchIterator) updateBest(result MatchResult) {
	if result.Coverage == CoverageEmpty {
		return
	}
	if !it.haveBest || it.better(result, it.best) {
		it.best = result
		it.haveBest = true
	}
}

func newRootCursorForNode(g *Graph, n SearchNode) *RootCursor {
	if n.Resume == nil {
		return NewRootCursor(g, n.Query, n.Token)
	}
	return NewRootCursorAt(g, n.Query, n.Token, *n.Resume)
}

// Next pops the smallest-width candidate, runs it through the advance
// cycle, and — on a needs-parent outcome — queues that root's parents,
// continuing the query from the hybrid cursor (§4.G step 2). The rest of
// the queue is cleared first only when this root confirmed at least one
// query atom itself; a root whose resume slot was already the end of its
// pattern leaves its queued siblings in place. On an EntireRoot result it
// clears the queue unconditionally,
// since any strictly larger match is only reachable through this root's
// own parents, which the needs-parent path already handles (DESIGN.md Open
// Question 3). Returns false once the queue empties.
func (it *SearchIterator) Next() (MatchResult, bool) {
	if it.done {
		return MatchResult{}, false
	}
	if it.maxSteps > 0 && it.steps >= it.maxSteps {
		it.done = true
		return MatchResult{}, false
	}
	node, ok := it.queue.Pop()
	if !ok {
		it.done = true
		return MatchResult{}, false
	}
	it.steps++

	direction := directionFor(node.Role)
	it.cache.RecordVisit(node.Token, node.Query.AtomPosition(), direction, hyperedgeVisit{Parent: node.Token})
	it.graph.traceHook().OnRootPopped(node.Token, node.Width)

	rc := newRootCursorForNode(it.graph, node)
	result, rc2, needsParent := rc.AdvanceToEnd()
	it.updateBest(result)

	if needsParent {
		it.cache.RecordMatch(node.Token, result.Checkpoint, direction, result)
		if result.Checkpoint > node.Query.AtomPosition() {
			it.queue.Clear()
		}
		hybrid := rc2.hybridState()
		locs, _ := it.graph.ParentsOf(node.Token)
		parentTokens := make([]Token, 0, len(locs))
		for _, loc := range locs {
			l := loc
			parentTokens = append(parentTokens, l.Parent)
			it.queue.Push(SearchNode{
				Token:  l.Parent,
				Width:  it.graph.Width(l.Parent),
				Role:   node.Role,
				Query:  newCursorAt(hybrid.QueryPath.clone(), hybrid.ConfirmedPosition),
				Resume: &l,
			})
		}
		it.graph.traceHook().OnParentBatch(node.Token, parentTokens)
		return result, true
	}

	if result.Coverage == CoverageEntireRoot {
		it.queue.Clear()
	}
	return result, true
}

// drain runs a search iterator to completion and returns its best result.
func drain(it *SearchIterator) MatchResult {
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	return it.best
}
