// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import "github.com/emirpasic/gods/v2/maps/treemap"

// Direction records which way a token was being explored when a trace
// entry was recorded — bottom-up for a Start-role search climbing from
// children to parents, top-down for an End-role search.
type Direction uint8

const (
	DirectionBottomUp Direction = iota
	DirectionTopDown
)

func directionFor(role Role) Direction {
	if role == RoleEnd {
		return DirectionTopDown
	}
	return DirectionBottomUp
}

type hyperedgeVisit struct {
	Parent  Token
	Pattern PatternId
}

// PositionCache is the per-(token, position, direction) memo slot: which
// hyperedges have already been visited from here, and the best match
// result recorded at this exact slot, if any (§4.C).
type PositionCache struct {
	visited map[hyperedgeVisit]struct{}
	result  *MatchResult
}

func newPositionCache() *PositionCache {
	return &PositionCache{visited: make(map[hyperedgeVisit]struct{})}
}

// Visited reports whether a given hyperedge has already been recorded at
// this position.
func (pc *PositionCache) Visited(edge hyperedgeVisit) bool {
	_, ok := pc.visited[edge]
	return ok
}

// Result returns the best match recorded at this position, if any.
func (pc *PositionCache) Result() (MatchResult, bool) {
	if pc.result == nil {
		return MatchResult{}, false
	}
	return *pc.result, true
}

type vertexCache struct {
	byDirection [2]*treemap.Map[AtomPosition, *PositionCache]
}

func newVertexCache() *vertexCache {
	return &vertexCache{byDirection: [2]*treemap.Map[AtomPosition, *PositionCache]{
		treemap.NewWith[AtomPosition, *PositionCache](intCompare),
		treemap.NewWith[AtomPosition, *PositionCache](intCompare),
	}}
}

// TraceCache is a per-search, position-indexed memoization of which
// hyperedges have been visited and which matches have been found, keyed by
// (token, atom_position, direction) (§4.C). It is owned by the search
// operation that constructed it and handed back to the caller through
// Response, and from there into an InitInterval; Insert does not read it.
type TraceCache struct {
	vertices *treemap.Map[uint64, *vertexCache]
}

// NewTraceCache builds an empty cache.
func NewTraceCache() *TraceCache {
	return &TraceCache{vertices: treemap.NewWith[uint64, *vertexCache](uint64Compare)}
}

func (tc *TraceCache) slot(tok Token, pos AtomPosition, dir Direction) *PositionCache {
	vc, ok := tc.vertices.Get(tok.index)
	if !ok {
		vc = newVertexCache()
		tc.vertices.Put(tok.index, vc)
	}
	pm := vc.byDirection[dir]
	pc, ok := pm.Get(pos)
	if !ok {
		pc = newPositionCache()
		pm.Put(pos, pc)
	}
	return pc
}

// RecordVisit marks one hyperedge as visited at (token, position,
// direction). Idempotent.
func (tc *TraceCache) RecordVisit(tok Token, pos AtomPosition, dir Direction, edge hyperedgeVisit) {
	tc.slot(tok, pos, dir).visited[edge] = struct{}{}
}

// RecordMatch records a match outcome at (token, position, direction).
// Idempotent, and only ever strengthens a slot: a new result overwrites the
// old one only if it confirms at least as many query atoms (§4.C).
func (tc *TraceCache) RecordMatch(tok Token, pos AtomPosition, dir Direction, result MatchResult) {
	pc := tc.slot(tok, pos, dir)
	if pc.result == nil || result.Checkpoint >= pc.result.Checkpoint {
		r := result
		pc.result = &r
	}
}

// Lookup returns the cache slot for (token, position, direction), if any
// trace has been recorded there yet.
func (tc *TraceCache) Lookup(tok Token, pos AtomPosition, dir Direction) (*PositionCache, bool) {
	vc, ok := tc.vertices.Get(tok.index)
	if !ok {
		return nil, false
	}
	pc, ok := vc.byDirection[dir].Get(pos)
	return pc, ok
}
