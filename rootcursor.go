// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// CoverageKind classifies how a match result covers its root (§3.1).
type CoverageKind uint8

const (
	// CoverageEmpty is the zero value: no progress was made at all, and
	// callers should skip the result rather than treat it as a match.
	CoverageEmpty CoverageKind = iota
	CoverageEntireRoot
	CoveragePrefix
	CoveragePostfix
	CoverageRange
)

// MatchResult is the outcome of running a single candidate root through
// the advance cycle (§3.1, §4.F).
type MatchResult struct {
	Coverage       CoverageKind
	RootToken      Token
	EndCursor      Cursor
	QueryExhausted bool
	// Checkpoint is the confirmed atom position independent of which
	// end-state cursor policy produced EndCursor — the one number every
	// aggregation and insertion decision is allowed to rely on (§4.J).
	Checkpoint AtomPosition
}

func ptrCK(c CheckpointedCursor) *CheckpointedCursor { return &c }

// RootCursor drives one candidate root token through the advance cycle:
// repeatedly calling AdvanceToNextMatch and reacting to its outcome until
// the query is exhausted, the child is exhausted (meaning the caller must
// explore this root's parents), or a real mismatch with no further
// decomposition is reached (§4.F).
type RootCursor struct {
	graph *Graph
	root  Token
	state CompareState
}

// NewRootCursor builds a RootCursor exploring root as a whole — the
// candidate token has not yet been placed inside any parent pattern.
func NewRootCursor(g *Graph, query Cursor, root Token) *RootCursor {
	child := NewCursor(NewFreePath(query.Role(), []Token{root}))
	return &RootCursor{
		graph: g,
		root:  root,
		state: CompareState{
			Query: ptrCK(NewCheckpointedCursor(query)),
			Child: ptrCK(NewCheckpointedCursor(child)),
		},
	}
}

// NewRootCursorAt builds a RootCursor resuming inside a parent exactly
// where a previously fully-matched child used to sit, continuing the query
// from a hybrid cursor (§4.G parent batch).
func NewRootCursorAt(g *Graph, query Cursor, root Token, resume ChildLocation) *RootCursor {
	nextIdx := resume.SubIndex + 1
	if query.Role() == RoleEnd {
		nextIdx = resume.SubIndex - 1
	}
	loc := PatternLocation{Parent: resume.Parent, Pattern: resume.Pattern}
	child := NewCursor(NewIndexPathAt(g, query.Role(), loc, nextIdx))
	return &RootCursor{
		graph: g,
		root:  root,
		state: CompareState{
			Query: ptrCK(NewCheckpointedCursor(query)),
			Child: ptrCK(NewCheckpointedCursor(child)),
		},
	}
}

func (rc *RootCursor) finalResult(kind CoverageKind, endCursor Cursor, queryExhausted bool) MatchResult {
	return MatchResult{
		Coverage:       kind,
		RootToken:      rc.root,
		EndCursor:      endCursor,
		QueryExhausted: queryExhausted,
		Checkpoint:     rc.state.Query.Checkpoint().AtomPosition(),
	}
}

// ParentExplorationState is the payload exported when a root's child
// cursor is exhausted before the query. It combines current.path (where
// the next unmatched query token lives, so matching can continue in a
// parent) with checkpoint.atom_position (the confirmed length) — using
// checkpoint.path would regress the query's position; using
// current.atom_position would claim progress that was never confirmed
// (§4.F "hybrid cursor").
type ParentExplorationState struct {
	QueryPath         Path
	ConfirmedPosition AtomPosition
	Root              Token
}

func (rc *RootCursor) hybridState() ParentExplorationState {
	return ParentExplorationState{
		QueryPath:         rc.state.Query.Current().Path(),
		ConfirmedPosition: rc.state.Query.Checkpoint().AtomPosition(),
		Root:              rc.root,
	}
}

// AdvanceToEnd runs the advance cycle to completion for this root (§4.F):
//
//	Matched        -> advance + confirm both cursors, loop
//	QueryExhausted -> Ok(EntireRoot or Prefix, query_exhausted=true)
//	ChildExhausted -> needs-parent: caller must explore rc's parents
//	Mismatch       -> Ok(Range, query_exhausted=false) if progress was made,
//	                  else Ok(empty) and the caller skips it
func (rc *RootCursor) AdvanceToEnd() (MatchResult, *RootCursor, bool) {
	for {
		switch AdvanceToNextMatch(rc.graph, rc.state) {
		case Matched:
			rc.state.Query.Advance(rc.graph)
			rc.state.Child.Advance(rc.graph)
			rc.state.Query.MarkMatch()
			rc.state.Child.MarkMatch()
		case QueryExhausted:
			kind := CoveragePrefix
			if rc.state.Child.Current().Path().Exhausted() {
				kind = CoverageEntireRoot
			}
			return rc.finalResult(kind, rc.state.Query.Current(), true), rc, false
		case ChildExhausted:
			return rc.finalResult(CoverageRange, rc.state.Query.Checkpoint(), false), rc, true
		case Mismatch:
			if rc.state.Query.Checkpoint().AtomPosition() == 0 {
				return MatchResult{Coverage: CoverageEmpty, RootToken: rc.root}, nil, false
			}
			rc.state.Query.MarkMismatch()
			rc.state.Child.MarkMismatch()
			return rc.finalResult(CoverageRange, rc.state.Query.Checkpoint(), false), nil, false
		}
	}
}
