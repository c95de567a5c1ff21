// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// InitInterval anchors an insertion to a specific partial search response:
// the root it matched against, the trace cache that search built, and the
// confirmed end bound to split at. Insert carries Cache along but does not
// read it; the split walks the root's canonical pattern afresh. EndBound must come from a response's checkpoint
// position, never its exploratory cursor position — splitting at an
// unconfirmed position could cut through a token the engine never actually
// verified matches (§4.J).
type InitInterval struct {
	Root     Token
	Cache    *TraceCache
	EndBound AtomPosition
}

// InitIntervalFromResponse builds an InitInterval from a partial search
// response. Meaningful only when the response did not reach a complete,
// query-exhausted match (§6).
func InitIntervalFromResponse(r Response) InitInterval {
	return InitInterval{Root: r.RootToken(), Cache: r.Cache, EndBound: r.CheckpointPosition()}
}

// Insert performs split(root, end_bound) followed by join, appending any
// unmatched suffix as one more partition after the tail before joining
// (§4.J).
func Insert(g *Graph, init InitInterval, suffix []Token) (Token, error) {
	ig := Split(g, init.Root, []int{init.EndBound})
	if len(suffix) > 0 {
		ig.Partitions = append(ig.Partitions, suffix)
	}
	return ig.Join(g)
}

// InsertSequence performs the full insert surface operation (§6 insert):
// search for seq, and if the match is already complete return its root
// directly; otherwise run the split/join pipeline against the partial
// match, grafting on whatever of seq the search never reached.
func InsertSequence(g *Graph, seq []Token) (Token, error) {
	resp, err := FindSequence(g, seq)
	if err != nil {
		return Token{}, err
	}
	if complete, ok := resp.AsComplete(); ok {
		return complete, nil
	}
	if resp.RootToken().IsZero() {
		return g.InsertOrGetComplete([][]Token{seq})
	}
	init := InitIntervalFromResponse(resp)
	matched := init.EndBound
	if matched < 0 || matched > len(seq) {
		panicInvariant("checkpoint position out of range of the query it was derived from")
	}
	suffix := seq[matched:]
	return Insert(g, init, suffix)
}

// InsertOrGetComplete is the idempotent surface operation (§6
// insert_or_get_complete): if seq is already present as an exact,
// query-exhausted match of some entire root, that root is returned as-is;
// otherwise it behaves exactly like InsertSequence.
func InsertOrGetComplete(g *Graph, seq []Token) (Token, error) {
	resp, err := FindSequence(g, seq)
	if err != nil {
		return Token{}, err
	}
	if complete, ok := resp.AsComplete(); ok {
		return complete, nil
	}
	return InsertSequence(g, seq)
}

// InsertInit performs the insert_init surface operation (§6): the same
// split/join pipeline as InsertSequence, but driven directly from an
// already-computed InitInterval rather than running a fresh search first
// — the entry point a caller reaches for when it already holds a Response
// from an earlier query and wants to avoid re-searching.
func InsertInit(g *Graph, init InitInterval, suffix []Token) (Token, error) {
	return Insert(g, init, suffix)
}
