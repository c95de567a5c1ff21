// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"iter"

	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/tokengraph/hypergraph/internal/iterutil"
)

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func uint64Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func patternIdCompare(a, b PatternId) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// vertex is the internal, mutable representation of one arena slot. Only
// Graph's own methods ever touch its fields directly; every external caller
// goes through Token handles and the read-only VertexData snapshot.
type vertex struct {
	kind          Kind
	width         int
	label         string
	children      *treemap.Map[PatternId, []Token]
	order         []PatternId // insertion order, used to pick a deterministic canonical pattern
	nextPatternId PatternId
	parents       *treemap.Map[uint64, []ChildLocation] // parent token index -> locations
}

func newVertexChildren() *treemap.Map[PatternId, []Token] {
	return treemap.NewWith[PatternId, []Token](patternIdCompare)
}

func newVertexParents() *treemap.Map[uint64, []ChildLocation] {
	return treemap.NewWith[uint64, []ChildLocation](uint64Compare)
}

// Graph is the content-addressed hypergraph store: an arena of Tokens plus
// the back-edges needed to climb from a token to everywhere it occurs
// (§4.A). It carries no persistence and no concurrency control of its own
// — it is a single-threaded, in-memory authority, per §5.
type Graph struct {
	vertices  []*vertex // index 0 is an unused sentinel so Token{} is invalid
	atomIndex map[string]Token
	byWidth   map[int][]Token // compound tokens only, for insert_or_get_complete lookups
	trace     TraceHook
}

// NewGraph constructs an empty hypergraph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make([]*vertex, 1),
		atomIndex: make(map[string]Token),
		byWidth:   make(map[int][]Token),
		trace:     NoopTrace{},
	}
	for _, o := range opts {
		o.applyGraph(g)
	}
	return g
}

func (g *Graph) alloc(v *vertex) Token {
	idx := uint64(len(g.vertices))
	g.vertices = append(g.vertices, v)
	return Token{index: idx}
}

func (g *Graph) vertexOf(tok Token) *vertex {
	if tok.index == 0 || tok.index >= uint64(len(g.vertices)) {
		return nil
	}
	return g.vertices[tok.index]
}

// Width returns a token's total atom width. Panics with InvariantViolation
// if the token is unknown, since width is only ever asked of a token a
// caller already holds through this package's own constructions.
func (g *Graph) Width(tok Token) int {
	v := g.vertexOf(tok)
	if v == nil {
		panicInvariant("width requested for unknown token")
	}
	return v.width
}

// Kind reports whether tok is an atom or a compound token.
func (g *Graph) Kind(tok Token) Kind {
	v := g.vertexOf(tok)
	if v == nil {
		panicInvariant("kind requested for unknown token")
	}
	return v.kind
}

func (g *Graph) lookupAtom(label string) (Token, bool) {
	tok, ok := g.atomIndex[label]
	return tok, ok
}

// GetAtomToken looks up the token already assigned to an atom label, without
// inserting it if absent.
func (g *Graph) GetAtomToken(label string) (Token, bool) {
	return g.lookupAtom(label)
}

// InsertAtom inserts (or reuses) the atom token for label. Idempotent:
// inserting the same label twice returns the same Token, mirroring the
// teacher's "no-op if already present" edge insertion (fox/tree2.go
// insertStatic).
func (g *Graph) InsertAtom(label string) Token {
	if tok, ok := g.atomIndex[label]; ok {
		return tok
	}
	tok := g.alloc(&vertex{kind: KindAtom, width: 1, label: label})
	g.atomIndex[label] = tok
	return tok
}

// InsertAtoms inserts a whole sequence of atom labels and returns their
// tokens in order (§6 insert_atoms).
func (g *Graph) InsertAtoms(labels []string) []Token {
	out := make([]Token, len(labels))
	for i, l := range labels {
		out[i] = g.InsertAtom(l)
	}
	return out
}

// AtomTokens ranges over every atom token currently known to the graph.
func (g *Graph) AtomTokens() iter.Seq[Token] {
	labels := make([]string, 0, len(g.atomIndex))
	for l := range g.atomIndex {
		labels = append(labels, l)
	}
	return iterutil.Map(iterutil.SeqOf(labels...), func(l string) Token { return g.atomIndex[l] })
}

func (g *Graph) patternWidth(seq []Token) int {
	w := 0
	for _, t := range seq {
		w += g.Width(t)
	}
	return w
}

// GetVertex returns the read-only snapshot of a token's vertex (§4.A).
func (g *Graph) GetVertex(tok Token) (VertexData, error) {
	v := g.vertexOf(tok)
	if v == nil {
		return VertexData{}, newVertexNotFoundError(tok)
	}
	return g.snapshot(tok, v), nil
}

func (g *Graph) snapshot(tok Token, v *vertex) VertexData {
	data := VertexData{Kind: v.kind, Width: v.width, Label: v.label}
	if v.children != nil {
		data.Patterns = make(map[PatternId][]Token, v.children.Size())
		for _, pid := range v.order {
			seq, _ := v.children.Get(pid)
			data.Patterns[pid] = append([]Token(nil), seq...)
		}
	}
	if v.parents != nil {
		for _, locs := range v.parents.Values() {
			data.Parents = append(data.Parents, locs...)
		}
	}
	return data
}

// ExpectChildren returns the exact token sequence for one of tok's child
// patterns, or ErrVertexNotFound if tok or pid is unknown (§4.A).
func (g *Graph) ExpectChildren(tok Token, pid PatternId) ([]Token, error) {
	v := g.vertexOf(tok)
	if v == nil || v.children == nil {
		return nil, newVertexNotFoundError(tok)
	}
	seq, ok := v.children.Get(pid)
	if !ok {
		return nil, newVertexNotFoundError(tok)
	}
	return seq, nil
}

// ParentsOf returns every location where tok occurs as a child, across
// every parent that references it (§4.A parents_of).
func (g *Graph) ParentsOf(tok Token) ([]ChildLocation, error) {
	v := g.vertexOf(tok)
	if v == nil {
		return nil, newVertexNotFoundError(tok)
	}
	if v.parents == nil {
		return nil, nil
	}
	var out []ChildLocation
	for _, locs := range v.parents.Values() {
		out = append(out, locs...)
	}
	return out, nil
}

// canonicalPattern picks the deterministic default decomposition for a
// compound vertex: first in insertion order. Every descent in this package
// visits a given token for the first time in a fresh traversal, so "first
// visited" and "first inserted" always coincide here — there is no call
// site that would need a "prefer the pattern we arrived through" override.
func (g *Graph) canonicalPattern(v *vertex) (PatternId, []Token) {
	pid := v.order[0]
	seq, _ := v.children.Get(pid)
	return pid, seq
}

func (g *Graph) hasPattern(v *vertex, seq []Token) (PatternId, bool) {
	for _, pid := range v.order {
		existing, _ := v.children.Get(pid)
		if sameSeq(existing, seq) {
			return pid, true
		}
	}
	return 0, false
}

func sameSeq(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (g *Graph) addChildPatternLocked(tok Token, v *vertex, seq []Token) PatternId {
	pid := v.nextPatternId
	v.nextPatternId++
	cp := append([]Token(nil), seq...)
	v.children.Put(pid, cp)
	v.order = append(v.order, pid)
	for i, child := range cp {
		g.addBackEdge(child, tok, pid, i)
	}
	return pid
}

func (g *Graph) addBackEdge(child, parent Token, pid PatternId, subIndex int) {
	cv := g.vertexOf(child)
	if cv == nil {
		panicInvariant("back-edge added to unknown child token")
	}
	if cv.parents == nil {
		cv.parents = newVertexParents()
	}
	locs, _ := cv.parents.Get(parent.index)
	locs = append(locs, ChildLocation{Parent: parent, Pattern: pid, SubIndex: subIndex})
	cv.parents.Put(parent.index, locs)
}

// AddChildPattern adds seq as an additional decomposition of an existing
// compound token. The previous patterns remain — this never replaces
// anything, it only grows the set of equivalent decompositions (§4.I
// "perfect border": "adding a new child pattern to the root - the previous
// one remains"). Idempotent: adding a pattern already present returns its
// existing id. Width mismatch is an invariant violation, never an error,
// because it can only be reached by a caller misusing the API against its
// own already-known width.
func (g *Graph) AddChildPattern(parent Token, seq []Token) (PatternId, error) {
	v := g.vertexOf(parent)
	if v == nil {
		return 0, newVertexNotFoundError(parent)
	}
	if len(seq) < 2 {
		return 0, ErrSingleIndex
	}
	if g.patternWidth(seq) != v.width {
		panicInvariant("child pattern width does not match parent width")
	}
	if pid, ok := g.hasPattern(v, seq); ok {
		return pid, nil
	}
	return g.addChildPatternLocked(parent, v, seq), nil
}

// InsertOrGetComplete is the hypergraph's single allocation entry point for
// compound tokens (§4.A, reused throughout §4.I/§4.K). patterns is a
// non-empty list of equivalent decompositions sharing one total width: the
// primary one plus any already-known alternative merges. If a token already
// has one of these patterns verbatim, it is reused (and any of the other
// listed patterns not yet attached are added to it); otherwise a brand-new
// token is allocated carrying every listed pattern, so a token can be born
// with more than one decomposition already attached.
func (g *Graph) InsertOrGetComplete(patterns [][]Token) (Token, error) {
	if len(patterns) == 0 {
		panicInvariant("insert_or_get_complete called with no patterns")
	}
	for _, p := range patterns {
		if len(p) < 2 {
			return Token{}, ErrSingleIndex
		}
	}
	width := g.patternWidth(patterns[0])
	for _, p := range patterns[1:] {
		if g.patternWidth(p) != width {
			panicInvariant("equivalent decompositions passed to insert_or_get_complete must share width")
		}
	}
	for _, cand := range g.byWidth[width] {
		v := g.vertexOf(cand)
		matched := false
		for _, p := range patterns {
			if _, ok := g.hasPattern(v, p); ok {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, p := range patterns {
			if _, ok := g.hasPattern(v, p); !ok {
				g.addChildPatternLocked(cand, v, p)
			}
		}
		return cand, nil
	}
	tok := g.alloc(&vertex{kind: KindCompound, width: width, children: newVertexChildren()})
	v := g.vertexOf(tok)
	for _, p := range patterns {
		if _, ok := g.hasPattern(v, p); !ok {
			g.addChildPatternLocked(tok, v, p)
		}
	}
	g.byWidth[width] = append(g.byWidth[width], tok)
	return tok, nil
}

func (g *Graph) traceHook() TraceHook {
	if g.trace == nil {
		return NoopTrace{}
	}
	return g.trace
}
