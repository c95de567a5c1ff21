// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// AtomPosition counts atoms from some reference start; it has no meaning
// without knowing which cursor/role produced it.
type AtomPosition = int

// Role selects which direction a Path descends and advances in: Start
// follows first-child descent and walks forward through siblings; End
// follows last-child descent and walks backward. Role is a phantom tag on
// Path rather than two separate types, per the design note against
// inheritance in favor of small tagged structs (§9).
type Role uint8

const (
	RoleStart Role = iota
	RoleEnd
)

func (r Role) String() string {
	if r == RoleEnd {
		return "end"
	}
	return "start"
}

// PathRoot is either a location inside an existing token's pattern (Token
// non-zero), or a caller-owned, free-standing sequence (Token zero). A free
// sequence may contain the zero Token to stand in for an atom the caller
// has not inserted into the graph yet — it can never match anything, which
// is exactly the boundary behavior a query needs for atoms it has never
// seen (§6).
type PathRoot struct {
	Token   Token
	Pattern PatternId
	Free    []Token
}

type frame struct {
	parent  Token
	pattern PatternId
	seq     []Token
	index   int
}

// Path is a navigable route through nested token patterns: a descent stack
// of frames, each addressing one position in one pattern (§3.1, §4.B).
type Path struct {
	role      Role
	root      PathRoot
	frames    []frame
	exhausted bool
}

func startIndex(role Role, n int) int {
	if role == RoleEnd {
		return n - 1
	}
	return 0
}

// NewFreePath builds a Path rooted at a caller-owned sequence, positioned
// at its first element (Start) or last element (End).
func NewFreePath(role Role, seq []Token) Path {
	p := Path{role: role, root: PathRoot{Free: seq}}
	idx := startIndex(role, len(seq))
	p.frames = []frame{{seq: seq, index: idx}}
	if idx < 0 || idx >= len(seq) {
		p.exhausted = true
	}
	return p
}

// NewIndexPathAt builds a Path rooted at a specific PatternLocation inside
// the graph, starting at an explicit index within that pattern — used when
// resuming a match inside a parent exactly where a fully-matched child
// token used to sit (§4.F "hybrid cursor" / §4.G parent batch).
func NewIndexPathAt(g *Graph, role Role, loc PatternLocation, index int) Path {
	seq, err := g.ExpectChildren(loc.Parent, loc.Pattern)
	if err != nil {
		panicInvariant("index path rooted at a pattern that does not exist")
	}
	p := Path{role: role, root: PathRoot{Token: loc.Parent, Pattern: loc.Pattern}}
	p.frames = []frame{{parent: loc.Parent, pattern: loc.Pattern, seq: seq, index: index}}
	if index < 0 || index >= len(seq) {
		p.exhausted = true
	}
	return p
}

// NewIndexPath builds a Path rooted at the whole of a PatternLocation,
// starting at its canonical first/last element per role.
func NewIndexPath(g *Graph, role Role, loc PatternLocation) Path {
	seq, err := g.ExpectChildren(loc.Parent, loc.Pattern)
	if err != nil {
		panicInvariant("index path rooted at a pattern that does not exist")
	}
	return NewIndexPathAt(g, role, loc, startIndex(role, len(seq)))
}

func (p Path) Role() Role     { return p.role }
func (p Path) Root() PathRoot { return p.root }
func (p Path) RootToken() Token {
	return p.root.Token
}

// Exhausted reports whether this path has already stepped past its root's
// last element — the path's own "root exit" state (§4.E/§4.F).
func (p Path) Exhausted() bool { return p.exhausted }

// Leaf returns the token currently addressed by this path. Calling it on
// an exhausted path is a programmer error in this package: every caller
// checks Exhausted() first.
func (p Path) Leaf() Token {
	if p.exhausted {
		panicInvariant("leaf requested on an exhausted path")
	}
	f := p.frames[len(p.frames)-1]
	return f.seq[f.index]
}

func (p Path) clone() Path {
	frames := make([]frame, len(p.frames))
	copy(frames, p.frames)
	p.frames = frames
	return p
}

// descendAt pushes a frame for the current leaf's canonical child pattern,
// starting at index. Returns false if the leaf is not compound.
func (p *Path) descendAt(g *Graph, index int) bool {
	leaf := p.Leaf()
	v := g.vertexOf(leaf)
	if v == nil || v.kind != KindCompound {
		return false
	}
	pid, seq := g.canonicalPattern(v)
	p.frames = append(p.frames, frame{parent: leaf, pattern: pid, seq: seq, index: index})
	return true
}

// DescendFirst pushes a frame positioned at the leaf's first child.
func (p *Path) DescendFirst(g *Graph) bool {
	leaf := p.Leaf()
	v := g.vertexOf(leaf)
	if v == nil || v.kind != KindCompound {
		return false
	}
	return p.descendAt(g, 0)
}

// DescendLast pushes a frame positioned at the leaf's last child.
func (p *Path) DescendLast(g *Graph) bool {
	leaf := p.Leaf()
	v := g.vertexOf(leaf)
	if v == nil || v.kind != KindCompound {
		return false
	}
	_, seq := g.canonicalPattern(v)
	return p.descendAt(g, len(seq)-1)
}

// Descend follows the path's own role: first-child for Start, last-child
// for End.
func (p *Path) Descend(g *Graph) bool {
	if p.role == RoleStart {
		return p.DescendFirst(g)
	}
	return p.DescendLast(g)
}

// Ascend pops the innermost frame, returning to the parent's position.
// Returns false if already at the root frame.
func (p *Path) Ascend() bool {
	if len(p.frames) <= 1 {
		return false
	}
	p.frames = p.frames[:len(p.frames)-1]
	return true
}

// AdvanceNext steps the leaf frame to its next sibling (per role); on
// exhaustion it pops to the parent frame and retries. Returns false once
// the root itself is exhausted, after which Exhausted() reports true.
func (p *Path) AdvanceNext(g *Graph) bool {
	if p.exhausted {
		panicInvariant("advance called on an already-exhausted path")
	}
	for {
		f := &p.frames[len(p.frames)-1]
		if p.role == RoleStart {
			f.index++
			if f.index < len(f.seq) {
				return true
			}
		} else {
			f.index--
			if f.index >= 0 {
				return true
			}
		}
		if len(p.frames) == 1 {
			p.exhausted = true
			return false
		}
		p.frames = p.frames[:len(p.frames)-1]
	}
}

// RangePath carries a confirmed contiguous region as a Start/End path pair
// plus its total width. NewRangePath takes the width from its caller
// rather than re-deriving it from the two paths.
type RangePath struct {
	start Path
	end   Path
	width int
}

func NewRangePath(start, end Path, width int) RangePath {
	return RangePath{start: start, end: end, width: width}
}

func (r RangePath) StartPath() Path { return r.start }
func (r RangePath) EndPath() Path   { return r.end }
func (r RangePath) Width() int      { return r.width }
