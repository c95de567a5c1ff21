// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

// Cursor is a (path, atom_position) pair (§3.1). A PatternCursor is simply
// a Cursor whose Path is rooted at a free, caller-owned pattern; an
// IndexCursor is one rooted at a PatternLocation inside the graph. The two
// are not distinct Go types here — the distinction lives entirely in
// Path.root, and IsIndexCursor reads it back out when a caller needs to
// branch on it.
type Cursor struct {
	path Path
	pos  AtomPosition
}

// NewCursor wraps a fresh Path as a Cursor starting at atom position 0.
func NewCursor(path Path) Cursor {
	return Cursor{path: path, pos: 0}
}

// newCursorAt wraps a Path together with an already-known atom position —
// used to build the hybrid cursor the search iterator resumes a query with
// in a parent (§4.F, §4.G).
func newCursorAt(path Path, pos AtomPosition) Cursor {
	return Cursor{path: path, pos: pos}
}

func (c Cursor) Path() Path                 { return c.path }
func (c Cursor) AtomPosition() AtomPosition  { return c.pos }
func (c Cursor) Leaf() Token                 { return c.path.Leaf() }
func (c Cursor) RootToken() Token            { return c.path.RootToken() }
func (c Cursor) Role() Role                  { return c.path.Role() }
func (c Cursor) IsIndexCursor() bool         { return !c.path.root.Token.IsZero() }

// AdvanceNext advances the underlying path by one leaf, accumulating the
// just-passed leaf's width into the atom position. Returns false once the
// cursor's root is exhausted.
func (c *Cursor) AdvanceNext(g *Graph) bool {
	leaf := c.path.Leaf()
	w := g.Width(leaf)
	ok := c.path.AdvanceNext(g)
	c.pos += w
	return ok
}

// Descend pushes a frame for the current leaf's canonical child pattern.
func (c *Cursor) Descend(g *Graph) bool { return c.path.Descend(g) }

// Ascend pops back to the parent frame.
func (c *Cursor) Ascend() bool { return c.path.Ascend() }

func (c Cursor) clone() Cursor {
	return Cursor{path: c.path.clone(), pos: c.pos}
}
