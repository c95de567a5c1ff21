// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// tokenComparer treats two Tokens as equal purely on their opaque index,
// since Token itself is already a plain comparable struct but cmp's default
// behavior would otherwise walk into its unexported field and refuse to
// diff it at all.
var tokenComparer = cmp.Comparer(func(a, b Token) bool {
	return a.index == b.index
})

func TestVertexDataDiffAfterAddChildPattern(t *testing.T) {
	g := NewGraph()
	a, b, c := g.InsertAtom("a"), g.InsertAtom("b"), g.InsertAtom("c")
	ab, err := g.InsertOrGetComplete([][]Token{{a, b}})
	if err != nil {
		t.Fatal(err)
	}
	bc, err := g.InsertOrGetComplete([][]Token{{b, c}})
	if err != nil {
		t.Fatal(err)
	}
	abc, err := g.InsertOrGetComplete([][]Token{{ab, c}})
	if err != nil {
		t.Fatal(err)
	}

	before, err := g.GetVertex(abc)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := g.AddChildPattern(abc, []Token{a, bc}); err != nil {
		t.Fatal(err)
	}

	after, err := g.GetVertex(abc)
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(before, after, tokenComparer, cmpopts.IgnoreFields(VertexData{}, "Parents"))
	if diff == "" {
		t.Fatal("expected AddChildPattern to change the vertex's pattern set, got no diff")
	}
	if len(after.Patterns) != len(before.Patterns)+1 {
		t.Fatalf("want %d patterns after AddChildPattern, got %d", len(before.Patterns)+1, len(after.Patterns))
	}
}
