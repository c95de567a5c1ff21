// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/fox-toolkit/fox/blob/master/LICENSE.txt.

package hypergraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexNotFoundErrorUnwraps(t *testing.T) {
	err := newVertexNotFoundError(Token{})
	require.ErrorIs(t, err, ErrVertexNotFound)
	var typed *VertexNotFoundError
	require.True(t, errors.As(err, &typed))
}

func TestIncompleteSearchErrorUnwraps(t *testing.T) {
	err := newIncompleteSearchError(3)
	require.ErrorIs(t, err, ErrIncompleteSearch)
	var typed *IncompleteSearchError
	require.True(t, errors.As(err, &typed))
	require.Equal(t, 3, typed.Checkpoint)
}

func TestPanicInvariantPanicsWithTypedValue(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		iv, ok := r.(*InvariantViolation)
		require.True(t, ok)
		require.Contains(t, iv.Error(), "boom")
	}()
	panicInvariant("boom")
}
