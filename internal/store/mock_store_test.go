package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStore_PutGetDelete(t *testing.T) {
	st := NewMockStore()
	ctx := context.Background()

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Put(ctx, "k", []byte("v")))

	v, err := st.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(v))

	require.NoError(t, st.Delete(ctx, "k"))
	_, err = st.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockStore_GetReturnsCopy(t *testing.T) {
	st := NewMockStore()
	ctx := context.Background()

	require.NoError(t, st.Put(ctx, "k", []byte("abc")))

	v, err := st.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, err := st.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
