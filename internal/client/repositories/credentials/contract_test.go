package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRepositoryContract checks the behaviour every backend must share.
func testRepositoryContract(t *testing.T, r Repository) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		v, ok, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "token", "abc.def.ghi"))

		v, ok, err := r.Get(ctx, "token")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "abc.def.ghi", v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "user", `{"id":1}`))
		require.NoError(t, r.Set(ctx, "user", `{"id":2}`))

		v, ok, err := r.Get(ctx, "user")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, `{"id":2}`, v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "blank", ""))

		v, ok, err := r.Get(ctx, "blank")
		require.NoError(t, err)
		require.True(t, ok)
		require.Empty(t, v)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "x", "1"))
		require.NoError(t, r.Remove(ctx, "x"))

		_, ok, err := r.Get(ctx, "x")
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, r.Remove(ctx, "x"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, r.Set(ctx, "token", "T"))
		require.NoError(t, r.Set(ctx, "user", "U"))
		require.NoError(t, r.Remove(ctx, "token"))

		v, ok, err := r.Get(ctx, "user")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "U", v)
	})
}
