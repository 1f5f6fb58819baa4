package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()
	require.False(t, None[int32]().IsPresent())
	require.True(t, Some(int32(7)).IsPresent())
	require.Equal(t, int32(7), Some(int32(7)).Value())
	require.Equal(t, int32(7), Some(int32(7)).OrElse(3))
	require.Equal(t, int32(3), None[int32]().OrElse(3))
	require.Equal(t, "7", Some(int32(7)).String())
	require.Equal(t, "<none>", None[int32]().String())
}
