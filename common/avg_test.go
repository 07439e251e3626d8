package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunningAverage(t *testing.T) {
	var a RunningAverage

	require.Equal(t, 0, a.Value())

	a = a.Update(NoValue, 1)
	a = a.Update(NoValue, 2)
	require.Equal(t, 3, a.Sum)
	require.Equal(t, 2, a.Count)
	require.Equal(t, 1, a.Value())

	a = a.Update(2, 4)
	require.Equal(t, 5, a.Sum)
	require.Equal(t, 2, a.Count)
	require.Equal(t, 2, a.Value())

	a = a.Update(1, NoValue)
	require.Equal(t, 4, a.Sum)
	require.Equal(t, 1, a.Count)
	require.Equal(t, 4, a.Value())
}

func TestRunningAverageNoOp(t *testing.T) {
	a := RunningAverage{Sum: 10, Count: 2}
	require.Equal(t, a, a.Update(NoValue, NoValue))
}

func TestRunningAverageClamps(t *testing.T) {
	t.Run("removal from empty", func(t *testing.T) {
		var a RunningAverage
		a = a.Update(100, NoValue)
		require.Equal(t, RunningAverage{}, a)
	})

	t.Run("replacement in empty", func(t *testing.T) {
		var a RunningAverage
		a = a.Update(50, 70)
		require.Equal(t, RunningAverage{Sum: 70, Count: 1}, a)
	})

	t.Run("sum never negative", func(t *testing.T) {
		a := RunningAverage{Sum: 10, Count: 3}
		a = a.Update(80, 0)
		require.Equal(t, 0, a.Sum)
		require.Equal(t, 3, a.Count)
		require.Equal(t, 0, a.Value())
	})
}
