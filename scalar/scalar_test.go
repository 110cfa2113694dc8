package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polykit/utils/sampling"
)

func TestFloat64(t *testing.T) {
	x, y := Float64(1.5), Float64(-0.5)
	require.Equal(t, Float64(1), x.Add(y))
	require.Equal(t, Float64(-0.75), x.Mul(y))
	require.Equal(t, Float64(-1.5), x.Neg())
	require.Equal(t, Float64(-3), x.Quo(y))
	require.True(t, x.Equal(1.5))
	require.False(t, x.IsZero())
	require.True(t, x.Zero().IsZero())
	require.Equal(t, Float64(1), x.One())
	require.Equal(t, "1.5", x.String())
}

func TestInt64(t *testing.T) {
	x, y := Int64(7), Int64(-2)
	require.Equal(t, Int64(5), x.Add(y))
	require.Equal(t, Int64(-14), x.Mul(y))
	require.Equal(t, Int64(-7), x.Neg())
	require.Equal(t, Int64(-3), x.Quo(y)) // truncated towards zero
	require.True(t, x.Zero().IsZero())
	require.Equal(t, Int64(1), x.One())
	require.Equal(t, "-2", y.String())
}

func TestFloat(t *testing.T) {

	testFunc1("Exp", 1.4142135623730951, math.Exp, Float.Exp, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Float.Log, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Float.Pow, 1e-15, t)

	t.Run("Arithmetic", func(t *testing.T) {
		x := NewFloat(1.5, 128)
		y := NewFloat(-0.5, 128)
		require.True(t, x.Add(y).Equal(NewFloat(1.0, 128)))
		require.True(t, x.Mul(y).Equal(NewFloat(-0.75, 128)))
		require.True(t, x.Neg().Equal(NewFloat(-1.5, 128)))
		require.True(t, x.Quo(y).Equal(NewFloat(-3.0, 128)))
		require.True(t, x.Zero().IsZero())
		require.True(t, x.One().Equal(NewFloat(1, 64)))
		require.Equal(t, uint(128), x.Prec())
	})

	t.Run("EqualAcrossPrecisions", func(t *testing.T) {
		require.True(t, NewFloat(1.0, 53).Equal(NewFloat(1.0, 256)))
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var x Float
		require.True(t, x.IsZero())
		require.True(t, x.Add(NewFloat(2.0, 64)).Equal(NewFloat(2.0, 64)))
		require.Equal(t, 0.0, x.Float64())
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x Float) (y Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		require.InDelta(t, f(x), g(NewFloat(x, 53)).Float64(), delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e Float) (y Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		require.InDelta(t, f(x, e), g(NewFloat(x, 53), NewFloat(e, 53)).Float64(), delta)
	})
}

func TestConversions(t *testing.T) {
	require.Equal(t, []Float64{1, 2.5}, Float64s([]float64{1, 2.5}))
	require.Equal(t, []Float64{1, 2}, Float64s([]int{1, 2}))
	require.Equal(t, []Int64{-1, 3}, Int64s([]int{-1, 3}))
}

func TestSamplers(t *testing.T) {

	key := make([]byte, 32)

	t.Run("Deterministic", func(t *testing.T) {
		prngA, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		prngB, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sa := NewFloat64Sampler(prngA, -1, 1)
		sb := NewFloat64Sampler(prngB, -1, 1)

		for i := 0; i < 64; i++ {
			require.Equal(t, sa.Sample(), sb.Sample())
		}
	})

	t.Run("Float64Bounds", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		s := NewFloat64Sampler(prng, -2, 3)
		for i := 0; i < 1000; i++ {
			v := float64(s.Sample())
			require.GreaterOrEqual(t, v, -2.0)
			require.Less(t, v, 3.0)
		}
	})

	t.Run("Int64Bounds", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		s := NewInt64Sampler(prng, -5, 5)
		seen := map[Int64]bool{}
		for i := 0; i < 1000; i++ {
			v := s.Sample()
			require.GreaterOrEqual(t, v, Int64(-5))
			require.Less(t, v, Int64(5))
			seen[v] = true
		}
		require.Len(t, seen, 10)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		require.Panics(t, func() { NewFloat64Sampler(prng, 1, 1) })
		require.Panics(t, func() { NewInt64Sampler(prng, 3, -3) })
	})
}
