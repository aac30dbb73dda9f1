package anyeq

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

// Coin is the ancestor of the test hierarchy. Equality and hashing are
// defined here and compare the single stored value.
type Coin struct {
	Variant[Coin]
	Value int
}

func (c Coin) IsEqual(other Coin) bool {
	return c.Value == other.Value
}

func (c Coin) AppendHash(h *maphash.Hash) {
	maphash.WriteComparable(h, c.Value)
}

// GoldCoin and SilverCoin are stateless siblings, both inherit the
// ancestor's equality and hashing.
type GoldCoin struct {
	SubVariant[GoldCoin, Coin]
	Coin
}

type SilverCoin struct {
	SubVariant[SilverCoin, Coin]
	Coin
}

// WeightedCoin supplies its own equality, refining the ancestor's.
type WeightedCoin struct {
	SubVariant[WeightedCoin, Coin]
	Coin
	Weight int
}

func (w WeightedCoin) IsEqual(other WeightedCoin) bool {
	return w.Coin.IsEqual(other.Coin) && w.Weight == other.Weight
}

// Token is a separate hierarchy that never compares equal to any coin.
type Token struct {
	Variant[Token]
	Value int
}

func (t Token) IsEqual(other Token) bool {
	return t.Value == other.Value
}

var _ = ValidateVariant[Coin]()
var _ = ValidateVariant[GoldCoin]()
var _ = ValidateVariant[SilverCoin]()
var _ = ValidateVariant[WeightedCoin]()
var _ = ValidateVariant[Token]()

func gold(value int) GoldCoin {
	return GoldCoin{Coin: Coin{Value: value}}
}

func silver(value int) SilverCoin {
	return SilverCoin{Coin: Coin{Value: value}}
}

func weighted(value, weight int) WeightedCoin {
	return WeightedCoin{Coin: Coin{Value: value}, Weight: weight}
}

func TestDirectComparison(t *testing.T) {
	require.True(t, gold(1).IsEqual(silver(1).Coin))
	require.False(t, gold(2).IsEqual(silver(3).Coin))
}

func TestValueEqual(t *testing.T) {
	t.Run("siblings resolve via the ancestor", func(t *testing.T) {
		require.True(t, Of(gold(1)).Equal(Of(silver(1))))
		require.False(t, Of(gold(2)).Equal(Of(silver(3))))
	})

	t.Run("matches direct comparison for all pairs", func(t *testing.T) {
		for a := range 10 {
			for b := range 10 {
				direct := gold(a).IsEqual(silver(b).Coin)
				wrapped := Of(gold(a)).Equal(Of(silver(b)))
				require.Equal(t, direct, wrapped, "a=%d b=%d", a, b)
			}
		}
	})

	t.Run("same subtype", func(t *testing.T) {
		require.True(t, Of(gold(1)).Equal(Of(gold(1))))
		require.False(t, Of(gold(1)).Equal(Of(gold(2))))
	})

	t.Run("ancestor against subtype", func(t *testing.T) {
		require.True(t, Of(Coin{Value: 1}).Equal(Of(gold(1))))
		require.True(t, Of(gold(1)).Equal(Of(Coin{Value: 1})))
	})
}

func TestValueEqualOverride(t *testing.T) {
	t.Run("own equality wins between equal subtypes", func(t *testing.T) {
		require.True(t, Of(weighted(1, 5)).Equal(Of(weighted(1, 5))))
		require.False(t, Of(weighted(1, 5)).Equal(Of(weighted(1, 7))))
	})

	t.Run("mixed subtypes fall back to the ancestor", func(t *testing.T) {
		// the weight is invisible to the ancestor's equality
		require.True(t, Of(weighted(1, 5)).Equal(Of(gold(1))))
		require.False(t, Of(weighted(2, 5)).Equal(Of(gold(3))))
	})
}

func TestValueNoCommonAncestor(t *testing.T) {
	require.False(t, Of(gold(1)).Equal(Of(Token{Value: 1})))
	require.False(t, Of(Token{Value: 1}).Equal(Of(gold(1))))
}

func TestValueReflexiveAndSymmetric(t *testing.T) {
	values := []Value{
		Of(Coin{Value: 1}),
		Of(gold(1)),
		Of(silver(1)),
		Of(silver(2)),
		Of(weighted(1, 5)),
		Of(Token{Value: 1}),
	}

	for _, v := range values {
		require.True(t, v.Equal(v), "%s must equal itself", v)
	}

	for _, a := range values {
		for _, b := range values {
			require.Equal(t, a.Equal(b), b.Equal(a), "%s vs %s", a, b)
		}
	}
}

func TestValueHashConsistency(t *testing.T) {
	values := []Value{
		Of(Coin{Value: 1}),
		Of(Coin{Value: 2}),
		Of(gold(1)),
		Of(gold(2)),
		Of(silver(1)),
		Of(weighted(1, 5)),
		Of(weighted(1, 7)),
	}

	for _, a := range values {
		for _, b := range values {
			if a.Equal(b) {
				require.Equal(t, a.Hash(), b.Hash(), "%s vs %s", a, b)
			}
		}
	}
}

func TestValueAppendHash(t *testing.T) {
	seed := maphash.MakeSeed()

	sum := func(v Value) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		v.AppendHash(&h)
		return h.Sum64()
	}

	// streamed contributions follow the same anchor rule as Hash
	require.Equal(t, sum(Of(gold(1))), sum(Of(silver(1))))
	require.Equal(t, sum(Of(gold(1))), sum(Of(Coin{Value: 1})))
	require.NotEqual(t, sum(Of(gold(1))), sum(Of(gold(2))))
}

func TestValueZeroValue(t *testing.T) {
	var zero Value

	require.False(t, zero.Equal(zero))
	require.False(t, zero.Equal(Of(gold(1))))
	require.False(t, Of(gold(1)).Equal(zero))

	require.Equal(t, HashValue(0), zero.Hash())

	var h maphash.Hash
	require.NotPanics(t, func() { zero.AppendHash(&h) })
}

func TestValueAccessors(t *testing.T) {
	v := Of(gold(1))

	require.Equal(t, gold(1), v.Unwrap())
	require.Same(t, Of(gold(2)).Type(), v.Type())
	require.NotSame(t, Of(silver(1)).Type(), v.Type())
}
