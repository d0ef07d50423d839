package bitvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndBasics(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 0, v.CountOnes())

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestSetGetAndCount(t *testing.T) {
	v, _ := New(5)
	require.NoError(t, v.Set(0, true))
	require.NoError(t, v.Set(4, true))
	got, err := v.Get(0)
	require.NoError(t, err)
	assert.True(t, got)
	got, err = v.Get(1)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, 2, v.CountOnes())

	_, err = v.Get(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Set(-1, true), ErrIndexOutOfRange)
}

func TestSetAllFlipAllMasksTopWord(t *testing.T) {
	v, _ := New(70) // spans two words, 6 residual bits in the second
	v.SetAll()
	assert.Equal(t, 70, v.CountOnes())

	v.FlipAll()
	assert.Equal(t, 0, v.CountOnes())
}

func TestAlignedOpsRequireMatchingLength(t *testing.T) {
	a, _ := New(8)
	b, _ := New(9)
	assert.ErrorIs(t, a.AndEq(b), ErrSizeMismatch)
}

func TestAndOrXorEq(t *testing.T) {
	a, _ := FromString("1100")
	b, _ := FromString("1010")

	c := a.Clone()
	require.NoError(t, c.AndEq(b))
	assert.Equal(t, "1000", c.String())

	c = a.Clone()
	require.NoError(t, c.OrEq(b))
	assert.Equal(t, "1110", c.String())

	c = a.Clone()
	require.NoError(t, c.XorEq(b))
	assert.Equal(t, "0110", c.String())

	c = a.Clone()
	require.NoError(t, c.AndEqNot(b))
	assert.Equal(t, "0100", c.String())
}

func TestTernaryAndOr(t *testing.T) {
	a, _ := FromString("1100")
	b, _ := FromString("1010")
	dest, _ := New(0)

	require.NoError(t, And(dest, a, b))
	assert.Equal(t, "1000", dest.String())

	require.NoError(t, Or(dest, a, b))
	assert.Equal(t, "1110", dest.String())
}

func TestOrEqAnd(t *testing.T) {
	dest, _ := FromString("0001")
	a, _ := FromString("1100")
	b, _ := FromString("1010")
	require.NoError(t, OrEqAnd(dest, a, b))
	assert.Equal(t, "1001", dest.String())
}

func TestSafeVariantsZeroExtend(t *testing.T) {
	a, _ := FromString("1111")   // len 4
	b, _ := FromString("10")     // len 2
	dest, _ := New(0)

	require.NoError(t, AndSafe(dest, a, b))
	assert.Equal(t, 4, dest.Len())
	assert.Equal(t, "1000", dest.String()) // bits 2,3 of b are 0-extended

	require.NoError(t, OrSafe(dest, a, b))
	assert.Equal(t, "1111", dest.String()) // pass-through beyond b's length

	require.NoError(t, XorSafe(dest, a, b))
	assert.Equal(t, "0111", dest.String())
}

func TestNotSafeAndNandAndAndNot(t *testing.T) {
	a, _ := FromString("1100")
	dest, _ := New(0)

	require.NoError(t, NotSafe(dest, a))
	assert.Equal(t, "0011", dest.String())

	b, _ := FromString("1010")
	require.NoError(t, NandSafe(dest, a, b))
	assert.Equal(t, "0111", dest.String())

	require.NoError(t, AndNotSafe(dest, a, b))
	assert.Equal(t, "0100", dest.String())
}

func TestResizeGrowShrink(t *testing.T) {
	v, _ := FromString("1111")
	require.NoError(t, v.Resize(6))
	assert.Equal(t, "111100", v.String())
	assert.Equal(t, 4, v.CountOnes())

	require.NoError(t, v.Resize(2))
	assert.Equal(t, "11", v.String())
	assert.Equal(t, 2, v.CountOnes())

	assert.ErrorIs(t, v.Resize(-1), ErrNegativeLength)
}

func TestCloneAndCopyFromAreIndependent(t *testing.T) {
	a, _ := FromString("1010")
	b := a.Clone()
	require.NoError(t, b.Set(0, false))
	assert.NotEqual(t, a.String(), b.String())

	c, _ := New(1)
	c.CopyFrom(a)
	assert.Equal(t, a.String(), c.String())
	assert.Equal(t, a.Len(), c.Len())
}

func TestFirstSet(t *testing.T) {
	v, _ := FromString("0010100")
	idx, err := v.FirstSet(0)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = v.FirstSet(3)
	require.NoError(t, err)
	assert.Equal(t, 4, idx)

	idx, err = v.FirstSet(5)
	require.NoError(t, err)
	assert.Equal(t, noFirstSet, idx)

	_, err = v.FirstSet(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFromStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "0", "1", "0101010101", "111111110000000011"} {
		v, err := FromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestFromStringSkipsUnrecognizedChars(t *testing.T) {
	v, err := FromString("1,0,1")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, "101", v.String())
}

func TestBinaryRoundTrip(t *testing.T) {
	v, _ := FromString("110100101101")
	data, err := v.MarshalBinary()
	require.NoError(t, err)

	var got BitVector
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, v.String(), got.String())
	assert.Equal(t, v.CountOnes(), got.CountOnes())

	assert.ErrorIs(t, got.UnmarshalBinary([]byte{1, 2, 3}), ErrTruncatedData)
}
