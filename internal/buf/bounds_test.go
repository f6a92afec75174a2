package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(3, 4)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = AddOverflowSafe(int(^uint(0)>>1), 1)
	assert.False(t, ok, "adding 1 to MaxInt must be reported as overflow")

	_, ok = AddOverflowSafe(-int(^uint(0)>>1)-1, -1)
	assert.False(t, ok, "subtracting past MinInt must be reported as overflow")
}

func TestSliceAndHas(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5}

	sub, ok := Slice(b, 2, 3)
	require.True(t, ok)
	assert.Equal(t, []byte{2, 3, 4}, sub)
	assert.True(t, Has(b, 2, 3))

	_, ok = Slice(b, 4, 3)
	assert.False(t, ok, "slice extending past len(b) must fail")
	assert.False(t, Has(b, 4, 3))

	_, ok = Slice(b, -1, 2)
	assert.False(t, ok)

	sub, ok = Slice(b, 6, 0)
	require.True(t, ok, "zero-length slice at exactly len(b) is in bounds")
	assert.Empty(t, sub)
}

func TestCheckAligned8(t *testing.T) {
	assert.NoError(t, CheckAligned8("size", 0))
	assert.NoError(t, CheckAligned8("size", 8))
	assert.NoError(t, CheckAligned8("size", 24))
	assert.Error(t, CheckAligned8("size", 1))
	assert.Error(t, CheckAligned8("size", 9))
}
