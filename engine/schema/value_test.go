package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	t.Run("Should accept integers of any width", func(t *testing.T) {
		for _, raw := range []any{int(5), int64(5), uint64(5), uint8(5), int32(5)} {
			v, err := ValueOf(raw)
			require.NoError(t, err, "ValueOf(%T)", raw)
			assert.Equal(t, "5", v.String())
		}
	})

	t.Run("Should keep the full uint64 range", func(t *testing.T) {
		v, err := ValueOf(uint64(18446744073709551615))

		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", v.String())
	})

	t.Run("Should handle negative values including MinInt64", func(t *testing.T) {
		v, err := ValueOf(int64(-9223372036854775808))

		require.NoError(t, err)
		assert.True(t, v.Negative())
		assert.Equal(t, "-9223372036854775808", v.String())
	})

	t.Run("Should parse string literals with base detection", func(t *testing.T) {
		v, err := ValueOf("0xff")
		require.NoError(t, err)
		assert.Equal(t, "255", v.String())

		v, err = ValueOf("-42")
		require.NoError(t, err)
		assert.Equal(t, "-42", v.String())
	})

	t.Run("Should reject non-integer scalars", func(t *testing.T) {
		_, err := ValueOf(1.5)
		require.Error(t, err)

		_, err = ValueOf("twelve")
		require.Error(t, err)

		_, err = ValueOf(true)
		require.Error(t, err)
	})

	t.Run("Should treat negative zero as zero", func(t *testing.T) {
		v, err := ValueOf("-0")

		require.NoError(t, err)
		assert.False(t, v.Negative())
		assert.Equal(t, "0", v.String())
	})
}

func TestValue_FitsIn(t *testing.T) {
	uint8Type := TypeInfo{Name: "uint8", Bits: 8}
	int8Type := TypeInfo{Name: "int8", Signed: true, Bits: 8}
	uint64Type := TypeInfo{Name: "uint64", Bits: 64}
	int64Type := TypeInfo{Name: "int64", Signed: true, Bits: 64}

	t.Run("Should enforce unsigned bounds", func(t *testing.T) {
		v, _ := ValueOf(255)
		assert.True(t, v.FitsIn(uint8Type))
		v, _ = ValueOf(256)
		assert.False(t, v.FitsIn(uint8Type))
		v, _ = ValueOf(-1)
		assert.False(t, v.FitsIn(uint8Type))
	})

	t.Run("Should enforce signed bounds", func(t *testing.T) {
		v, _ := ValueOf(127)
		assert.True(t, v.FitsIn(int8Type))
		v, _ = ValueOf(128)
		assert.False(t, v.FitsIn(int8Type))
		v, _ = ValueOf(-128)
		assert.True(t, v.FitsIn(int8Type))
		v, _ = ValueOf(-129)
		assert.False(t, v.FitsIn(int8Type))
	})

	t.Run("Should handle 64-bit extremes", func(t *testing.T) {
		v, _ := ValueOf(uint64(18446744073709551615))
		assert.True(t, v.FitsIn(uint64Type))
		assert.False(t, v.FitsIn(int64Type))

		v, _ = ValueOf(int64(-9223372036854775808))
		assert.True(t, v.FitsIn(int64Type))
		assert.False(t, v.FitsIn(uint64Type))
	})
}

func TestValue_Equal(t *testing.T) {
	t.Run("Should compare by integer identity", func(t *testing.T) {
		a, _ := ValueOf(7)
		b, _ := ValueOf("7")
		c, _ := ValueOf(-7)

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}
