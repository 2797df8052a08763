package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	got, err := IntToUint32(123)
	assert.NoError(t, err)
	assert.Equal(t, uint32(123), got)

	_, err = IntToUint32(-1)
	assert.ErrorIs(t, err, ErrOverflow)

	if math.MaxInt > math.MaxUint32 {
		_, err = IntToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	}
}

func TestIntToUint64(t *testing.T) {
	got, err := IntToUint64(math.MaxInt)
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt), got)

	_, err = IntToUint64(-5)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFloat64ToInt32(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int32
		ok   bool
	}{
		{"zero", 0, 0, true},
		{"negative zero", math.Copysign(0, -1), 0, true},
		{"positive", 3, 3, true},
		{"negative", -7, -7, true},
		{"max", math.MaxInt32, math.MaxInt32, true},
		{"min", math.MinInt32, math.MinInt32, true},
		{"fraction", 2.5, 0, false},
		{"tiny fraction", 1 + 1e-12, 0, false},
		{"above range", math.MaxInt32 + 1, 0, false},
		{"below range", math.MinInt32 - 1, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Float64ToInt32(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
