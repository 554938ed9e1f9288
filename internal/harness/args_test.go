package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandbox/internal/ir"
)

func TestArgs_Int(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"int", 3, 3, false},
		{"int64", int64(-4), -4, false},
		{"uint64", uint64(9), 9, false},
		{"integral float", 7.0, 7, false},
		{"fractional float", 7.5, 0, true},
		{"huge float", 1e19, 0, true},
		{"uint64 overflow", uint64(math.MaxUint64), 0, true},
		{"string", "3", 0, true},
		{"null", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Args{"value": tt.value}.Int("value")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgs_Int_Missing(t *testing.T) {
	_, err := Args{}.Int("position")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"position"`)
	assert.Contains(t, err.Error(), "is required")
}

func TestArgs_Str(t *testing.T) {
	s, err := Args{"value": "abc"}.Str("value")
	require.NoError(t, err)
	assert.Equal(t, ir.Some("abc"), s)

	s, err = Args{"value": nil}.Str("value")
	require.NoError(t, err)
	assert.True(t, s.IsNone())

	s, err = Args{"value": ir.Some("x")}.Str("value")
	require.NoError(t, err)
	assert.Equal(t, ir.Some("x"), s)

	_, err = Args{"value": 3}.Str("value")
	assert.Error(t, err)

	_, err = Args{}.Str("value")
	assert.Error(t, err)
}

func TestArgs_Floats(t *testing.T) {
	got, err := Args{"values": []any{1, 2.5, int64(-3)}}.Floats("values")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, got)

	got, err = Args{"values": []int{4, 5}}.Floats("values")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, got)

	got, err = Args{"values": nil}.Floats("values")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Args{}.Floats("values")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = Args{"values": []any{}}.Floats("values")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = Args{"values": []any{"x"}}.Floats("values")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 0")

	_, err = Args{"values": 3}.Floats("values")
	assert.Error(t, err)
}

func TestArgs_Ints(t *testing.T) {
	got, err := Args{"other": []any{1, 2.0}}.Ints("other")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = Args{"other": nil}.Ints("other")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Args{"other": []any{1.5}}.Ints("other")
	assert.Error(t, err)
}

func TestArgs_Strs(t *testing.T) {
	got, err := Args{"candidates": []any{"x", nil}}.Strs("candidates")
	require.NoError(t, err)
	assert.Equal(t, []ir.Str{ir.Some("x"), ir.None()}, got)

	got, err = Args{"candidates": []string{"a"}}.Strs("candidates")
	require.NoError(t, err)
	assert.Equal(t, []ir.Str{ir.Some("a")}, got)

	got, err = Args{}.Strs("candidates")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Args{"candidates": []any{1}}.Strs("candidates")
	assert.Error(t, err)
}

func TestArgs_Objects(t *testing.T) {
	got, err := Args{"objects": []any{"x", nil, 7}}.Objects("objects")
	require.NoError(t, err)
	assert.Equal(t, []any{"x", nil, 7}, got)

	got, err = Args{"objects": []string{"a", "b"}}.Objects("objects")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = Args{"objects": nil}.Objects("objects")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Args{"objects": "x"}.Objects("objects")
	assert.Error(t, err)
}
