package i18n_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dotlocale/pkg/i18n"
)

type version struct{ major, minor int }

func (v version) String() string { return "v1.2" }

func TestFromValue(t *testing.T) {
	t.Parallel()

	t.Run("scalars", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			in   any
			want any
		}{
			{"text", "text"},
			{true, true},
			{42, int64(42)},
			{int32(7), int64(7)},
			{uint16(9), int64(9)},
			{float32(0.5), 0.5},
			{1.25, 1.25},
			{json.Number("12"), int64(12)},
			{json.Number("1.5"), 1.5},
			{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
			{version{1, 2}, "v1.2"},
			{uint64(math.MaxInt64), int64(math.MaxInt64)},
			{uint64(math.MaxUint64), "18446744073709551615"},
			{uint(math.MaxUint), "18446744073709551615"},
		}
		for _, tt := range tests {
			n, err := i18n.FromValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, i18n.KindScalar, n.Kind())
			assert.Equal(t, tt.want, n.Value())
		}
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		n, err := i18n.FromValue(nil)
		require.NoError(t, err)
		assert.Equal(t, i18n.KindNull, n.Kind())
		assert.Same(t, i18n.NullNode(), n)
	})

	t.Run("containers", func(t *testing.T) {
		t.Parallel()
		n, err := i18n.FromValue(map[any]any{
			"list":  []any{"a", nil, 3},
			"words": []string{"x", "y"},
			"flat":  map[string]string{"k": "v"},
			1:       "numeric key",
		})
		require.NoError(t, err)
		assert.Equal(t, i18n.KindMapping, n.Kind())
		assert.Equal(t, []string{"1", "flat", "list", "words"}, n.Keys())

		list, ok := n.Field("list")
		require.True(t, ok)
		assert.Equal(t, 3, list.Len())
		second, ok := list.Item(1)
		require.True(t, ok)
		assert.Equal(t, i18n.KindNull, second.Kind())
		_, ok = list.Item(3)
		assert.False(t, ok)
		_, ok = list.Item(-1)
		assert.False(t, ok)
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.FromValue(map[string]any{"bad": struct{}{}})
		require.ErrorIs(t, err, i18n.ErrInvalidValue)
	})
}

// TestIsPlural covers plural detection: a non-empty mapping whose keys are
// all category labels and whose values are scalars or nulls. A mapping with
// a nested mapping under a category label stays a namespace.
func TestIsPlural(t *testing.T) {
	t.Parallel()

	plural := i18n.NewMapping(map[string]*i18n.Node{
		"one":   i18n.NewScalar("one item"),
		"other": i18n.NewScalar("items"),
	})
	assert.True(t, plural.IsPlural())

	withNull := i18n.NewMapping(map[string]*i18n.Node{"other": nil})
	assert.True(t, withNull.IsPlural())

	mixed := i18n.NewMapping(map[string]*i18n.Node{
		"one":   i18n.NewScalar("one item"),
		"title": i18n.NewScalar("Title"),
	})
	assert.False(t, mixed.IsPlural())

	nested := i18n.NewMapping(map[string]*i18n.Node{
		"one": i18n.NewMapping(nil),
	})
	assert.False(t, nested.IsPlural())

	nestedUnderOne := i18n.NewMapping(map[string]*i18n.Node{
		"one":   i18n.NewMapping(map[string]*i18n.Node{"x": i18n.NewScalar("y")}),
		"other": i18n.NewScalar("z"),
	})
	assert.False(t, nestedUnderOne.IsPlural())

	assert.False(t, i18n.NewMapping(nil).IsPlural())
	assert.False(t, i18n.NewSequence(i18n.NewScalar("one")).IsPlural())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", i18n.KindNull.String())
	assert.Equal(t, "scalar", i18n.KindScalar.String())
	assert.Equal(t, "mapping", i18n.KindMapping.String())
	assert.Equal(t, "sequence", i18n.KindSequence.String())
}
