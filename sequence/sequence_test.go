package sequence_test

import (
	"errors"
	"testing"

	"github.com/desertwitch/pathfind/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProducer = errors.New("producer failure")

func TestOf_Collect(t *testing.T) {
	t.Parallel()

	items, err := sequence.Collect(sequence.Of(1, 2, 3))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestEmpty_Collect(t *testing.T) {
	t.Parallel()

	items, err := sequence.Collect(sequence.Empty[string]())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestFail_Collect(t *testing.T) {
	t.Parallel()

	items, err := sequence.Collect(sequence.Fail[string](errProducer))

	require.ErrorIs(t, err, errProducer)
	assert.Empty(t, items)
}

func TestConcat_Order(t *testing.T) {
	t.Parallel()

	items, err := sequence.Collect(sequence.Concat(
		sequence.Of("a", "b"),
		sequence.Empty[string](),
		sequence.Of("c"),
	))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestConcat_FailureStopsLaterSequences(t *testing.T) {
	t.Parallel()

	produced := 0
	counting := sequence.Seq[string](func(yield func(string, error) bool) {
		produced++
		yield("never", nil)
	})

	items, err := sequence.Collect(sequence.Concat(
		sequence.Of("a"),
		sequence.Fail[string](errProducer),
		counting,
	))

	require.ErrorIs(t, err, errProducer)
	assert.Equal(t, []string{"a"}, items)
	assert.Zero(t, produced)
}

func TestFirst(t *testing.T) {
	t.Parallel()

	first, found, err := sequence.First(sequence.Of("a", "b"))

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", first)
}

func TestFirst_Empty(t *testing.T) {
	t.Parallel()

	first, found, err := sequence.First(sequence.Empty[string]())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, first)
}

func TestFirst_StopsProduction(t *testing.T) {
	t.Parallel()

	produced := 0
	seq := sequence.Seq[int](func(yield func(int, error) bool) {
		for i := range 10 {
			produced++
			if !yield(i, nil) {
				return
			}
		}
	})

	first, found, err := sequence.First(seq)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, first)
	assert.Equal(t, 1, produced)
}
