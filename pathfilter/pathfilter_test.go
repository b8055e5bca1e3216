package pathfilter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/desertwitch/pathfind/pathfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPredicate = errors.New("predicate failure")

func constPredicate(result bool, evaluated *int) pathfilter.Predicate {
	return func(context.Context, string) (bool, error) {
		if evaluated != nil {
			*evaluated++
		}

		return result, nil
	}
}

func failingPredicate(evaluated *int) pathfilter.Predicate {
	return func(context.Context, string) (bool, error) {
		if evaluated != nil {
			*evaluated++
		}

		return false, errPredicate
	}
}

func TestAllOf_Empty(t *testing.T) {
	t.Parallel()

	ok, err := pathfilter.AllOf()(context.Background(), "/any/path")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnyOf_Empty(t *testing.T) {
	t.Parallel()

	ok, err := pathfilter.AnyOf()(context.Background(), "/any/path")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllOf_ShortCircuitsOnFalse(t *testing.T) {
	t.Parallel()

	evaluated := 0
	pred := pathfilter.AllOf(
		constPredicate(true, &evaluated),
		constPredicate(false, &evaluated),
		constPredicate(true, &evaluated),
	)

	ok, err := pred(context.Background(), "/any/path")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, evaluated)
}

func TestAllOf_AllTrue(t *testing.T) {
	t.Parallel()

	pred := pathfilter.AllOf(
		constPredicate(true, nil),
		constPredicate(true, nil),
	)

	ok, err := pred(context.Background(), "/any/path")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAnyOf_ShortCircuitsOnTrue(t *testing.T) {
	t.Parallel()

	evaluated := 0
	pred := pathfilter.AnyOf(
		constPredicate(false, &evaluated),
		constPredicate(true, &evaluated),
		constPredicate(false, &evaluated),
	)

	ok, err := pred(context.Background(), "/any/path")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, evaluated)
}

func TestAllOf_FailurePropagatesVerbatim(t *testing.T) {
	t.Parallel()

	evaluated := 0
	pred := pathfilter.AllOf(
		constPredicate(true, &evaluated),
		failingPredicate(&evaluated),
		constPredicate(true, &evaluated),
	)

	ok, err := pred(context.Background(), "/any/path")

	require.ErrorIs(t, err, errPredicate)
	assert.False(t, ok)
	assert.Equal(t, 2, evaluated)
}

func TestAnyOf_FailurePropagatesVerbatim(t *testing.T) {
	t.Parallel()

	evaluated := 0
	pred := pathfilter.AnyOf(
		constPredicate(false, &evaluated),
		failingPredicate(&evaluated),
		constPredicate(true, &evaluated),
	)

	ok, err := pred(context.Background(), "/any/path")

	require.ErrorIs(t, err, errPredicate)
	assert.False(t, ok)
	assert.Equal(t, 2, evaluated)
}
