package pathfilter

import (
	"context"
	"regexp"
)

// Tester matches a single string value. The predicate constructors combine
// given testers disjunctively: a path matches when any tester matches the
// substring extracted from it.
type Tester interface {
	Test(value string) (bool, error)
}

type exactTester struct {
	want string
}

func (t exactTester) Test(value string) (bool, error) {
	return value == t.want, nil
}

// Exact returns a [Tester] matching exactly the given string.
func Exact(want string) Tester {
	return exactTester{want: want}
}

type patternTester struct {
	re *regexp.Regexp
}

func (t patternTester) Test(value string) (bool, error) {
	return t.re.MatchString(value), nil
}

// Pattern returns a [Tester] matching values against the given compiled
// regular expression.
func Pattern(re *regexp.Regexp) Tester {
	return patternTester{re: re}
}

// TesterFunc adapts an arbitrary function into a [Tester]. A returned error
// aborts the enclosing predicate evaluation.
type TesterFunc func(value string) (bool, error)

func (fn TesterFunc) Test(value string) (bool, error) {
	return fn(value)
}

// testersAsPredicates adapts testers into predicates over the bare string
// value, so tester lists compose through [AnyOf].
func testersAsPredicates(testers []Tester) []Predicate {
	preds := make([]Predicate, 0, len(testers))

	for _, tester := range testers {
		preds = append(preds, func(_ context.Context, value string) (bool, error) {
			return tester.Test(value)
		})
	}

	return preds
}
