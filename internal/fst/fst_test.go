package fst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func shortest(t *testing.T, f *Fst) Path {
	t.Helper()
	paths, err := ShortestPath(f, 1)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	return paths[0]
}

func TestCrossAndCompose(t *testing.T) {
	digit := StringMap([][2]string{
		{"0", "零"}, {"1", "一"}, {"2", "二"}, {"3", "三"},
	})
	text := Accept("123")
	composed, err := Compose(text, Closure(digit, 1, -1))
	require.NoError(t, err)

	p := shortest(t, composed)
	require.Equal(t, "123", p.Input)
	require.Equal(t, "一二三", p.Output)
}

func TestUnionPrefersLowerWeight(t *testing.T) {
	cheap := AddWeight(Cross("119", "cardinal"), 0.9)
	expensive := AddWeight(Cross("119", "telephone"), 5)
	choice := Union(cheap, expensive)

	text := Accept("119")
	composed, err := Compose(text, choice)
	require.NoError(t, err)

	p := shortest(t, composed)
	require.Equal(t, "cardinal", p.Output)
}

func TestClosureBounds(t *testing.T) {
	a := Accept("x")
	c := Optimize(Closure(a, 2, 3))

	for _, s := range []string{"x", "xx", "xxx", "xxxx"} {
		_, err := ShortestPath(mustCompose(t, Accept(s), c), 1)
		ok := err == nil
		want := s == "xx" || s == "xxx"
		require.Equal(t, want, ok, "closure(2,3) on %q", s)
	}
}

func mustCompose(t *testing.T, a, b *Fst) *Fst {
	t.Helper()
	out, err := Compose(a, b)
	require.NoError(t, err)
	return out
}

func TestDifference(t *testing.T) {
	all3Digit := StringMap([][2]string{{"100", "x"}, {"200", "x"}, {"999", "x"}})
	invalid := StringMap([][2]string{{"999", "x"}})
	diff, err := Difference(all3Digit, invalid)
	require.NoError(t, err)

	_, err = ShortestPath(mustCompose(t, Accept("999"), diff), 1)
	require.ErrorIs(t, err, ErrEmptyLanguage)

	p := shortest(t, mustCompose(t, Accept("100"), diff))
	require.Equal(t, "x", p.Output)
}

func TestCDRewriteUnconstrained(t *testing.T) {
	rule := Cross("　", " ") // full-width space to half-width space
	rw := CDRewrite(rule, nil, nil)

	p := shortest(t, mustCompose(t, Accept("a　b"), rw))
	require.Equal(t, "a b", p.Output)
}

func TestCDRewriteDigitContext(t *testing.T) {
	digits := StringMap([][2]string{
		{"0", "0"}, {"1", "1"}, {"2", "2"}, {"3", "3"}, {"4", "4"},
		{"5", "5"}, {"6", "6"}, {"7", "7"}, {"8", "8"}, {"9", "9"},
	})
	rule := Cross(" ", "-")
	rw := CDRewrite(rule, digits, digits)

	p := shortest(t, mustCompose(t, Accept("138 1234"), rw))
	require.Equal(t, "138-1234", p.Output)

	p2 := shortest(t, mustCompose(t, Accept("hello world"), rw))
	require.Equal(t, "hello world", p2.Output)

	p3 := shortest(t, mustCompose(t, Accept("5 a"), rw))
	require.Equal(t, "5 a", p3.Output)
}

func TestOptimizeIsIdempotent(t *testing.T) {
	f := Union(Accept("a"), Accept("b"), Concat(Accept("c"), Accept("d")))
	once := Optimize(f)
	twice := Optimize(once)
	require.Equal(t, once.NumStates(), twice.NumStates())
}
