package tnorm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
	"github.com/cjktextnorm/textnorm/internal/tnorm/ja"
	"github.com/cjktextnorm/textnorm/internal/tnorm/zh"
)

func newZh(t *testing.T) *tnorm.Normalizer {
	t.Helper()
	n, err := tnorm.NewNormalizer(tnorm.LangZh, tnorm.InputCased, true, zh.BuildRegistry)
	require.NoError(t, err)
	return n
}

func newJa(t *testing.T) *tnorm.Normalizer {
	t.Helper()
	n, err := tnorm.NewNormalizer(tnorm.LangJa, tnorm.InputCased, true, ja.BuildRegistry)
	require.NoError(t, err)
	return n
}

// TestZhScenarios exercises the concrete scenario table (spec.md §8,
// scenarios 1-12) end to end through the compiled classify/verbalize
// pair.
func TestZhScenarios(t *testing.T) {
	n := newZh(t)
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"house_number", "119号", "一百一十九号"},
		{"telephone_keyword", "电话119", "电话幺幺九"},
		{"datetime", "2024年1月15日上午9点30分", "二零二四年一月十五日上午九点三十分"},
		{"mobile_number", "13812345678", "幺三八、幺二三四、五六七八"},
		{"landline", "010-12345678", "零幺零、幺二三四五六七八"},
		{"money", "199.99元", "一百九十九点九九元"},
		{"fraction", "1/2", "二分之一"},
		{"percent", "50%", "百分之五十"},
		{"ordinal", "第10名", "第十名"},
		{"negative", "-100", "负一百"},
		{"liang_before_qian", "2000", "两千"},
		{"bare_year_like", "1020", "一千零二十"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := n.Normalize(c.input, false, true)
			require.Equal(t, c.want, got.Text, "input %q", c.input)
		})
	}
}

// TestJaScenarios exercises scenarios 13-17.
func TestJaScenarios(t *testing.T) {
	n := newJa(t)
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"address_number", "1-2-809", "一の二のハチマルキュー"},
		{"postal_code", "〒123-4567", "郵便番号イチニーサンのヨンゴロクナナ"},
		{"time_with_minutes", "3時07分", "三時七分"},
		{"time_on_the_hour", "3時00分", "三時"},
		{"mobile_number", "090-1234-5678", "ゼロキューゼロのイチニーサンヨンのゴロクナナハチ"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := n.Normalize(c.input, false, true)
			require.Equal(t, c.want, got.Text, "input %q", c.input)
		})
	}
}

// TestVerboseReturnsTokens checks that the intermediate tagged form is
// only populated when verbose is requested (spec.md §6).
func TestVerboseReturnsTokens(t *testing.T) {
	n := newZh(t)

	quiet := n.Normalize("119号", false, true)
	require.Empty(t, quiet.Tokens)

	loud := n.Normalize("119号", true, true)
	require.NotEmpty(t, loud.Tokens)
	require.Contains(t, loud.Tokens, "tokens {")
}

// TestIdempotenceOnPureWordInput covers spec.md §8's idempotence law:
// text with no normalizable class passes through unchanged.
func TestIdempotenceOnPureWordInput(t *testing.T) {
	n := newZh(t)
	got := n.Normalize("你好世界", false, true)
	require.Equal(t, "你好世界", got.Text)
}

// TestSpacePreservedBetweenWords covers spec.md §8 invariant 5.
func TestSpacePreservedBetweenWords(t *testing.T) {
	n := newZh(t)
	got := n.Normalize("你好 世界", false, true)
	require.Equal(t, "你好 世界", got.Text)
}

// TestNoInternalMarkersLeak covers spec.md §8 invariant 3: SpaceMarker
// and the tagging envelope never escape into the spoken output.
func TestNoInternalMarkersLeak(t *testing.T) {
	n := newZh(t)
	got := n.Normalize("电话119 你好", false, true)
	require.NotContains(t, got.Text, tnorm.SpaceMarker)
	require.NotContains(t, got.Text, "tokens {")
}
