package odt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatListNumber(t *testing.T) {
	tests := []struct {
		num    int
		format string
		want   string
	}{
		{1, "1", "1"},
		{12, "", "12"},
		{1, "a", "a"},
		{26, "a", "z"},
		{27, "a", "aa"},
		{28, "A", "AB"},
		{4, "i", "iv"},
		{1994, "I", "MCMXCIV"},
		{4000, "I", "4000"},
		{3, "x", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatListNumber(tt.num, tt.format))
		})
	}
}

func TestListLevelLabel(t *testing.T) {
	sr := NewStyleResolver(nil, decodeTestStyles(t))

	first := sr.ListLevel("Numbering_20_123", 0)
	assert.False(t, first.IsBullet)
	assert.Equal(t, 3, first.StartValue)
	assert.Equal(t, "(c)", first.Label(1))
	assert.Equal(t, "(d)", first.Label(2))

	second := sr.ListLevel("Numbering_20_123", 1)
	assert.Equal(t, "I.", second.Label(1))
	assert.Equal(t, "IV.", second.Label(4))

	third := sr.ListLevel("Numbering_20_123", 2)
	assert.True(t, third.IsBullet)
	assert.Equal(t, "-", third.Label(7))

	// levels without a definition fall back to the default bullets
	assert.Equal(t, "▫", sr.ListLevel("Numbering_20_123", 5).Label(1))
	assert.Equal(t, "•", sr.ListLevel("missing", 0).Label(1))
	assert.Equal(t, "○", sr.ListLevel("", 1).Label(1))
}

func TestLabels(t *testing.T) {
	items := decodeBody(t, `<text:list text:style-name="Numbering_20_123">
  <text:list-item><text:p>alpha</text:p></text:list-item>
  <text:list-item>
    <text:p>beta <text:span>b</text:span></text:p>
    <text:list>
      <text:list-item><text:p>one</text:p></text:list-item>
      <text:list-item><text:p>two</text:p></text:list-item>
    </text:list>
  </text:list-item>
  <text:list-item><text:list><text:list-item><text:p>only nested</text:p></text:list-item></text:list></text:list-item>
</text:list>`)

	sr := NewStyleResolver(nil, decodeTestStyles(t))
	labels := sr.Labels(items[0].(*List))

	require.Len(t, labels, 5)
	assert.Equal(t, ListLabel{Level: 0, Label: "(c)", Text: "alpha"}, labels[0])
	assert.Equal(t, ListLabel{Level: 0, Label: "(d)", Text: "beta b"}, labels[1])
	assert.Equal(t, ListLabel{Level: 1, Label: "I.", Text: "one"}, labels[2])
	assert.Equal(t, ListLabel{Level: 1, Label: "II.", Text: "two"}, labels[3])
	assert.Equal(t, ListLabel{Level: 1, Label: "I.", Text: "only nested"}, labels[4])
}
