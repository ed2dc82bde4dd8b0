package odt

import (
	"strconv"
	"strings"
)

// Label returns the marker for the n-th item (1-based within the list) at
// this level: the bullet character, or the number formatted with the level's
// prefix and suffix.
func (ll ResolvedListLevel) Label(n int) string {
	if ll.IsBullet {
		if ll.BulletChar != "" {
			return ll.BulletChar
		}
		return getBulletChar(ll.Level)
	}
	return ll.NumPrefix + formatListNumber(ll.StartValue+n-1, ll.NumFormat) + ll.NumSuffix
}

// ListLabel is the marker of one list item.
type ListLabel struct {
	Level int    `json:"level"` // 0-based nesting level
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Labels returns the marker and paragraph text of every item in l, nested
// lists included, in document order. A nested list without a style name
// inherits the style of its parent.
func (sr *StyleResolver) Labels(l *List) []ListLabel {
	var out []ListLabel
	sr.appendLabels(&out, l, deref(l.StyleName), 0)
	return out
}

func (sr *StyleResolver) appendLabels(out *[]ListLabel, l *List, styleName string, level int) {
	if l.StyleName != nil {
		styleName = *l.StyleName
	}
	ll := sr.ListLevel(styleName, level)

	n := 0
	for _, item := range l.Items {
		var parts []string
		for _, c := range item.Items {
			if p, ok := c.(*Paragraph); ok {
				if text := PlainText(p.Items); text != "" {
					parts = append(parts, text)
				}
			}
		}
		if len(parts) > 0 {
			n++
			*out = append(*out, ListLabel{
				Level: level,
				Label: ll.Label(n),
				Text:  strings.Join(parts, " "),
			})
		}

		// Process nested lists
		for _, c := range item.Items {
			if sub, ok := c.(*List); ok {
				sr.appendLabels(out, sub, styleName, level+1)
			}
		}
	}
}

// getBulletChar returns a bullet character based on nesting level.
func getBulletChar(level int) string {
	bullets := []string{"•", "○", "■", "□", "▪", "▫", "►", "◦"}
	if level >= 0 && level < len(bullets) {
		return bullets[level]
	}
	return "•"
}

// formatListNumber formats a number according to the format type.
func formatListNumber(num int, format string) string {
	switch format {
	case "a":
		return toLowerLetter(num)
	case "A":
		return toUpperLetter(num)
	case "i":
		return toLowerRoman(num)
	case "I":
		return toUpperRoman(num)
	default:
		return strconv.Itoa(num)
	}
}

// toLowerLetter converts a number to lowercase letter (1=a, 2=b, 27=aa).
func toLowerLetter(n int) string {
	if n < 1 {
		return "a"
	}
	result := ""
	for n > 0 {
		n--
		result = string(rune('a'+n%26)) + result
		n /= 26
	}
	return result
}

func toUpperLetter(n int) string {
	return strings.ToUpper(toLowerLetter(n))
}

func toLowerRoman(n int) string {
	return strings.ToLower(toUpperRoman(n))
}

// toUpperRoman converts a number to uppercase Roman numerals. Values outside
// 1-3999 are written as decimals.
func toUpperRoman(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}

	romanNumerals := []struct {
		value  int
		symbol string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}

	var sb strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			sb.WriteString(rn.symbol)
			n -= rn.value
		}
	}
	return sb.String()
}
