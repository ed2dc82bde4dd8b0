package odt

import (
	"strconv"
	"strings"
	"sync"
)

// ResolvedStyle contains the fully resolved properties for a style.
type ResolvedStyle struct {
	// Identity
	Name        string   `json:"name"`
	Family      string   `json:"family,omitempty"` // paragraph, text, graphic, etc.
	DisplayName string   `json:"displayName,omitempty"`
	Chain       []string `json:"chain,omitempty"` // base to derived, ending with Name
	ListStyle   string   `json:"listStyle,omitempty"`

	// Heading info
	IsHeading    bool `json:"isHeading,omitempty"`
	HeadingLevel int  `json:"headingLevel,omitempty"` // 1-9, 0 if not a heading

	// Merged property bags
	Text      TextProperties      `json:"text"`
	Paragraph ParagraphProperties `json:"paragraph"`
	Graphic   GraphicProperties   `json:"graphic"`

	// Paragraph properties
	Alignment   string  `json:"alignment"`
	SpaceBefore float64 `json:"spaceBefore"` // points
	SpaceAfter  float64 `json:"spaceAfter"`  // points
	IndentLeft  float64 `json:"indentLeft"`  // points
	IndentRight float64 `json:"indentRight"` // points
	IndentFirst float64 `json:"indentFirst"` // points, negative for hanging
	PageBreak   bool    `json:"pageBreak,omitempty"`

	// Run/character properties
	FontName  string  `json:"fontName"`
	FontSize  float64 `json:"fontSize"` // points
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Strike    bool    `json:"strike,omitempty"`
	Color     string  `json:"color,omitempty"` // hex color like "#FF0000"
}

// StyleResolver resolves styles with inheritance support. It is safe for
// concurrent use.
type StyleResolver struct {
	styles      map[string]*Style
	listStyles  map[string]*ListStyle
	defaultFont string
	defaultSize float64

	mu       sync.Mutex
	resolved map[string]*ResolvedStyle
}

// NewStyleResolver creates a resolver over a decoded content part and an
// optional styles part. Automatic styles of the content part take precedence
// over office styles, which take precedence over automatic styles of the
// styles part.
func NewStyleResolver(content *DocumentContent, docStyles *DocumentStyles) *StyleResolver {
	sr := &StyleResolver{
		styles:      make(map[string]*Style),
		listStyles:  make(map[string]*ListStyle),
		resolved:    make(map[string]*ResolvedStyle),
		defaultFont: "Liberation Sans", // LibreOffice default
		defaultSize: 12,
	}

	if docStyles != nil {
		sr.add(docStyles.AutomaticStyles.Styles, docStyles.AutomaticStyles.ListStyles)
		sr.add(docStyles.Styles.Styles, docStyles.Styles.ListStyles)
	}
	if content != nil {
		sr.add(content.AutomaticStyles.Styles, content.AutomaticStyles.ListStyles)
	}
	return sr
}

func (sr *StyleResolver) add(styles []Style, lists []ListStyle) {
	for i := range styles {
		if name := styles[i].Name; name != nil {
			sr.styles[*name] = &styles[i]
		}
	}
	for i := range lists {
		if name := lists[i].Name; name != nil {
			sr.listStyles[*name] = &lists[i]
		}
	}
}

// Style returns the style definition with the given name.
func (sr *StyleResolver) Style(name string) (*Style, bool) {
	s, ok := sr.styles[name]
	return s, ok
}

// ListStyle returns the list style with the given name.
func (sr *StyleResolver) ListStyle(name string) (*ListStyle, bool) {
	ls, ok := sr.listStyles[name]
	return ls, ok
}

// Resolve returns the fully resolved style for the given style name.
// If the style doesn't exist, returns a default style. The result is shared
// between callers and must not be modified.
func (sr *StyleResolver) Resolve(styleName string) *ResolvedStyle {
	if styleName == "" {
		return sr.defaultStyle()
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()

	if resolved, ok := sr.resolved[styleName]; ok {
		return resolved
	}

	resolved := sr.defaultStyle()
	resolved.Name = styleName

	def, ok := sr.styles[styleName]
	if !ok {
		// Style not found - check for built-in heading styles
		resolved.IsHeading, resolved.HeadingLevel = detectBuiltInHeading(styleName)
		sr.resolved[styleName] = resolved
		return resolved
	}

	resolved.Family = deref(def.Family)
	resolved.DisplayName = deref(def.DisplayName)
	resolved.Chain = sr.buildInheritanceChain(styleName)

	// Apply properties from base to derived
	outline := ""
	size := sr.defaultSize
	for _, name := range resolved.Chain {
		s := sr.styles[name]
		if s.TextProperties != nil {
			size = fontSize(deref(s.TextProperties.FontSize), size)
		}
		mergeText(&resolved.Text, s.TextProperties)
		mergeParagraph(&resolved.Paragraph, s.ParagraphProperties)
		mergeGraphic(&resolved.Graphic, s.GraphicProperties)
		if s.ListStyleName != nil {
			resolved.ListStyle = *s.ListStyleName
		}
		if s.DefaultOutlineLevel != nil {
			outline = *s.DefaultOutlineLevel
		}
	}
	sr.applyProperties(resolved)
	resolved.FontSize = size

	if level, err := strconv.Atoi(outline); err == nil && level >= 1 && level <= 9 {
		resolved.IsHeading = true
		resolved.HeadingLevel = level
	}

	// Fallback: detect heading from the style or display name
	if !resolved.IsHeading {
		resolved.IsHeading, resolved.HeadingLevel = detectBuiltInHeading(styleName)
	}
	if !resolved.IsHeading && resolved.DisplayName != "" {
		resolved.IsHeading, resolved.HeadingLevel = detectBuiltInHeading(resolved.DisplayName)
	}

	sr.resolved[styleName] = resolved
	return resolved
}

func (sr *StyleResolver) defaultStyle() *ResolvedStyle {
	return &ResolvedStyle{
		FontName:  sr.defaultFont,
		FontSize:  sr.defaultSize,
		Alignment: "left",
	}
}

// buildInheritanceChain returns style names from base to derived. A parent
// cycle ends the chain at the first repeated name.
func (sr *StyleResolver) buildInheritanceChain(styleName string) []string {
	var chain []string
	visited := make(map[string]bool)

	current := styleName
	for current != "" && !visited[current] {
		def, ok := sr.styles[current]
		if !ok {
			break
		}
		visited[current] = true
		chain = append([]string{current}, chain...)
		current = deref(def.ParentStyleName)
	}

	return chain
}

// applyProperties derives the typed fields from the merged property bags.
func (sr *StyleResolver) applyProperties(resolved *ResolvedStyle) {
	ppr := &resolved.Paragraph
	if v := deref(ppr.TextAlign); v != "" {
		resolved.Alignment = normalizeAlign(v)
	}
	resolved.SpaceBefore = lengthOrZero(ppr.MarginTop)
	resolved.SpaceAfter = lengthOrZero(ppr.MarginBottom)
	resolved.IndentLeft = lengthOrZero(ppr.MarginLeft)
	resolved.IndentRight = lengthOrZero(ppr.MarginRight)
	resolved.IndentFirst = lengthOrZero(ppr.TextIndent)
	resolved.PageBreak = deref(ppr.BreakBefore) == "page" || deref(ppr.BreakAfter) == "page"

	tpr := &resolved.Text
	if v := deref(tpr.FontName); v != "" {
		resolved.FontName = v
	} else if v := deref(tpr.FontFamily); v != "" {
		resolved.FontName = cleanFontFamily(v)
	}
	resolved.Bold = deref(tpr.FontWeight) == "bold"
	resolved.Italic = deref(tpr.FontStyle) == "italic"
	if v := deref(tpr.UnderlineStyle); v != "" && v != "none" {
		resolved.Underline = true
	}
	if v := deref(tpr.LineThroughStyle); v != "" && v != "none" {
		resolved.Strike = true
	}
	resolved.Color = deref(tpr.Color)
}

func mergeText(dst *TextProperties, src *TextProperties) {
	if src == nil {
		return
	}
	set(&dst.FontName, src.FontName)
	set(&dst.FontFamily, src.FontFamily)
	set(&dst.FontWeight, src.FontWeight)
	set(&dst.FontStyle, src.FontStyle)
	set(&dst.UnderlineStyle, src.UnderlineStyle)
	set(&dst.LineThroughStyle, src.LineThroughStyle)
	set(&dst.FontSize, src.FontSize)
	set(&dst.Color, src.Color)
	set(&dst.BackgroundColor, src.BackgroundColor)
}

func mergeParagraph(dst *ParagraphProperties, src *ParagraphProperties) {
	if src == nil {
		return
	}
	set(&dst.BreakBefore, src.BreakBefore)
	set(&dst.BreakAfter, src.BreakAfter)
	set(&dst.MarginLeft, src.MarginLeft)
	set(&dst.MarginRight, src.MarginRight)
	set(&dst.MarginTop, src.MarginTop)
	set(&dst.MarginBottom, src.MarginBottom)
	set(&dst.TextIndent, src.TextIndent)
	set(&dst.TextAlign, src.TextAlign)
}

func mergeGraphic(dst *GraphicProperties, src *GraphicProperties) {
	if src == nil {
		return
	}
	set(&dst.StrokeColor, src.StrokeColor)
	set(&dst.StrokeWidth, src.StrokeWidth)
	set(&dst.StrokeLinejoin, src.StrokeLinejoin)
	set(&dst.Stroke, src.Stroke)
	set(&dst.Fill, src.Fill)
	set(&dst.FillColor, src.FillColor)
}

func set(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func normalizeAlign(v string) string {
	switch v {
	case "start":
		return "left"
	case "end":
		return "right"
	default:
		return v
	}
}

// detectBuiltInHeading checks for common heading style names. ODF encodes
// spaces in style names as "_20_", so "Heading_20_2" is "Heading 2".
func detectBuiltInHeading(styleName string) (bool, int) {
	name := strings.ToLower(strings.ReplaceAll(styleName, "_20_", " "))
	name = strings.NewReplacer(" ", "", "_", "").Replace(name)

	switch name {
	case "title":
		return true, 1
	case "subtitle":
		return true, 2
	}

	if !strings.HasPrefix(name, "heading") {
		return false, 0
	}
	rest := strings.TrimPrefix(name, "heading")
	if rest == "" {
		return true, 1 // Default to H1
	}
	if level, err := strconv.Atoi(rest); err == nil && level >= 1 && level <= 9 {
		return true, level
	}
	return false, 0
}

// ParseLength parses an ODF length value to points.
// Supports: pt, in, cm, mm, pc, px. The second result is false for empty,
// malformed and percentage values.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Find where digits end and unit begins
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
			break
		}
	}
	if i == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}

	// Convert to points
	switch strings.ToLower(strings.TrimSpace(s[i:])) {
	case "pt", "":
		return value, true
	case "in":
		return value * 72, true
	case "cm":
		return value * 72 / 2.54, true
	case "mm":
		return value * 72 / 25.4, true
	case "pc":
		return value * 12, true
	case "px":
		return value * 0.75, true // 96 DPI
	default:
		return 0, false
	}
}

// fontSize applies a font size to the inherited one. Percentages scale it.
func fontSize(v string, inherited float64) float64 {
	if pct, ok := strings.CutSuffix(strings.TrimSpace(v), "%"); ok {
		if f, err := strconv.ParseFloat(pct, 64); err == nil && f > 0 {
			return inherited * f / 100
		}
		return inherited
	}
	if size, ok := ParseLength(v); ok && size > 0 {
		return size
	}
	return inherited
}

func lengthOrZero(s *string) float64 {
	v, _ := ParseLength(deref(s))
	return v
}

// cleanFontFamily removes quotes from font family names.
func cleanFontFamily(family string) string {
	family = strings.TrimSpace(family)
	return strings.Trim(family, "'\"")
}

// ResolvedListLevel contains resolved list level properties.
type ResolvedListLevel struct {
	Level      int    `json:"level"` // 0-based
	IsBullet   bool   `json:"isBullet"`
	BulletChar string `json:"bulletChar,omitempty"`
	NumFormat  string `json:"numFormat,omitempty"` // "1", "a", "A", "i", "I"
	NumPrefix  string `json:"numPrefix,omitempty"`
	NumSuffix  string `json:"numSuffix,omitempty"`
	StartValue int    `json:"startValue"`
}

// ListLevel returns the resolved list level for a list style and a 0-based
// nesting level. Unknown styles and levels resolve to a bullet.
func (sr *StyleResolver) ListLevel(listStyleName string, level int) ResolvedListLevel {
	result := ResolvedListLevel{
		Level:      level,
		IsBullet:   true,
		BulletChar: getBulletChar(level),
		StartValue: 1,
	}

	ls, ok := sr.listStyles[listStyleName]
	if !ok {
		return result
	}

	want := uint32(level + 1) // ODF levels are 1-based

	for _, bl := range ls.Bullets {
		if bl.Level == want {
			if c := deref(bl.BulletChar); c != "" {
				result.BulletChar = c
			}
			result.NumPrefix = deref(bl.NumPrefix)
			result.NumSuffix = deref(bl.NumSuffix)
			return result
		}
	}

	for _, nl := range ls.Numbers {
		if nl.Level == want {
			result.IsBullet = false
			result.BulletChar = ""
			result.NumFormat = nl.NumFormat
			result.NumPrefix = deref(nl.NumPrefix)
			result.NumSuffix = deref(nl.NumSuffix)
			if nl.StartValue != nil {
				result.StartValue = int(*nl.StartValue)
			}
			return result
		}
	}

	return result
}
