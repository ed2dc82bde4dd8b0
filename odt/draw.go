package odt

// Rect is a draw:rect. Width is style:rel-width, e.g. "100%".
type Rect struct {
	Width string `json:"width"`
}

func (*Rect) Kind() Kind { return KindRect }
func (*Rect) isInline()  {}

// Frame is a draw:frame. Object and Image are the xlink:href values of the
// embedded draw:object and draw:image; Description is the svg:desc text.
type Frame struct {
	Name        *string `json:"name,omitempty"`
	Object      *string `json:"object,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (*Frame) Kind() Kind { return KindFrame }
func (*Frame) isInline()  {}

// Group is a draw:g holding custom shapes.
type Group struct {
	StyleName string         `json:"styleName"`
	Shapes    []*CustomShape `json:"shapes,omitempty"`
}

func (*Group) Kind() Kind { return KindGroup }
func (*Group) isInline()  {}

// CustomShape is a draw:custom-shape. Geometry attributes are kept as
// written, e.g. "0.0012in".
type CustomShape struct {
	X         string        `json:"x"`
	Y         string        `json:"y"`
	Width     string        `json:"width"`
	Height    string        `json:"height"`
	StyleName string        `json:"styleName"`
	Items     ShapeContents `json:"items"`
}

func (*CustomShape) Kind() Kind { return KindCustomShape }
func (*CustomShape) isInline()  {}

// EnhancedGeometry is a draw:enhanced-geometry.
type EnhancedGeometry struct {
	Equations   []Equation `json:"equations,omitempty"`
	Path        string     `json:"path"`            // draw:enhanced-path
	Path2       *string    `json:"path2,omitempty"` // drawooo:enhanced-path
	SubViewSize string     `json:"subViewSize"`     // drawooo:sub-view-size
}

func (*EnhancedGeometry) Kind() Kind      { return KindEnhancedGeometry }
func (*EnhancedGeometry) isShapeContent() {}

// Equation is a named draw:equation.
type Equation struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
}
