package board

import "strconv"

// LayerType classifies a layer's role on the board.
type LayerType int

const (
	LayerTypeSignal LayerType = iota
	LayerTypePlane
	LayerTypeSilkscreen
	LayerTypeMask
	LayerTypePaste
	LayerTypeDrill
	LayerTypeMechanical
	LayerTypeOutline
	LayerTypeComment
	LayerTypeOther
)

// String returns the display name of a layer type.
func (t LayerType) String() string {
	switch t {
	case LayerTypeSignal:
		return "signal"
	case LayerTypePlane:
		return "plane"
	case LayerTypeSilkscreen:
		return "silkscreen"
	case LayerTypeMask:
		return "mask"
	case LayerTypePaste:
		return "paste"
	case LayerTypeDrill:
		return "drill"
	case LayerTypeMechanical:
		return "mechanical"
	case LayerTypeOutline:
		return "outline"
	case LayerTypeComment:
		return "comment"
	default:
		return "other"
	}
}

// Standard XZZPCB layer ids. The file format addresses layers by these fixed
// numbers; the table never varies between boards.
const (
	FirstTraceLayer = 1  // Trace layers run 1..16
	LastTraceLayer  = 16
	SilkscreenLayer = 17
	// 18..27 are reserved by the format and show up only in unusual files
	BoardOutlineLayer = 28
	PinsLayer         = 29 // Synthetic, holds no file elements
	ViasLayer         = 30 // Synthetic, holds no file elements
)

// Layer represents one entry of the standard layer table.
type Layer struct {
	ID      int
	Name    string
	Type    LayerType
	Visible bool
	Color   Color
}

// Default trace layer palette, cycled across layers 1..16.
var traceColors = []Color{
	{R: 0.75, G: 0.12, B: 0.12, A: 1.0},
	{R: 0.12, G: 0.45, B: 0.75, A: 1.0},
	{R: 0.15, G: 0.65, B: 0.25, A: 1.0},
	{R: 0.75, G: 0.60, B: 0.10, A: 1.0},
	{R: 0.55, G: 0.25, B: 0.70, A: 1.0},
	{R: 0.10, G: 0.62, B: 0.62, A: 1.0},
	{R: 0.80, G: 0.40, B: 0.15, A: 1.0},
	{R: 0.45, G: 0.45, B: 0.45, A: 1.0},
}

// StandardLayers builds the fixed XZZPCB layer table: sixteen trace layers,
// one silkscreen, ten reserved, one board outline, and the two synthetic
// "pins" and "vias" layers used by consumers to toggle those element classes.
func StandardLayers() []Layer {
	var layers []Layer

	for id := FirstTraceLayer; id <= LastTraceLayer; id++ {
		layers = append(layers, Layer{
			ID:      id,
			Name:    traceLayerName(id),
			Type:    LayerTypeSignal,
			Visible: true,
			Color:   traceColors[(id-FirstTraceLayer)%len(traceColors)],
		})
	}

	layers = append(layers, Layer{
		ID:      SilkscreenLayer,
		Name:    "Silkscreen",
		Type:    LayerTypeSilkscreen,
		Visible: true,
		Color:   Color{R: 0.9, G: 0.9, B: 0.85, A: 1.0},
	})

	for id := SilkscreenLayer + 1; id < BoardOutlineLayer; id++ {
		layers = append(layers, Layer{
			ID:      id,
			Name:    reservedLayerName(id),
			Type:    LayerTypeOther,
			Visible: false,
			Color:   Color{R: 0.3, G: 0.3, B: 0.3, A: 1.0},
		})
	}

	layers = append(layers, Layer{
		ID:      BoardOutlineLayer,
		Name:    "Board Outline",
		Type:    LayerTypeOutline,
		Visible: true,
		Color:   Color{R: 0.85, G: 0.85, B: 0.2, A: 1.0},
	})

	layers = append(layers, Layer{
		ID:      PinsLayer,
		Name:    "Pins",
		Type:    LayerTypeOther,
		Visible: true,
		Color:   Color{R: 0.75, G: 0.65, B: 0.25, A: 1.0},
	})

	layers = append(layers, Layer{
		ID:      ViasLayer,
		Name:    "Vias",
		Type:    LayerTypeOther,
		Visible: true,
		Color:   Color{R: 0.55, G: 0.55, B: 0.6, A: 1.0},
	})

	return layers
}

func traceLayerName(id int) string {
	switch id {
	case FirstTraceLayer:
		return "Top"
	case LastTraceLayer:
		return "Bottom"
	default:
		return "Inner " + strconv.Itoa(id-FirstTraceLayer)
	}
}

func reservedLayerName(id int) string {
	return "Reserved " + strconv.Itoa(id)
}

// LayerMap provides lookup of layers by id.
type LayerMap struct {
	byID map[int]*Layer
}

// NewLayerMap creates a LayerMap over a slice of layers. The map aliases the
// slice entries, so visibility toggles through either view stay coherent.
func NewLayerMap(layers []Layer) *LayerMap {
	lm := &LayerMap{byID: make(map[int]*Layer)}
	for i := range layers {
		lm.byID[layers[i].ID] = &layers[i]
	}
	return lm
}

// GetByID retrieves a layer by its numeric id.
func (lm *LayerMap) GetByID(id int) (*Layer, bool) {
	layer, ok := lm.byID[id]
	return layer, ok
}

// IsTraceLayer checks if an id addresses one of the sixteen copper layers.
func (lm *LayerMap) IsTraceLayer(id int) bool {
	return id >= FirstTraceLayer && id <= LastTraceLayer
}
