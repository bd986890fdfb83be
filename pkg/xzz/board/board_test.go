package board

import "testing"

// testBoard builds a small board with two nets, one component and a few
// copper elements for the connectivity query tests.
func testBoard() *Board {
	b := NewBoard("test")
	b.Nets[1] = &Net{ID: 1, Name: "GND"}
	b.Nets[2] = &Net{ID: 2, Name: "VCC"}

	b.Traces = []Trace{
		{Layer: 1, Start: Position{X: 0, Y: 0}, End: Position{X: 5, Y: 0}, NetID: 1},
		{Layer: 16, Start: Position{X: 0, Y: 1}, End: Position{X: 5, Y: 1}, NetID: 2},
		{Layer: 1, Start: Position{X: 0, Y: 2}, End: Position{X: 5, Y: 2}, NetID: 1},
	}
	b.Vias = []Via{
		{Position: Position{X: 2, Y: 0}, TopRadius: 0.2, BotRadius: 0.2, NetID: 1},
	}
	b.Arcs = []Arc{
		{Layer: 1, Center: Position{X: 3, Y: 3}, Radius: 1, NetID: 2},
	}
	b.Components = []Component{
		{
			Reference: "U1",
			Anchor:    Position{X: 1, Y: 1},
			Pins: []Pin{
				{Name: "1", NetID: 1, Shape: CirclePad(0.3)},
				{Name: "2", NetID: 2, Shape: CirclePad(0.3)},
			},
		},
	}
	return b
}

func TestNetLookups(t *testing.T) {
	b := testBoard()

	if net := b.GetNet(1); net == nil || net.Name != "GND" {
		t.Errorf("GetNet(1) = %v, want GND", net)
	}
	if net := b.GetNet(99); net != nil {
		t.Errorf("GetNet(99) = %v, want nil", net)
	}
	if net := b.GetNetByName("VCC"); net == nil || net.ID != 2 {
		t.Errorf("GetNetByName(VCC) = %v, want net 2", net)
	}
	if b.GetNetByName("MISSING") != nil {
		t.Error("GetNetByName(MISSING) found a net")
	}
	if got := b.NetName(2); got != "VCC" {
		t.Errorf("NetName(2) = %q, want VCC", got)
	}
	if got := b.NetName(0); got != "" {
		t.Errorf("NetName(0) = %q, want empty", got)
	}
}

func TestGetNetInfo(t *testing.T) {
	b := testBoard()

	info := b.GetNetInfo(1)
	if info == nil {
		t.Fatal("GetNetInfo(1) = nil")
	}
	if info.Net.Name != "GND" {
		t.Errorf("net name = %q, want GND", info.Net.Name)
	}
	if len(info.Traces) != 2 {
		t.Errorf("got %d traces, want 2", len(info.Traces))
	}
	if len(info.Vias) != 1 {
		t.Errorf("got %d vias, want 1", len(info.Vias))
	}
	if len(info.Arcs) != 0 {
		t.Errorf("got %d arcs, want 0", len(info.Arcs))
	}
	if len(info.Pins) != 1 {
		t.Fatalf("got %d pins, want 1", len(info.Pins))
	}
	if info.Pins[0].Component.Reference != "U1" || info.Pins[0].Pin.Name != "1" {
		t.Errorf("pin = %s/%s, want U1/1",
			info.Pins[0].Component.Reference, info.Pins[0].Pin.Name)
	}

	if b.GetNetInfo(99) != nil {
		t.Error("GetNetInfo(99) returned info for a missing net")
	}
}

func TestGetComponent(t *testing.T) {
	b := testBoard()
	if c := b.GetComponent("U1"); c == nil || len(c.Pins) != 2 {
		t.Errorf("GetComponent(U1) = %v", c)
	}
	if b.GetComponent("U2") != nil {
		t.Error("GetComponent(U2) found a component")
	}
}

func TestLoadedFlag(t *testing.T) {
	b := NewBoard("x")
	if b.IsLoaded() {
		t.Error("fresh board reports loaded")
	}
	b.MarkLoaded()
	if !b.IsLoaded() {
		t.Error("board does not report loaded after MarkLoaded")
	}
}

func TestDiagnosticTable(t *testing.T) {
	table := make(DiagnosticTable)
	table.Set("U1", "3", "1.8")
	if got := table.Get("U1", "3"); got != "1.8" {
		t.Errorf("Get = %q, want 1.8", got)
	}
	if got := table.Get("U1", "4"); got != "" {
		t.Errorf("Get on missing inner key = %q, want empty", got)
	}
	if got := table.Get("U9", "1"); got != "" {
		t.Errorf("Get on missing outer key = %q, want empty", got)
	}

	var nilTable DiagnosticTable
	if got := nilTable.Get("U1", "1"); got != "" {
		t.Errorf("Get on nil table = %q, want empty", got)
	}
}

func TestStandardLayers(t *testing.T) {
	layers := StandardLayers()
	if len(layers) != 30 {
		t.Fatalf("got %d layers, want 30", len(layers))
	}
	for i, layer := range layers {
		if layer.ID != i+1 {
			t.Errorf("layer %d has id %d", i, layer.ID)
		}
	}

	lm := NewLayerMap(layers)
	checks := []struct {
		id   int
		name string
		typ  LayerType
	}{
		{1, "Top", LayerTypeSignal},
		{2, "Inner 1", LayerTypeSignal},
		{16, "Bottom", LayerTypeSignal},
		{SilkscreenLayer, "Silkscreen", LayerTypeSilkscreen},
		{18, "Reserved 18", LayerTypeOther},
		{BoardOutlineLayer, "Board Outline", LayerTypeOutline},
		{PinsLayer, "Pins", LayerTypeOther},
		{ViasLayer, "Vias", LayerTypeOther},
	}
	for _, c := range checks {
		layer, ok := lm.GetByID(c.id)
		if !ok {
			t.Errorf("layer %d missing", c.id)
			continue
		}
		if layer.Name != c.name || layer.Type != c.typ {
			t.Errorf("layer %d = %q (%v), want %q (%v)",
				c.id, layer.Name, layer.Type, c.name, c.typ)
		}
	}

	if !lm.IsTraceLayer(1) || !lm.IsTraceLayer(16) {
		t.Error("copper layer not recognized as trace layer")
	}
	if lm.IsTraceLayer(17) || lm.IsTraceLayer(0) {
		t.Error("non-copper layer recognized as trace layer")
	}
}

func TestLayerMapAliasesLayers(t *testing.T) {
	b := NewBoard("x")
	lm := b.LayerMap()
	layer, ok := lm.GetByID(SilkscreenLayer)
	if !ok {
		t.Fatal("silkscreen layer missing")
	}
	layer.Visible = false
	if b.Layers[SilkscreenLayer-1].Visible {
		t.Error("visibility toggle through the map did not reach the slice")
	}
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Error("new bounding box not empty")
	}

	bb.Expand(Position{X: -2, Y: 1})
	bb.Expand(Position{X: 4, Y: -3})
	if bb.IsEmpty() {
		t.Error("expanded bounding box reports empty")
	}
	if bb.Width() != 6 || bb.Height() != 4 {
		t.Errorf("extent = %g x %g, want 6 x 4", bb.Width(), bb.Height())
	}
	if c := bb.Center(); c.X != 1 || c.Y != -1 {
		t.Errorf("center = %v, want (1, -1)", c)
	}
	if !bb.Contains(Position{X: 0, Y: 0}) || bb.Contains(Position{X: 5, Y: 0}) {
		t.Error("containment check wrong")
	}

	other := NewBoundingBox()
	other.Expand(Position{X: 10, Y: 10})
	if bb.Intersects(other) {
		t.Error("disjoint boxes intersect")
	}
	bb.ExpandBox(other)
	if bb.Max.X != 10 || bb.Max.Y != 10 {
		t.Errorf("ExpandBox max = %v, want (10, 10)", bb.Max)
	}

	empty := NewBoundingBox()
	bb.ExpandBox(empty)
	if bb.Max.X != 10 {
		t.Error("expanding by an empty box changed the extent")
	}
}

func TestTranslateMovesAnchorsOnly(t *testing.T) {
	b := testBoard()
	pinBefore := b.Components[0].Pins[0].Position
	b.Translate(10, -5)

	if got := b.Traces[0].Start; got.X != 10 || got.Y != -5 {
		t.Errorf("trace start = %v, want (10, -5)", got)
	}
	if got := b.Vias[0].Position; got.X != 12 || got.Y != -5 {
		t.Errorf("via position = %v, want (12, -5)", got)
	}
	if got := b.Components[0].Anchor; got.X != 11 || got.Y != -4 {
		t.Errorf("component anchor = %v, want (11, -4)", got)
	}
	if got := b.Components[0].Pins[0].Position; got != pinBefore {
		t.Errorf("component-relative pin moved: %v", got)
	}
}

func TestNormalize(t *testing.T) {
	b := NewBoard("x")
	b.Traces = []Trace{
		{Layer: BoardOutlineLayer, Start: Position{X: 10, Y: 20}, End: Position{X: 30, Y: 20}},
		{Layer: BoardOutlineLayer, Start: Position{X: 30, Y: 40}, End: Position{X: 10, Y: 40}},
		{Layer: 1, Start: Position{X: 20, Y: 30}, End: Position{X: 25, Y: 30}},
	}
	b.Normalize()

	if b.Width != 20 || b.Height != 20 {
		t.Errorf("extent = %g x %g, want 20 x 20", b.Width, b.Height)
	}
	if b.OriginOffset.X != -20 || b.OriginOffset.Y != -30 {
		t.Errorf("origin offset = %v, want (-20, -30)", b.OriginOffset)
	}
	if got := b.Traces[2].Start; got.X != 0 || got.Y != 0 {
		t.Errorf("inner trace start = %v, want (0, 0)", got)
	}
}

func TestNormalizeWithoutOutline(t *testing.T) {
	b := NewBoard("x")
	b.Traces = []Trace{
		{Layer: 1, Start: Position{X: 5, Y: 5}, End: Position{X: 6, Y: 5}},
	}
	b.Normalize()

	if b.Width != 0 || b.Height != 0 {
		t.Errorf("extent = %g x %g, want 0 x 0", b.Width, b.Height)
	}
	if got := b.Traces[0].Start; got.X != 5 {
		t.Errorf("trace moved without an outline: %v", got)
	}
}

func TestGetBoundingBox(t *testing.T) {
	b := testBoard()
	bb := b.GetBoundingBox()

	// Leftmost extent comes from the traces at x=0, rightmost from x=5;
	// the arc circle reaches y=4.
	if bb.Min.X != 0 || bb.Max.X != 5 {
		t.Errorf("x range = [%g, %g], want [0, 5]", bb.Min.X, bb.Max.X)
	}
	if bb.Max.Y != 4 {
		t.Errorf("max y = %g, want 4 from the arc", bb.Max.Y)
	}
}
