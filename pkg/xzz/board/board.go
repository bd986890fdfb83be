package board

// DiagnosticKey is the inner key used for net-keyed diagnostic readings
// (Layout B of the trailing diagnostic block, which carries one value per
// net rather than one per pin).
const DiagnosticKey = "voltage"

// DiagnosticTable maps a component or net name to its per-pin readings.
// Net-keyed entries use DiagnosticKey as the inner key.
type DiagnosticTable map[string]map[string]string

// Get returns the reading for an outer/inner key pair, or "" when absent.
func (t DiagnosticTable) Get(outer, inner string) string {
	if t == nil {
		return ""
	}
	if m, ok := t[outer]; ok {
		return m[inner]
	}
	return ""
}

// Set records a reading, allocating the inner map on first use.
func (t DiagnosticTable) Set(outer, inner, value string) {
	m, ok := t[outer]
	if !ok {
		m = make(map[string]string)
		t[outer] = m
	}
	m[inner] = value
}

// Board represents a fully decoded XZZPCB board. All entities are created
// during a single load pass and are immutable afterwards, except for layer
// visibility toggles which belong to the surrounding application.
type Board struct {
	Name       string
	SourcePath string

	// Derived during normalization: the board outline's extent and the
	// translation that was applied to recenter it at the origin.
	Width        float64
	Height       float64
	OriginOffset Position

	Layers []Layer

	Arcs       []Arc
	Vias       []Via
	Traces     []Trace
	Texts      []TextLabel
	Components []Component
	Nets       map[int]*Net

	Diagnostics DiagnosticTable

	loaded bool
}

// NewBoard creates an empty board with the standard layer table.
func NewBoard(name string) *Board {
	return &Board{
		Name:   name,
		Layers: StandardLayers(),
		Nets:   make(map[int]*Net),
	}
}

// MarkLoaded records that the board completed a full decode. A successfully
// loaded board with zero elements is distinguishable from a failed load.
func (b *Board) MarkLoaded() {
	b.loaded = true
}

// IsLoaded reports whether the board was produced by a successful decode.
func (b *Board) IsLoaded() bool {
	return b.loaded
}

// LayerMap builds a lookup over the board's layer table.
func (b *Board) LayerMap() *LayerMap {
	return NewLayerMap(b.Layers)
}

// GetNet returns the net with the given id, or nil if not found.
func (b *Board) GetNet(id int) *Net {
	return b.Nets[id]
}

// GetNetByName returns the first net with the given name, or nil.
func (b *Board) GetNetByName(name string) *Net {
	for _, net := range b.Nets {
		if net.Name == name {
			return net
		}
	}
	return nil
}

// NetName returns the display name for a net id, or "" for unconnected.
func (b *Board) NetName(id int) string {
	if net, ok := b.Nets[id]; ok {
		return net.Name
	}
	return ""
}

// GetNetTraces returns all traces connected to a specific net.
func (b *Board) GetNetTraces(id int) []Trace {
	var traces []Trace
	for _, trace := range b.Traces {
		if trace.NetID == id {
			traces = append(traces, trace)
		}
	}
	return traces
}

// GetNetVias returns all vias connected to a specific net.
func (b *Board) GetNetVias(id int) []Via {
	var vias []Via
	for _, via := range b.Vias {
		if via.NetID == id {
			vias = append(vias, via)
		}
	}
	return vias
}

// GetNetArcs returns all arcs connected to a specific net.
func (b *Board) GetNetArcs(id int) []Arc {
	var arcs []Arc
	for _, arc := range b.Arcs {
		if arc.NetID == id {
			arcs = append(arcs, arc)
		}
	}
	return arcs
}

// NetPin identifies a pin by its owning component.
type NetPin struct {
	Component *Component
	Pin       *Pin
}

// GetNetPins returns all component pins connected to a specific net.
func (b *Board) GetNetPins(id int) []NetPin {
	var pins []NetPin
	for i := range b.Components {
		comp := &b.Components[i]
		for j := range comp.Pins {
			if comp.Pins[j].NetID == id {
				pins = append(pins, NetPin{Component: comp, Pin: &comp.Pins[j]})
			}
		}
	}
	return pins
}

// NetInfo aggregates everything connected to one net.
type NetInfo struct {
	Net    *Net
	Pins   []NetPin
	Traces []Trace
	Vias   []Via
	Arcs   []Arc
}

// GetNetInfo returns complete connectivity information for a net id, or nil
// if the net does not exist.
func (b *Board) GetNetInfo(id int) *NetInfo {
	net := b.GetNet(id)
	if net == nil {
		return nil
	}
	return &NetInfo{
		Net:    net,
		Pins:   b.GetNetPins(id),
		Traces: b.GetNetTraces(id),
		Vias:   b.GetNetVias(id),
		Arcs:   b.GetNetArcs(id),
	}
}

// GetComponent returns the component with the given reference designator,
// or nil if not found.
func (b *Board) GetComponent(reference string) *Component {
	for i := range b.Components {
		if b.Components[i].Reference == reference {
			return &b.Components[i]
		}
	}
	return nil
}
