package board

// Net represents an electrical net. Immutable after creation.
type Net struct {
	ID   int
	Name string
}

// Arc represents a copper arc segment.
type Arc struct {
	Layer      int
	Center     Position
	Radius     float64
	StartAngle float64 // Degrees
	EndAngle   float64 // Degrees
	Thickness  float64
	NetID      int
}

// Via represents a plated through-hole connecting two layers.
type Via struct {
	Position    Position
	TopRadius   float64 // Pad radius on the entry layer
	BotRadius   float64 // Pad radius on the exit layer
	FromLayer   int
	ToLayer     int
	NetID       int
	Text        string // Optional annotation carried by the file
	TestPad     bool   // Set for records stored under the test-pad tag
}

// Trace represents a straight copper track segment.
type Trace struct {
	Layer int
	Start Position
	End   Position
	Width float64
	NetID int
}

// TextLabel represents a text element, either standalone on the board or
// embedded in a component. Embedded labels store component-relative
// coordinates and set ComponentRelative.
type TextLabel struct {
	Text              string
	Position          Position
	Layer             int
	FontSize          float64
	Scale             float64
	Rotation          float64 // Degrees
	Visible           bool
	ComponentRelative bool
}

// LineSegment is a graphical outline stroke owned by a component.
type LineSegment struct {
	Layer     int
	Start     Position
	End       Position
	Thickness float64
}
