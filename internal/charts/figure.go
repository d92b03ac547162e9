// Package charts describes the page's figures as plain data. The embedded
// page script draws them; nothing here knows about HTML.
package charts

// Spectral4 is the four-colour diverging palette the figures draw from
var Spectral4 = [4]string{"#2b83ba", "#abdda4", "#fdae61", "#d7191c"}

// DefaultMarkerColor is used for observed points when no palette colour is assigned
const DefaultMarkerColor = "#1f77b4"

// Series kinds
const (
	KindCircle = "circle"
	KindLine   = "line"
)

// Axis names a series can bind to
const (
	AxisPrimary   = "y"
	AxisSecondary = "y2"
)

// Legend positions
const (
	LegendTopLeft  = "top_left"
	LegendTopRight = "top_right"
)

// Range is a closed numeric interval
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Axis is one labelled scale. A nil Range means the scale follows the data.
type Axis struct {
	Label string `json:"label"`
	Range *Range `json:"range,omitempty"`
}

// Series is one glyph layer of a figure
type Series struct {
	Name  string    `json:"name"`
	Kind  string    `json:"kind"`
	Color string    `json:"color"`
	Dash  string    `json:"dash,omitempty"`
	Width float64   `json:"width"`
	YAxis string    `json:"yAxis"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Figure is a complete chart specification
type Figure struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	XAxis      Axis     `json:"xAxis"`
	YAxis      Axis     `json:"yAxis"`
	SecondaryY *Axis    `json:"secondaryY,omitempty"`
	Legend     string   `json:"legend"`
	Series     []Series `json:"series"`
}

// RangeSlider is a two-handle control bound to a figure's x range
type RangeSlider struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Start  float64    `json:"start"`
	End    float64    `json:"end"`
	Step   float64    `json:"step"`
	Value  [2]float64 `json:"value"`
	Target string     `json:"target"`
}

// SeriesNamed returns the first series with the given name
func (f *Figure) SeriesNamed(name string) (Series, bool) {
	for _, s := range f.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}
