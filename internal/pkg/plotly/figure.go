// Package plotly describes chart figures in the portable JSON shape
// consumed by the plotly runtime on the display side. Nothing here
// renders; figures are data.
package plotly

// Figure is a complete chart description
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single data series within a figure
type Trace struct {
	Type   string        `json:"type"`
	X      []interface{} `json:"x,omitempty"`
	Y      []interface{} `json:"y,omitempty"`
	Z      []interface{} `json:"z,omitempty"`
	Mode   string        `json:"mode,omitempty"`
	NBinsX int           `json:"nbinsx,omitempty"`
	Marker *Marker       `json:"marker,omitempty"`
}

// Marker controls point styling; Color carries the per-point class label
type Marker struct {
	Color      []interface{} `json:"color,omitempty"`
	ColorScale string        `json:"colorscale,omitempty"`
	Size       int           `json:"size,omitempty"`
}

// Layout carries figure-level presentation
type Layout struct {
	Title string `json:"title,omitempty"`
	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
	Scene *Scene `json:"scene,omitempty"`
}

// Axis names a single axis
type Axis struct {
	Title string `json:"title,omitempty"`
}

// Scene names the axes of a 3-D figure
type Scene struct {
	XAxis *Axis `json:"xaxis,omitempty"`
	YAxis *Axis `json:"yaxis,omitempty"`
	ZAxis *Axis `json:"zaxis,omitempty"`
}
