package subplot

import "fmt"

// Family groups trace kinds by the kind of coordinate system they are
// drawn into.
type Family int

const (
	Cartesian Family = iota // Cartesian traces use an x- and a y-axis.
	Scene                   // Scene traces are drawn in a 3-D scene.
	Polar                   // Polar traces use a polar subplot.
	Geo                     // Geo traces use a geographic projection.
	Map                     // Map traces use a tile map subplot.
	Domain                  // Domain traces occupy a rectangle and have no axes.
)

// String returns the name of f.
func (f Family) String() string {
	switch f {
	case Cartesian:
		return "cartesian"
	case Scene:
		return "scene"
	case Polar:
		return "polar"
	case Geo:
		return "geo"
	case Map:
		return "map"
	case Domain:
		return "domain"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// subplotBase is the unnumbered identifier of the subplot f binds to.
func (f Family) subplotBase() string {
	switch f {
	case Scene:
		return "scene"
	case Polar:
		return "polar"
	case Geo:
		return "geo"
	case Map:
		return "mapbox"
	}
	return ""
}

// traceField is the trace field which references the subplot.
func (f Family) traceField() string {
	switch f {
	case Scene:
		return "scene"
	case Geo:
		return "geo"
	case Polar, Map:
		return "subplot"
	}
	return ""
}

var families = map[string]Family{
	"scatter":     Cartesian,
	"scattergl":   Cartesian,
	"bar":         Cartesian,
	"box":         Cartesian,
	"violin":      Cartesian,
	"histogram":   Cartesian,
	"histogram2d": Cartesian,
	"heatmap":     Cartesian,
	"contour":     Cartesian,
	"candlestick": Cartesian,
	"ohlc":        Cartesian,
	"image":       Cartesian,

	"scatter3d":  Scene,
	"mesh3d":     Scene,
	"surface":    Scene,
	"isosurface": Scene,
	"volume":     Scene,
	"streamtube": Scene,
	"cone":       Scene,

	"scatterpolar":   Polar,
	"scatterpolargl": Polar,
	"barpolar":       Polar,

	"scattergeo": Geo,
	"choropleth": Geo,

	"scattermapbox":    Map,
	"densitymapbox":    Map,
	"choroplethmapbox": Map,

	"pie":        Domain,
	"sankey":     Domain,
	"table":      Domain,
	"funnelarea": Domain,
	"sunburst":   Domain,
	"treemap":    Domain,
	"parcoords":  Domain,
	"indicator":  Domain,
}

// Classify determines the family of tr. A trace without type is a scatter
// trace. Unknown types yield a *TraceKindError wrapping
// ErrUnsupportedTraceKind.
func Classify(tr Trace) (Family, error) {
	kind := tr.Type()
	f, ok := families[kind]
	if !ok {
		return Cartesian, &TraceKindError{Kind: kind, Panel: -1, Err: ErrUnsupportedTraceKind}
	}
	return f, nil
}
