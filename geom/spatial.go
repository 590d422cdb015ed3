package geom

import (
	"github.com/vdobler/subplot"
	"github.com/vdobler/subplot/data"
)

// Scatter3D draws points at (X,Y,Z) inside a 3-D scene.
type Scatter3D struct {
	X, Y, Z string

	// Mode is "markers" (default), "lines" or "lines+markers".
	Mode string
	Name string

	Grouping
	Style
}

// Traces implements subplot.Builder.
func (s Scatter3D) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := s.split(t)
	if err != nil {
		return nil, err
	}
	mode := s.Mode
	if mode == "" {
		mode = "markers"
	}
	var traces []subplot.Trace
	for _, g := range groups {
		tr := subplot.Trace{"type": "scatter3d", "mode": mode}
		for field, col := range map[string]string{"x": s.X, "y": s.Y, "z": s.Z} {
			v, err := numeric(g.rows, col)
			if err != nil {
				return nil, err
			}
			tr[field] = v
		}
		if n := name(g, s.Name); n != "" {
			tr["name"] = n
		}
		if marker := s.marker(g.k); len(marker) > 0 {
			tr["marker"] = marker
		}
		s.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// Mesh3D draws a surface through the vertices (X,Y,Z). The optional
// columns I, J and K index the vertices of each triangle; without them the
// triangles are computed from the vertices.
type Mesh3D struct {
	X, Y, Z string
	I, J, K string

	Name string
	Style
}

// Traces implements subplot.Builder.
func (m Mesh3D) Traces(t *data.Table) ([]subplot.Trace, error) {
	tr := subplot.Trace{"type": "mesh3d"}
	for field, col := range map[string]string{"x": m.X, "y": m.Y, "z": m.Z} {
		v, err := numeric(t, col)
		if err != nil {
			return nil, err
		}
		tr[field] = v
	}
	if m.I != "" || m.J != "" || m.K != "" {
		for field, col := range map[string]string{"i": m.I, "j": m.J, "k": m.K} {
			xs, err := t.Numeric(col)
			if col == "" {
				err = ErrMissingColumn
			}
			if err != nil {
				return nil, err
			}
			idx := make([]int, len(xs))
			for i, x := range xs {
				idx[i] = int(x)
			}
			tr[field] = idx
		}
	}
	if len(m.Colors) > 0 {
		tr["color"] = m.Colors[0].String()
	}
	if m.Name != "" {
		tr["name"] = m.Name
	}
	m.apply(tr)
	return []subplot.Trace{tr}, nil
}

// ScatterPolar draws points at radius R and angle Theta. Theta is either
// numeric, in degrees, or categorical.
type ScatterPolar struct {
	R, Theta string

	Mode string // Defaults to "markers".
	Name string

	Grouping
	Style
}

// Traces implements subplot.Builder.
func (s ScatterPolar) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := s.split(t)
	if err != nil {
		return nil, err
	}
	mode := s.Mode
	if mode == "" {
		mode = "markers"
	}
	var traces []subplot.Trace
	for _, g := range groups {
		r, err := numeric(g.rows, s.R)
		if err != nil {
			return nil, err
		}
		theta, err := column(g.rows, s.Theta)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "scatterpolar", "mode": mode, "r": r, "theta": theta}
		if n := name(g, s.Name); n != "" {
			tr["name"] = n
		}
		if marker := s.marker(g.k); len(marker) > 0 {
			tr["marker"] = marker
		}
		s.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}

// ScatterGeo draws points at geographic coordinates Lat and Lon.
type ScatterGeo struct {
	Lat, Lon string
	Text     string // Optional hover text.

	Name string

	Grouping
	Style
}

// Traces implements subplot.Builder.
func (s ScatterGeo) Traces(t *data.Table) ([]subplot.Trace, error) {
	groups, err := s.split(t)
	if err != nil {
		return nil, err
	}
	var traces []subplot.Trace
	for _, g := range groups {
		lat, err := numeric(g.rows, s.Lat)
		if err != nil {
			return nil, err
		}
		lon, err := numeric(g.rows, s.Lon)
		if err != nil {
			return nil, err
		}
		tr := subplot.Trace{"type": "scattergeo", "mode": "markers", "lat": lat, "lon": lon}
		if s.Text != "" {
			txt, err := g.rows.Strings(s.Text)
			if err != nil {
				return nil, err
			}
			tr["text"] = txt
		}
		if n := name(g, s.Name); n != "" {
			tr["name"] = n
		}
		if marker := s.marker(g.k); len(marker) > 0 {
			tr["marker"] = marker
		}
		s.apply(tr)
		traces = append(traces, tr)
	}
	return traces, nil
}
