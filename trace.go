package subplot

// Trace is a JSON-like document describing one renderable data series.
// The field "type" selects the chart kind; a trace without type is a
// scatter trace. Values are scalars, slices and nested maps of the same
// form as produced by encoding/json.
type Trace map[string]interface{}

// Type returns the chart kind of tr.
func (tr Trace) Type() string {
	if s, ok := tr["type"].(string); ok && s != "" {
		return s
	}
	return "scatter"
}

// Name returns the legend name of tr or "".
func (tr Trace) Name() string {
	s, _ := tr["name"].(string)
	return s
}

// Clone returns a shallow copy of tr: top-level fields may be replaced in
// the copy without affecting tr.
func (tr Trace) Clone() Trace {
	c := make(Trace, len(tr)+2)
	for k, v := range tr {
		c[k] = v
	}
	return c
}

// Layout is the figure level document: axes, subplots, annotations, title
// and legend.
type Layout map[string]interface{}

// Clone returns a copy of l. Nested maps are copied too, slices are shared.
func (l Layout) Clone() Layout {
	if l == nil {
		return Layout{}
	}
	return Layout(cloneMap(l))
}

// Object returns the nested document under key, creating it if needed.
// Existing map[string]interface{} values are copied before they are
// returned, so callers may modify the result freely.
func (l Layout) Object(key string) map[string]interface{} {
	m, _ := l[key].(map[string]interface{})
	m = cloneMap(m)
	l[key] = m
	return m
}

// Title returns the figure title stored in l.
func (l Layout) Title() string {
	return titleText(l["title"])
}

// AxisTitle returns the title text of the axis under key, e.g. "xaxis2".
func (l Layout) AxisTitle(key string) string {
	m, _ := l[key].(map[string]interface{})
	return titleText(m["title"])
}

// titleText extracts the text of v which is either a plain string or an
// object with a "text" field.
func titleText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]interface{}:
		s, _ := t["text"].(string)
		return s
	}
	return ""
}

func cloneMap(m map[string]interface{}) map[string]interface{} {
	c := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			v = cloneMap(nested)
		}
		c[k] = v
	}
	return c
}
