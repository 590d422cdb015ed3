package subplot

// Rebind returns a copy of tr which is drawn into panel p:
//   - Cartesian traces get xaxis/yaxis set to the axes of p.
//   - Scene, geo, polar and map traces get their subplot reference set.
//   - Domain traces get their domain set to the rectangle of p.
// Rebinding an already rebound trace to the same panel changes nothing.
// Fields unrelated to the binding are left untouched and tr itself is
// never modified.
func Rebind(tr Trace, p Panel) (Trace, error) {
	fam, err := Classify(tr)
	if err != nil {
		if ke, ok := err.(*TraceKindError); ok {
			ke.Panel = p.Index
		}
		return nil, err
	}
	return bind(tr, fam, p), nil
}

func bind(tr Trace, fam Family, p Panel) Trace {
	out := tr.Clone()
	switch fam {
	case Cartesian:
		out["xaxis"] = p.XAxis()
		out["yaxis"] = p.YAxis()
	case Scene, Polar, Geo, Map:
		out[fam.traceField()] = p.SubplotKey(fam)
	case Domain:
		dom, _ := tr["domain"].(map[string]interface{})
		dom = cloneMap(dom)
		dom["x"] = []float64{p.Domain.X0, p.Domain.X1}
		dom["y"] = []float64{p.Domain.Y0, p.Domain.Y1}
		delete(dom, "row")
		delete(dom, "column")
		out["domain"] = dom
	}
	return out
}
