// Package subplot composes multi-panel figures from trace documents.
//
// A trace is an opaque JSON-like document describing one renderable data
// series; its "type" field selects the chart kind. Package geom builds traces
// from tabular data, package render turns a finished Figure into JSON, HTML
// or an image. This package arranges traces into panels.
//
// Faceting
//
// FacetWrap splits a data table by the distinct values of one column and
// builds one panel per value, wrapping the panels into a grid:
//   - Partition computes the facet keys and row subsets.
//   - NewGrid computes the grid shape and the domain rectangle of each panel.
//   - Rebind points a trace at the axes of one panel.
//   - Compose merges the rebound traces, one axis definition per panel and
//     the panel titles into one Figure.
//
// Scales
//
// The x- and y-axis ranges of a composite figure are either shared by all
// panels or computed per panel:
//   - Shared   All panels use the union of all data.
//   - FreeX    Each panel has its own x range, the y range is shared.
//   - FreeY    Each panel has its own y range, the x range is shared.
//   - Free     Each panel has its own x and y range.
// Data ranges are expanded by DefaultExpand on both sides. Axes showing
// categorical data get no range.
//
// Panel families
//
// Only cartesian traces are bound through xaxis/yaxis. 3-D traces are bound
// to scenes, polar and map traces to their subplot, geo traces to a geo
// layout and domain-based traces (pie, sankey, table, ...) are placed by
// their domain rectangle. All panels of one figure must belong to the same
// family.
package subplot
