package render

import (
	"encoding/json"
	"io"

	"github.com/vdobler/subplot"
)

// JSON writes fig as indented {"data": [...], "layout": {...}} document.
func JSON(w io.Writer, fig *subplot.Figure) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fig); err != nil {
		return &Error{Op: "encode", Format: FormatJSON, Err: err}
	}
	return nil
}
