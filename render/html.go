package render

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"github.com/vdobler/subplot"
)

// DefaultCDN is the plotly.js bundle loaded by HTML pages.
const DefaultCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// HTMLOptions control the page written by HTML. The zero value is usable.
type HTMLOptions struct {
	// Title of the page, defaults to the figure title.
	Title string

	// CDN is the URL of the plotly.js bundle, defaults to DefaultCDN.
	CDN string

	// Width and Height are CSS lengths of the figure, default to 100%
	// and 100vh.
	Width, Height string

	// Raw disables minification of the page.
	Raw bool
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="{{.CDN}}"></script>
</head>
<body style="margin: 0">
  <div id="figure" style="{{.Style}}"></div>
  <script>
    var figure = {{.Figure}};
    Plotly.newPlot("figure", figure.data, figure.layout, {responsive: true});
  </script>
</body>
</html>
`))

// HTML writes a standalone page showing fig.
func HTML(w io.Writer, fig *subplot.Figure, opts HTMLOptions) error {
	doc, err := json.Marshal(fig)
	if err != nil {
		return &Error{Op: "encode", Format: FormatHTML, Err: err}
	}

	if opts.Title == "" {
		opts.Title = fig.Layout.Title()
	}
	if opts.CDN == "" {
		opts.CDN = DefaultCDN
	}
	if opts.Width == "" {
		opts.Width = "100%"
	}
	if opts.Height == "" {
		opts.Height = "100vh"
	}

	buf := &bytes.Buffer{}
	err = page.Execute(buf, struct {
		Title, CDN string
		Style      template.CSS
		Figure     template.JS
	}{
		Title:  opts.Title,
		CDN:    opts.CDN,
		Style:  template.CSS("width: " + opts.Width + "; height: " + opts.Height),
		Figure: template.JS(doc),
	})
	if err != nil {
		return &Error{Op: "execute", Format: FormatHTML, Err: err}
	}

	if opts.Raw {
		_, err = buf.WriteTo(w)
	} else {
		m := minify.New()
		m.AddFunc("text/html", html.Minify)
		err = m.Minify("text/html", w, buf)
	}
	if err != nil {
		return &Error{Op: "write", Format: FormatHTML, Err: err}
	}
	return nil
}
