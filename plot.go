package dashboard

import "github.com/microcosm-cc/bluemonday"

// svgPolicy allows the element and attribute surface matplotlib, plotly,
// and similar plotting backends emit, and strips scripts and event handlers.
// Applied only when sanitizing is enabled.
var svgPolicy = newSVGPolicy()

func newSVGPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"svg", "g", "defs", "symbol", "use", "title", "desc",
		"path", "rect", "circle", "ellipse", "line", "polyline", "polygon",
		"text", "tspan", "textPath", "image", "clipPath", "marker", "pattern",
		"linearGradient", "radialGradient", "stop",
	)
	p.AllowAttrs(
		"id", "class", "width", "height", "viewBox", "preserveAspectRatio",
		"xmlns", "xmlns:xlink", "version",
		"x", "y", "x1", "y1", "x2", "y2", "cx", "cy", "r", "rx", "ry",
		"d", "points", "transform", "clip-path", "clip-rule",
		"fill", "fill-opacity", "fill-rule", "stroke", "stroke-width",
		"stroke-linecap", "stroke-linejoin", "stroke-dasharray",
		"stroke-opacity", "opacity", "offset", "stop-color", "stop-opacity",
		"font-family", "font-size", "font-weight", "font-style",
		"text-anchor", "dominant-baseline", "style",
	).Globally()
	return p
}

// plotHTML converts a plot record to an HTML fragment.
// SVG markup is embedded verbatim inside a wrapper div (sanitized only when
// requested); raster payloads become base64 data URIs. Payload correctness
// is not validated; malformed content passes through as-is.
func plotHTML(p Plot, sanitize bool) string {
	if p.MIMEType == MIMESVG {
		data := p.Data
		if sanitize {
			data = svgPolicy.Sanitize(data)
		}
		return `<div class="plot-svg">` + data + `</div>`
	}
	return `<img src="data:` + p.MIMEType + `;base64,` + p.Data + `" alt="Plot" class="plot-image">`
}
