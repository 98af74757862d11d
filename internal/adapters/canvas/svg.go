package canvas

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"

	"roommind/internal/domain"
)

// WriteSVG writes scene as a standalone SVG document
func WriteSVG(w io.Writer, scene domain.Scene) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(scene.Width), num(scene.Height), num(scene.Width), num(scene.Height))
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="#0F172A"/>`+"\n")

	for _, p := range scene.Primitives {
		writePrimitive(bw, p)
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func writePrimitive(w io.Writer, p domain.Primitive) {
	color := Color(p)
	dash := ""
	if p.Dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	width := "2"
	if p.Role == domain.RoleGrid {
		width = "1"
	}

	switch p.Kind {
	case domain.KindLine:
		from, to := p.Abs(p.From), p.Abs(p.To)
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(from.X), num(from.Y), num(to.X), num(to.Y), color, width, dash)
	case domain.KindRect:
		at := p.Abs(p.From)
		fill := "none"
		if p.Role == domain.RolePlacement {
			fill = color + "33"
		}
		fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(at.X), num(at.Y), num(p.Width), num(p.Height), fill, color, width, dash)
	case domain.KindCircle:
		c := p.Abs(p.Center)
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(c.X), num(c.Y), num(p.Radius), color, width, dash)
	case domain.KindText:
		at := p.Abs(p.From)
		fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" font-family="monospace" font-size="11" text-anchor="middle">%s</text>`+"\n",
			num(at.X), num(at.Y), color, html.EscapeString(p.Text))
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
