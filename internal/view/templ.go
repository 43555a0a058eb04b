package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent lets a gomponents tree travel through code that expects a
// templ.Component, such as the shared renderer.
type nodeComponent struct {
	node g.Node
}

func (n nodeComponent) Render(_ context.Context, w io.Writer) error {
	return n.node.Render(w)
}

// Templ wraps node as a templ.Component.
func Templ(node g.Node) templ.Component {
	return nodeComponent{node: node}
}
