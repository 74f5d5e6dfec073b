package presenter

import (
	"fmt"
	"image"

	"github.com/soocke/roi-binarizer/domain/selection"
)

// SelectionSource provides the selection machine methods the presenter requires.
type SelectionSource interface {
	Current() selection.State
	Rect() (image.Rectangle, bool)
}

// SelectionView sets the selection label in the view.
type SelectionView interface{ SetSelectionLabel(string) }

// SelectionPresenter mirrors the selection machine into a label. Register
// OnState as a selection listener.
type SelectionPresenter struct {
	sel    SelectionSource
	view   SelectionView
	latest string // last rendered label
}

func NewSelectionPresenter(sel SelectionSource, view SelectionView) *SelectionPresenter {
	return &SelectionPresenter{sel: sel, view: view}
}

// OnState refreshes the label after a transition.
func (p *SelectionPresenter) OnState(_, next selection.State) {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.render(next)
}

// Refresh re-renders the label from the current machine state, for drag
// updates that do not change state.
func (p *SelectionPresenter) Refresh() {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.render(p.sel.Current())
}

func (p *SelectionPresenter) render(s selection.State) {
	label := "Selection: " + s.String()
	if r, ok := p.sel.Rect(); ok && s != selection.StateIdle {
		label = fmt.Sprintf("Selection: %s %dx%d at (%d,%d)", s, r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
	}
	if label == p.latest {
		return
	}
	p.latest = label
	p.view.SetSelectionLabel(label)
}
