package view

import (
	"github.com/soocke/roi-binarizer/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the session status line and the selection label.
type StatusBar interface {
	SetStatus(text string)
	SetSelection(text string)
}

type statusBar struct {
	statusLbl    *TLabelWidget
	selectionLbl *TLabelWidget
}

// NewStatusBar creates both labels in a grid row.
// The status label spans startCol..startCol+1 and the selection label sits
// at startCol+2. If parent is nil, labels are positioned relative to the App root.
func NewStatusBar(parent *FrameWidget, row, startCol int) StatusBar {
	s := &statusBar{
		statusLbl:    TLabel(Txt(""), Anchor("w"), Style(theme.StyleStatusLabel)),
		selectionLbl: TLabel(Txt("Selection: idle"), Anchor("e"), Style(theme.StyleAccentLabel)),
	}
	if parent != nil {
		Grid(s.statusLbl, In(parent), Row(row), Column(startCol), Columnspan(2), Sticky("we"), Padx("0.2m"))
		Grid(s.selectionLbl, In(parent), Row(row), Column(startCol+2), Sticky("e"), Padx("0.2m"))
	} else {
		Grid(s.statusLbl, Row(row), Column(startCol), Columnspan(2), Sticky("we"), Padx("0.2m"))
		Grid(s.selectionLbl, Row(row), Column(startCol+2), Sticky("e"), Padx("0.2m"))
	}
	return s
}

// SetStatus replaces the status line text.
func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

// SetSelection replaces the selection label text.
func (s *statusBar) SetSelection(text string) {
	if s == nil || s.selectionLbl == nil {
		return
	}
	s.selectionLbl.Configure(Txt(text))
}
