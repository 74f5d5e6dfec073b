package view

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/soocke/roi-binarizer/config"
	"github.com/soocke/roi-binarizer/ui/presenter"
	"github.com/soocke/roi-binarizer/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Source   ImagePane
	Result   ImagePane
	Status   StatusBar
	Settings SettingsPanel

	// Widgets
	ThresholdScale *TScaleWidget
	ThresholdLabel *TLabelWidget
	threshold      int
}

// Handlers are the user actions the root view forwards.
type Handlers struct {
	Open          func()
	CaptureScreen func()
	Save          func()
	Exit          func()
	Binarize      func()
	Reset         func()
	Threshold     func(value int)
	Press         func(x, y int)
	Drag          func(x, y int)
	Release       func(x, y int)
	Settings      func()
}

// UI is the view surface consumed by presenters.
type UI interface {
	presenter.View
	presenter.Dialogs
	presenter.SelectionView
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the menu and layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	h = h.withDefaults()
	rv.buildMenu(h)

	// Row 0: source pane and result pane
	panes := Frame()
	Grid(panes, Row(0), Column(0), Columnspan(3), Sticky("nwe"), Padx("0.4m"), Pady("0.4m"))
	rv.Source = NewImagePane(panes, 0, 0)
	rv.Result = NewImagePane(panes, 0, 1)
	src := rv.Source.Widget()
	Bind(src, "<ButtonPress-1>", Command(func(e *Event) { h.Press(eventPoint(e)) }))
	Bind(src, "<B1-Motion>", Command(func(e *Event) { h.Drag(eventPoint(e)) }))
	Bind(src, "<ButtonRelease-1>", Command(func(e *Event) { h.Release(eventPoint(e)) }))

	// Row 1: threshold slider
	sliderFrame := Frame()
	Grid(sliderFrame, Row(1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	Grid(TLabel(Txt("Threshold")), In(sliderFrame), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	rv.threshold = rv.cfg.Threshold
	rv.ThresholdScale = TScale(Orient("horizontal"), From(0), To(255), Value(rv.threshold), Length(360))
	Grid(rv.ThresholdScale, In(sliderFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	rv.ThresholdLabel = TLabel(Txt(strconv.Itoa(rv.threshold)), Width(4), Style(theme.StyleAccentLabel))
	Grid(rv.ThresholdLabel, In(sliderFrame), Row(0), Column(2), Sticky("e"), Padx("0.2m"))
	onSlide := func() {
		v, ok := parseScaleValue(rv.ThresholdScale.Get())
		if !ok || v == rv.threshold {
			return
		}
		rv.threshold = v
		rv.ThresholdLabel.Configure(Txt(strconv.Itoa(v)))
		h.Threshold(v)
	}
	Bind(rv.ThresholdScale, "<B1-Motion>", Command(onSlide))
	Bind(rv.ThresholdScale, "<ButtonRelease-1>", Command(onSlide))

	// Row 2: action buttons
	btnFrame := Frame()
	Grid(btnFrame, Row(2), Column(0), Columnspan(3), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	binBtn := TButton(Txt("Binarize Selection"), Style(theme.StylePrimaryButton), Command(h.Binarize))
	Grid(binBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	saveBtn := TButton(Txt("Export Result"), Command(h.Save))
	Grid(saveBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	resetBtn := TButton(Txt("Reset Selection"), Style(theme.StyleDangerButton), Command(h.Reset))
	Grid(resetBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 3: status line
	rv.Status = NewStatusBar(nil, 3, 0)

	// Rows 4+: settings form
	settings := Frame()
	Grid(settings, Row(4), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, h.Settings)
	rv.Settings.Build(settings, 0)

	Bind(App, "<Control-o>", Command(h.Open))
	Bind(App, "<Control-s>", Command(h.Save))
	Bind(App, "<Control-b>", Command(h.Binarize))
	Bind(App, "<Escape>", Command(h.Reset))
}

func (rv *RootView) buildMenu(h Handlers) {
	menubar := Menu()
	fileMenu := menubar.Menu()
	fileMenu.AddCommand(Lbl("Open..."), Underline(0), Accelerator("Ctrl+O"), Command(h.Open))
	fileMenu.AddCommand(Lbl("Capture Screen"), Underline(0), Command(h.CaptureScreen))
	fileMenu.AddCommand(Lbl("Save As..."), Underline(0), Accelerator("Ctrl+S"), Command(h.Save))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Exit"), Underline(1), Command(h.Exit))
	menubar.AddCascade(Lbl("File"), Underline(0), Mnu(fileMenu))

	viewMenu := menubar.Menu()
	viewMenu.AddCommand(Lbl("Toggle Dark Mode"), Underline(0), Command(func() {
		dark := theme.ToggleDark()
		if rv.logger != nil {
			rv.logger.Debug("theme toggled", "dark", dark)
		}
	}))
	menubar.AddCascade(Lbl("View"), Underline(0), Mnu(viewMenu))
	App.Configure(Mnu(menubar))
}

// ShowSource proxies to the source pane.
func (rv *RootView) ShowSource(img image.Image) {
	if rv != nil && rv.Source != nil {
		rv.Source.Update(img)
	}
}

// ShowResult proxies to the result pane.
func (rv *RootView) ShowResult(img image.Image) {
	if rv != nil && rv.Result != nil {
		rv.Result.Update(img)
	}
}

// ClearResult restores the result placeholder.
func (rv *RootView) ClearResult() {
	if rv != nil && rv.Result != nil {
		rv.Result.Reset()
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// SetSelectionLabel updates the selection label.
func (rv *RootView) SetSelectionLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSelection(text)
	}
}

// SetThreshold moves the slider without notifying handlers.
func (rv *RootView) SetThreshold(value int) {
	if rv == nil || rv.ThresholdScale == nil {
		return
	}
	rv.threshold = value
	rv.ThresholdScale.Configure(Value(value))
	rv.ThresholdLabel.Configure(Txt(strconv.Itoa(value)))
}

func (h Handlers) withDefaults() Handlers {
	noop := func() {}
	noopXY := func(int, int) {}
	for _, f := range []*func(){&h.Open, &h.CaptureScreen, &h.Save, &h.Exit, &h.Binarize, &h.Reset, &h.Settings} {
		if *f == nil {
			*f = noop
		}
	}
	for _, f := range []*func(int, int){&h.Press, &h.Drag, &h.Release} {
		if *f == nil {
			*f = noopXY
		}
	}
	if h.Threshold == nil {
		h.Threshold = func(int) {}
	}
	return h
}

// eventPoint returns the pointer position relative to the event widget.
func eventPoint(e *Event) (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.X, e.Y
}

// parseScaleValue converts a ttk::scale value ("127.53...") to a rounded
// threshold.
func parseScaleValue(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return int(math.Round(f)), true
}

// WindowGeometry formats the Tk geometry for a window that fits both panes.
func WindowGeometry(cfg *config.Config) string {
	w := cfg.CanvasWidth + cfg.ResultWidth + 40
	h := cfg.CanvasHeight + 320
	return fmt.Sprintf("%dx%d+100+100", w, h)
}
