package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/roi-binarizer/config"
	"github.com/soocke/roi-binarizer/ui/presenter"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the settings form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type SettingsPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	ApplyChanges()                                       // parses widget text into underlying config and persists
}

type settingsPanel struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	onApply func()
	widgets map[string]*TextWidget // keyed by config field id
}

// NewSettingsPanel creates the view bound to cfg. onApply runs after a
// successful apply so dependents can pick up new pane sizes.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func()) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(parent *FrameWidget, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(12))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	for _, f := range settingsFields(c) {
		makeRow(f.id, f.label, f.value)
	}
	apply := Button(Txt("Apply Settings"), Command(func() { v.ApplyChanges() }))
	Grid(apply, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

type settingsField struct {
	id, label, value string
}

func settingsFields(c *config.Config) []settingsField {
	return []settingsField{
		{presenter.FieldCanvasWidth, "Canvas Width", strconv.Itoa(c.CanvasWidth)},
		{presenter.FieldCanvasHeight, "Canvas Height", strconv.Itoa(c.CanvasHeight)},
		{presenter.FieldResultWidth, "Result Width", strconv.Itoa(c.ResultWidth)},
		{presenter.FieldResultHeight, "Result Height", strconv.Itoa(c.ResultHeight)},
		{presenter.FieldLiveRethreshold, "Live Re-threshold (true/false)", fmt.Sprintf("%t", c.LiveRethreshold)},
		{presenter.FieldLogLevel, "Log Level", c.LogLevel},
	}
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.widgets))
	for id, w := range v.widgets {
		values[id] = strings.TrimSpace(v.text(w))
	}
	cfg := presenter.ApplySettings(*v.cfg, values)
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply()
	}
}
