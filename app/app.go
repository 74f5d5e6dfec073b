package app

import (
	"context"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/roi-binarizer/config"
	"github.com/soocke/roi-binarizer/debug"
	"github.com/soocke/roi-binarizer/ui/theme"
	"github.com/soocke/roi-binarizer/ui/view"
)

const (
	goroutineLogInterval = 5 * time.Second
	memLogInterval       = 10 * time.Second
)

type app struct {
	title  string
	c      *AppContainer
	cancel context.CancelFunc
}

func NewApp(title string, c *AppContainer) *app {
	return &app{title: title, c: c}
}

// Run builds the container and blocks in the Tk event loop until the
// window closes.
func Run(cfg *config.Config, cfgPath string, logger *slog.Logger, level *slog.LevelVar) error {
	NewApp("ROI Binarizer", BuildContainer(cfg, cfgPath, logger, level)).Start()
	return nil
}

func (a *app) Start() {
	c := a.c
	theme.InitStyles()
	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, view.WindowGeometry(c.Config))

	p := c.SessionPresenter
	c.RootView.Build(view.Handlers{
		Open:          a.action("open", p.Open),
		CaptureScreen: a.action("capture", p.CaptureScreen),
		Save:          a.action("save", p.Save),
		Binarize:      a.action("binarize", p.Binarize),
		Reset:         p.ResetSelection,
		Exit:          a.exitHandler,
		Threshold:     p.SetThreshold,
		Press:         p.MousePress,
		Drag: func(x, y int) {
			p.MouseDrag(x, y)
			c.SelectionPresenter.Refresh()
		},
		Release:  p.MouseRelease,
		Settings: a.settingsApplied,
	})
	p.Init()
	c.SelectionPresenter.Refresh()

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if c.Config.Debug {
		debug.StartGoroutineLogger(ctx, goroutineLogInterval, c.Logger)
		debug.StartMemLogger(ctx, memLogInterval, c.Logger)
	}
	c.Logger.Info("ui started", "config", c.ConfigPath)
	App.Wait()
}

// action adapts a presenter action to a Tk command. Failures have already
// been shown to the user and are only traced here.
func (a *app) action(name string, f func() error) func() {
	return func() {
		if err := f(); err != nil {
			a.c.Logger.Debug("action failed", "action", name, "error", err)
		}
	}
}

func (a *app) settingsApplied() {
	c := a.c
	c.LogLevel.Set(config.ParseLevel(c.Config.LogLevel))
	WmGeometry(App, view.WindowGeometry(c.Config))
	c.SessionPresenter.Refit()
	c.SelectionPresenter.Refresh()
}

func (a *app) exitHandler() {
	if a.cancel != nil {
		a.cancel()
	}
	if st := a.c.CaptureSvc.Stats(); st.Captures+st.Failures > 0 {
		a.c.Logger.Info("capture stats", "captures", st.Captures, "failures", st.Failures, "avg", st.AvgCapture.String(), "last_error", st.LastError)
	}
	if a.c.ConfigPath != "" {
		if err := a.c.Config.Save(a.c.ConfigPath); err != nil {
			a.c.Logger.Error("config save failed", "path", a.c.ConfigPath, "error", err)
		}
	}
	Destroy(App)
}
