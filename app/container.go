package app

import (
	"log/slog"

	"github.com/soocke/roi-binarizer/config"
	"github.com/soocke/roi-binarizer/domain/capture"
	"github.com/soocke/roi-binarizer/domain/selection"
	"github.com/soocke/roi-binarizer/ui/model"
	"github.com/soocke/roi-binarizer/ui/presenter"
	"github.com/soocke/roi-binarizer/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	LogLevel   *slog.LevelVar
	Session    *model.SessionModel
	Selection  *selection.Machine
	CaptureSvc capture.Service
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	SessionPresenter   *presenter.SessionPresenter
	SelectionPresenter *presenter.SelectionPresenter
}

// BuildContainer constructs all components. No Tk widgets are created here;
// the root view is built by the app once the window exists.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, level *slog.LevelVar) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if level == nil {
		level = new(slog.LevelVar)
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger, LogLevel: level}
	c.Session = model.NewSessionModel()
	c.Selection = selection.NewMachine(logger)
	c.CaptureSvc = capture.NewService(logger)
	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	// Presenters
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Selection, c.UI, c.UI, c.CaptureSvc, cfg, logger)
	c.SelectionPresenter = presenter.NewSelectionPresenter(c.Selection, c.UI)
	c.Selection.AddListener(c.SelectionPresenter.OnState)
	return c
}
