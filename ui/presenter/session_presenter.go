package presenter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/soocke/roi-binarizer/config"
	"github.com/soocke/roi-binarizer/domain/binarize"
	"github.com/soocke/roi-binarizer/domain/imageio"
	"github.com/soocke/roi-binarizer/domain/selection"
	"github.com/soocke/roi-binarizer/ui/images"
	"github.com/soocke/roi-binarizer/ui/model"
)

// Errors reported to the user as informational prompts.
var (
	ErrNoImage     = errors.New("no image loaded")
	ErrNoSelection = errors.New("no region selected")
	ErrNoResult    = errors.New("nothing binarized yet")
	ErrNoScreen    = errors.New("screen capture unavailable")
)

// Status line texts.
const (
	StatusStart    = "Open an image to start"
	StatusSelect   = "Drag a rectangle over the region to binarize"
	statusLoaded   = "Image loaded: %s"
	statusCaptured = "Screen captured: %dx%d"
	statusDone     = "Binarized, threshold: %d"
	statusSaved    = "Saved to: %s"
)

// SelectionColor outlines the selection over the source preview.
var SelectionColor = color.RGBA{R: 255, A: 255}

// View is the UI surface updated by the session presenter.
type View interface {
	ShowSource(img image.Image)
	ShowResult(img image.Image)
	ClearResult()
	SetStatus(text string)
	SetThreshold(value int)
	ShowInfo(title, msg string)
	ShowError(title, msg string)
}

// Dialogs asks the user for file paths. ok is false when the user cancels.
type Dialogs interface {
	OpenPath(dir string) (path string, ok bool)
	SavePath(dir string) (path string, ok bool)
}

// ScreenSource supplies a screenshot as an alternative source image.
type ScreenSource interface {
	Grab() (*image.RGBA, error)
}

// SessionPresenter owns the editing session and turns user actions into
// model updates and view refreshes. All methods run on the UI thread.
type SessionPresenter struct {
	model   *model.SessionModel
	sel     selection.Contract
	view    View
	dialogs Dialogs
	screen  ScreenSource
	cfg     *config.Config
	logger  *slog.Logger
}

// NewSessionPresenter wires a presenter. cfg may be nil (defaults are used);
// screen may be nil when screen capture is not available.
func NewSessionPresenter(m *model.SessionModel, sel selection.Contract, view View, dialogs Dialogs, screen ScreenSource, cfg *config.Config, logger *slog.Logger) *SessionPresenter {
	if m == nil {
		m = model.NewSessionModel()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m.SetThreshold(binarize.ClampThreshold(cfg.Threshold))
	return &SessionPresenter{model: m, sel: sel, view: view, dialogs: dialogs, screen: screen, cfg: cfg, logger: logger}
}

// Init pushes the initial state to the view.
func (p *SessionPresenter) Init() {
	if p == nil || p.view == nil {
		return
	}
	p.view.SetThreshold(int(p.model.Threshold()))
	p.view.ClearResult()
	p.view.SetStatus(StatusStart)
}

// Model exposes the session state (read-only use).
func (p *SessionPresenter) Model() *model.SessionModel { return p.model }

// Open asks for a file and loads it.
func (p *SessionPresenter) Open() error {
	if p.dialogs == nil {
		return nil
	}
	path, ok := p.dialogs.OpenPath(p.cfg.LastDir)
	if !ok || path == "" {
		return nil
	}
	return p.OpenPath(path)
}

// OpenPath decodes path and makes it the session source. On failure the
// session is left unchanged.
func (p *SessionPresenter) OpenPath(path string) error {
	img, err := imageio.Open(path)
	if err != nil {
		p.logger.Error("open image", "path", path, "error", err)
		p.view.ShowError("Error", fmt.Sprintf("Cannot open image: %v", err))
		return err
	}
	p.load(img, path)
	p.cfg.LastDir = filepath.Dir(path)
	b := img.Bounds()
	p.logger.Info("image loaded", "path", path, "width", b.Dx(), "height", b.Dy(), "scale", p.model.Scale())
	p.view.SetStatus(fmt.Sprintf(statusLoaded, path))
	return nil
}

// CaptureScreen grabs the screen and makes it the session source.
func (p *SessionPresenter) CaptureScreen() error {
	if p.screen == nil {
		p.view.ShowError("Error", ErrNoScreen.Error())
		return ErrNoScreen
	}
	img, err := p.screen.Grab()
	if err != nil {
		p.logger.Error("capture screen", "error", err)
		p.view.ShowError("Error", fmt.Sprintf("Cannot capture screen: %v", err))
		return err
	}
	p.load(img, "")
	b := img.Bounds()
	p.logger.Info("screen captured", "width", b.Dx(), "height", b.Dy())
	p.view.SetStatus(fmt.Sprintf(statusCaptured, b.Dx(), b.Dy()))
	return nil
}

func (p *SessionPresenter) load(img image.Image, path string) {
	display, scale := images.ScaleToFit(img, p.cfg.CanvasWidth, p.cfg.CanvasHeight, images.Smooth)
	p.model.SetSource(img, path, display, scale)
	if p.sel != nil {
		p.sel.Reset()
	}
	p.view.ClearResult()
	p.refreshSource()
}

// Refit re-renders the loaded source for the current canvas size. The
// selection and result are dropped since display coordinates change.
func (p *SessionPresenter) Refit() {
	if !p.model.HasSource() {
		return
	}
	p.load(p.model.Source(), p.model.Path())
	p.logger.Debug("source refit", "canvas_w", p.cfg.CanvasWidth, "canvas_h", p.cfg.CanvasHeight, "scale", p.model.Scale())
}

// MousePress starts a selection at display coordinates (x, y).
func (p *SessionPresenter) MousePress(x, y int) {
	if !p.model.HasSource() || p.sel == nil {
		return
	}
	p.sel.Press(x, y)
	p.refreshSource()
}

// MouseDrag moves the live selection corner.
func (p *SessionPresenter) MouseDrag(x, y int) {
	if !p.model.HasSource() || p.sel == nil || p.sel.Current() != selection.StateDragging {
		return
	}
	p.sel.Drag(x, y)
	p.refreshSource()
}

// MouseRelease completes the selection.
func (p *SessionPresenter) MouseRelease(x, y int) {
	if !p.model.HasSource() || p.sel == nil || p.sel.Current() != selection.StateDragging {
		return
	}
	p.sel.Release(x, y)
	p.refreshSource()
}

// ResetSelection clears the selection and the current result.
func (p *SessionPresenter) ResetSelection() {
	if p.sel != nil {
		p.sel.Reset()
	}
	p.model.Result.Clear()
	p.view.ClearResult()
	p.refreshSource()
	p.view.SetStatus(StatusSelect)
}

// SetThreshold records a new session threshold (slider move). With live
// re-thresholding enabled the current result is recomputed from its
// grayscale crop.
func (p *SessionPresenter) SetThreshold(value int) {
	t := binarize.ClampThreshold(value)
	if !p.model.SetThreshold(t) {
		return
	}
	p.cfg.Threshold = int(t)
	if !p.cfg.LiveRethreshold || !p.model.Result.Has() {
		return
	}
	gray := p.model.Result.Gray()
	bin := binarize.Apply(gray, t)
	p.model.Result.Set(bin, gray, p.model.Result.ROI(), t)
	p.showResult(bin)
	p.view.SetStatus(fmt.Sprintf(statusDone, t))
}

// Binarize maps the current selection into source space and thresholds it.
// Selection problems are reported as informational prompts and leave the
// session untouched.
func (p *SessionPresenter) Binarize() error {
	if !p.model.HasSource() || p.sel == nil {
		p.view.ShowInfo("Notice", "Open an image and select a region first")
		return ErrNoImage
	}
	rect, ok := p.sel.Rect()
	if !ok || p.sel.Current() != selection.StateSelected {
		p.view.ShowInfo("Notice", "Open an image and select a region first")
		return ErrNoSelection
	}
	w, h := p.model.SourceSize()
	src, err := binarize.MapSelection(rect, p.model.Scale(), w, h)
	if err != nil {
		p.logger.Info("selection rejected", "display", rect.String(), "scale", p.model.Scale())
		p.view.ShowInfo("Notice", "The selected region is invalid, please select a larger region")
		return err
	}
	t := p.model.Threshold()
	bin, gray, err := binarize.Binarize(p.model.Source(), src, t)
	if err != nil {
		p.view.ShowInfo("Notice", "The selected region is invalid, please select a larger region")
		return err
	}
	p.model.Result.Set(bin, gray, src, t)
	p.showResult(bin)
	p.logger.Info("binarized", "rect", src.String(), "threshold", int(t))
	p.view.SetStatus(fmt.Sprintf(statusDone, t))
	return nil
}

// Save asks for a destination and exports the current result.
func (p *SessionPresenter) Save() error {
	if !p.model.Result.Has() {
		p.view.ShowInfo("Notice", "Binarize a region first")
		return ErrNoResult
	}
	if p.dialogs == nil {
		return nil
	}
	path, ok := p.dialogs.SavePath(p.cfg.LastDir)
	if !ok || path == "" {
		return nil
	}
	return p.SavePath(path)
}

// SavePath exports the current result to path.
func (p *SessionPresenter) SavePath(path string) error {
	if !p.model.Result.Has() {
		p.view.ShowInfo("Notice", "Binarize a region first")
		return ErrNoResult
	}
	written, err := imageio.Save(p.model.Result.Binary(), path)
	if err != nil {
		p.logger.Error("save image", "path", path, "error", err)
		p.view.ShowError("Error", fmt.Sprintf("Cannot save image: %v", err))
		return err
	}
	p.cfg.LastDir = filepath.Dir(written)
	p.logger.Info("result saved", "path", written)
	p.view.ShowInfo("Saved", fmt.Sprintf("Image saved to: %s", written))
	p.view.SetStatus(fmt.Sprintf(statusSaved, written))
	return nil
}

func (p *SessionPresenter) showResult(bin *image.Gray) {
	preview, _ := images.ScaleToFit(bin, p.cfg.ResultWidth, p.cfg.ResultHeight, images.Nearest)
	if preview == nil {
		p.view.ClearResult()
		return
	}
	p.view.ShowResult(preview)
}

func (p *SessionPresenter) refreshSource() {
	display := p.model.Display()
	if display == nil {
		return
	}
	if p.sel != nil {
		if rect, ok := p.sel.Rect(); ok {
			p.view.ShowSource(images.DrawSelection(display, rect, SelectionColor, 2))
			return
		}
	}
	p.view.ShowSource(display)
}
