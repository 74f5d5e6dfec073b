package view

import (
	"github.com/soocke/roi-binarizer/domain/imageio"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Native Tk file and message dialogs.

func tkFiletypes(types []imageio.FileType) []FileType {
	out := make([]FileType, 0, len(types))
	for _, t := range types {
		out = append(out, FileType{TypeName: t.Name, Extensions: t.Extensions})
	}
	return out
}

// OpenPath shows the open dialog starting in dir.
func (rv *RootView) OpenPath(dir string) (string, bool) {
	opts := []Opt{Title("Open image"), Filetypes(tkFiletypes(imageio.OpenFiletypes))}
	if dir != "" {
		opts = append(opts, Initialdir(dir))
	}
	files := GetOpenFile(opts...)
	if len(files) == 0 || files[0] == "" {
		return "", false
	}
	return files[0], true
}

// SavePath shows the save dialog starting in dir.
func (rv *RootView) SavePath(dir string) (string, bool) {
	opts := []Opt{
		Title("Save binarized image"),
		Filetypes(tkFiletypes(imageio.SaveFiletypes)),
		Defaultextension(imageio.DefaultExtension),
	}
	if dir != "" {
		opts = append(opts, Initialdir(dir))
	}
	path := GetSaveFile(opts...)
	if path == "" {
		return "", false
	}
	return path, true
}

// ShowInfo pops an informational message box.
func (rv *RootView) ShowInfo(title, msg string) {
	MessageBox(Icon("info"), Title(title), Msg(msg), Parent(App))
}

// ShowError pops an error message box.
func (rv *RootView) ShowError(title, msg string) {
	if rv != nil && rv.logger != nil {
		rv.logger.Debug("error dialog", "title", title, "msg", msg)
	}
	MessageBox(Icon("error"), Title(title), Msg(msg), Parent(App))
}
