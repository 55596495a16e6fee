package desktop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/t3lang/t3lang-shell/internal/application/workspace"
	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/watcher"
	"github.com/t3lang/t3lang-shell/internal/pkg/filesystem"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

// ErrFileExists is returned when creating a file that is already there.
var ErrFileExists = errors.New("file already exists")

// Files is the file API bound into the UI. At most one workspace is watched
// at a time; its changes arrive as EventFileChanged.
type Files struct {
	emitter *Emitter
	logger  ports.Logger

	mu    sync.Mutex
	watch *watcher.Watcher
}

// NewFiles returns the file API. Dialogs and watch events go through emitter's
// window.
func NewFiles(emitter *Emitter, logger ports.Logger) *Files {
	return &Files{emitter: emitter, logger: logger}
}

// ReadTextFile returns the content of path.
func (f *Files) ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteTextFile writes content to path in place.
func (f *Files) WriteTextFile(path, content string) error {
	return os.WriteFile(path, []byte(content), filesystem.NewFilePermissions)
}

// WriteFileAtomic replaces path with content in a single rename.
func (f *Files) WriteFileAtomic(path, content string) error {
	return filesystem.WriteFileAtomic(path, []byte(content))
}

// CreateLanguageFile copies templatePath to newPath for a new language. It
// refuses to overwrite an existing file.
func (f *Files) CreateLanguageFile(templatePath, newPath, languageCode string) error {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, newPath)
	}
	if err := os.MkdirAll(filepath.Dir(newPath), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f.debug("creating language file", map[string]interface{}{"language": languageCode, "path": newPath})
	return filesystem.WriteFileAtomic(newPath, content)
}

// ReadDir lists the translation files below path.
func (f *Files) ReadDir(path string) ([]domain.FileEntry, error) {
	return workspace.List(path)
}

// ScanWorkspace groups the translation files below path.
func (f *Files) ScanWorkspace(path string) (*domain.WorkspaceScan, error) {
	return workspace.Scan(path)
}

// Exists reports whether path exists.
func (f *Files) Exists(path string) bool {
	return filesystem.Exists(path)
}

// Remove deletes a file or an empty directory.
func (f *Files) Remove(path string) error {
	return os.Remove(path)
}

// Stat describes path.
func (f *Files) Stat(path string) (*domain.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &domain.FileInfo{
		IsFile:      !info.IsDir(),
		IsDirectory: info.IsDir(),
		ModTimeMS:   info.ModTime().UnixMilli(),
	}, nil
}

// StartWatching watches path, replacing any earlier watch.
func (f *Files) StartWatching(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: %w", path, fs.ErrInvalid)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.stopLocked(); err != nil {
		f.warn("stop previous watch", err)
	}
	w, err := watcher.Start(path, f.forward, f.logger)
	if err != nil {
		return err
	}
	f.watch = w
	f.debug("watching workspace", map[string]interface{}{"root": path})
	return nil
}

// StopWatching ends the current watch, if any.
func (f *Files) StopWatching() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopLocked()
}

// Watching returns the watched folder, or "".
func (f *Files) Watching() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watch == nil {
		return ""
	}
	return f.watch.Root()
}

func (f *Files) stopLocked() error {
	if f.watch == nil {
		return nil
	}
	err := f.watch.Stop()
	f.watch = nil
	return err
}

func (f *Files) forward(event domain.FileWatchEvent) {
	if err := f.emitter.Emit(domain.EventFileChanged, event); err != nil {
		f.debug("event dropped", map[string]interface{}{"event": string(domain.EventFileChanged), "error": err.Error()})
	}
}

// ShowMessage shows a native message box. kind is "error", "warning" or
// anything else for an info box.
func (f *Files) ShowMessage(content, title, kind string) error {
	ctx, ok := f.emitter.Context()
	if !ok {
		return ErrSurfaceUnavailable
	}
	_, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:    dialogType(kind),
		Title:   title,
		Message: content,
	})
	return err
}

// ConfirmDialog asks a yes/no question and reports whether Yes was chosen.
func (f *Files) ConfirmDialog(content, title string) (bool, error) {
	ctx, ok := f.emitter.Context()
	if !ok {
		return false, ErrSurfaceUnavailable
	}
	answer, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:    runtime.QuestionDialog,
		Title:   title,
		Message: content,
		Buttons: []string{"Yes", "No"},
	})
	if err != nil {
		return false, err
	}
	return answer == "Yes", nil
}

// OpenFileDialog asks for a translation file. An empty string means the
// dialog was dismissed.
func (f *Files) OpenFileDialog() (string, error) {
	ctx, ok := f.emitter.Context()
	if !ok {
		return "", ErrSurfaceUnavailable
	}
	return runtime.OpenFileDialog(ctx, runtime.OpenDialogOptions{
		Title:   "Open XLIFF File",
		Filters: []runtime.FileFilter{{DisplayName: "XLIFF Files", Pattern: "*.xlf;*.xliff"}},
	})
}

// OpenFolderDialog asks for a workspace folder.
func (f *Files) OpenFolderDialog() (string, error) {
	ctx, ok := f.emitter.Context()
	if !ok {
		return "", ErrSurfaceUnavailable
	}
	return runtime.OpenDirectoryDialog(ctx, runtime.OpenDialogOptions{Title: "Open Folder"})
}

func dialogType(kind string) runtime.DialogType {
	switch kind {
	case "error":
		return runtime.ErrorDialog
	case "warning":
		return runtime.WarningDialog
	default:
		return runtime.InfoDialog
	}
}

func (f *Files) debug(msg string, fields map[string]interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, fields)
	}
}

func (f *Files) warn(msg string, err error) {
	if f.logger != nil {
		f.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}
