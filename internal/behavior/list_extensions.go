package behavior

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/fileutil"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// noExtension labels files whose name has no extension.
const noExtension = "(none)"

// ignoredDirs are dependency and cache folders that never hold exported
// media. Hidden directories are skipped by the scanner itself.
var ignoredDirs = []string{"node_modules", "__pycache__", "vendor"}

// ListExtensions counts the files under a folder by extension.
type ListExtensions struct {
	path     string
	maxDepth int
	env      Env
	renderer *display.Renderer
}

// NewListExtensions returns the behavior scanning the folder at path.
// maxDepth limits how deep the scan goes: 0 is unlimited, 1 is the folder
// itself only.
func NewListExtensions(path string, maxDepth int, env Env) *ListExtensions {
	env = env.withDefaults()
	return &ListExtensions{path: path, maxDepth: maxDepth, env: env, renderer: display.NewConsoleRenderer(env.Out)}
}

func (l *ListExtensions) Type() models.BehaviorType { return models.TypeExtensions }
func (l *ListExtensions) Name() string { return "list-extensions" }
func (l *ListExtensions) Input() string { return l.path }

// Run scans the folder recursively, skipping hidden and ignored directories,
// and prints the extensions most frequent first.
func (l *ListExtensions) Run() error {
	if err := requireDir(l.env.Fs, l.path); err != nil {
		return err
	}

	result, err := fileutil.ScanDirectory(l.env.Fs, l.path, fileutil.ScanOptions{
		Recursive:   true,
		ExcludeDirs: ignoredDirs,
		MaxDepth:    l.maxDepth,
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", l.path, err)
	}
	for _, scanErr := range result.Errors {
		l.env.Log.LogWarn(fmt.Sprintf("list-extensions: %v", scanErr))
	}

	tally := models.NewTally()
	for _, file := range result.Files {
		label := extensionLabel(file)
		l.env.Log.LogTrace(fmt.Sprintf("list-extensions: %s -> %s", file, label))
		tally.Add(label)
	}

	_, err = l.renderer.Render(display.Report{
		BaseName:    "extensions",
		LabelHeader: "Extension",
		Layout:      display.LabelFirst,
		Rows:        tally.Ranked(),
		Summary:     fmt.Sprintf("Found %d distinct extensions", len(tally)),
	})
	return err
}

// extensionLabel returns the lowercased extension of path without its dot.
func extensionLabel(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return noExtension
	}
	return strings.ToLower(ext)
}
