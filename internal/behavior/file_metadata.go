package behavior

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// FileMetadata prints the name, extension, detected format, size and
// modification time of a single file.
type FileMetadata struct {
	path string
	env  Env
}

// NewFileMetadata returns the behavior inspecting the file at path.
func NewFileMetadata(path string, env Env) *FileMetadata {
	return &FileMetadata{path: path, env: env.withDefaults()}
}

func (m *FileMetadata) Type() models.BehaviorType { return models.TypeFileMetadata }
func (m *FileMetadata) Name() string { return "file-metadata" }
func (m *FileMetadata) Input() string { return m.path }

// Run detects the format from the file's leading bytes rather than its name.
func (m *FileMetadata) Run() error {
	f, err := openRegularFile(m.env.Fs, m.path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", m.path, err)
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("detect format of %s: %w", m.path, err)
	}

	ext := strings.TrimPrefix(filepath.Ext(info.Name()), ".")
	if ext == "" {
		ext = noExtension
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "name\t%s\n", info.Name())
	fmt.Fprintf(&sb, "extension\t%s\n", strings.ToLower(ext))
	fmt.Fprintf(&sb, "format\t%s\n", mtype.String())
	fmt.Fprintf(&sb, "size\t%d\n", info.Size())
	fmt.Fprintf(&sb, "modified\t%s\n", info.ModTime().UTC().Format(time.RFC3339))

	if _, err := io.WriteString(m.env.Out, sb.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
