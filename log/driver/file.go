package driver

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/format"
)

// FileConfig configures a file driver.
type FileConfig struct {
	// Path of the log file. Required; there is no default path.
	Path string

	// Formatter renders entries. Defaults to format.NewText().
	Formatter format.Formatter
}

// File appends formatted entries to a single log file. The file is
// opened in append mode and held open for the driver's lifetime, so
// repeated runs extend the existing log rather than truncate it.
type File struct {
	fmtDriver
	file *os.File
}

// NewFile opens the log file, creating the parent directory when it
// does not exist yet.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, errors.New("file driver: empty path")
	}
	f := cfg.Formatter
	if f == nil {
		f = format.NewText()
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	return &File{fmtDriver: fmtDriver{formatter: f}, file: file}, nil
}

// Submit formats the entry and appends it to the file. With a nil
// formatter or after Close the entry is dropped.
func (d *File) Submit(e *log.Entry) error {
	if d.formatter == nil || d.file == nil {
		return nil
	}
	_, err := io.WriteString(d.file, d.formatter.Format(e))
	return err
}

// Close closes the underlying file. Submissions after Close are
// silently dropped.
func (d *File) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
