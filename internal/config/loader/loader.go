// Package loader reads configuration files and environment variables.
//
// Files are decoded straight into a caller-supplied struct, so fields the
// file does not mention keep whatever value they had. The format is chosen
// by extension: .toml, .yaml or .yml.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems such as
// testing/fstest.MapFS.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Format is a configuration file format.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// FileLoader decodes one configuration file.
type FileLoader struct {
	fs   FileSystem
	path string
}

// NewFileLoader creates a loader for path on the OS file system.
func NewFileLoader(path string) *FileLoader {
	return NewFileLoaderWithFS(DefaultFS(), path)
}

// NewFileLoaderWithFS creates a loader with a custom file system.
func NewFileLoaderWithFS(fs FileSystem, path string) *FileLoader {
	return &FileLoader{fs: fs, path: path}
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	return l.path
}

// Load decodes the file into v, which must be a pointer.
// Returns false, nil if the file doesn't exist (not an error).
func (l *FileLoader) Load(v any) (bool, error) {
	format, err := FormatFor(l.path)
	if err != nil {
		return false, err
	}

	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", l.path, err)
	}

	switch format {
	case FormatYAML:
		err = decodeYAML(l.path, data, v)
	default:
		err = decodeTOML(l.path, data, v)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
