package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultImageName is the file the viewer expects in its working directory.
const DefaultImageName = "black-cat-typing.gif"

var (
	// ErrNoWorkingDir is returned when the working directory cannot be resolved.
	ErrNoWorkingDir = errors.New("cannot resolve working directory")
	// ErrImageNotFound is returned when the expected image is not a regular file.
	ErrImageNotFound = errors.New("image file not found")
)

// NotFoundError reports the resolved path of a missing image.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("image file not found at %q", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return ErrImageNotFound
}

// Locator resolves the startup image relative to the working directory.
type Locator struct {
	Name  string
	Getwd func() (string, error)
	Stat  func(name string) (fs.FileInfo, error)
}

// NewLocator constructs a Locator for name backed by the os package.
func NewLocator(name string) *Locator {
	return &Locator{
		Name:  name,
		Getwd: os.Getwd,
		Stat:  os.Stat,
	}
}

// Locate returns the absolute path of the image. A missing file yields a
// *NotFoundError carrying the path that was checked.
func (l *Locator) Locate() (string, error) {
	cwd, err := l.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoWorkingDir, err)
	}

	path := filepath.Join(cwd, l.Name)
	info, err := l.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", &NotFoundError{Path: path}
	}
	return path, nil
}
