// Package assets reads the static image and text files the screens and maps
// are built from. Failures are returned as *AssetLoadError.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"os"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used when no text encoding is configured.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding is wrapped when a text encoding name is not recognized.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// AssetLoadError reports an asset that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Op   string // "open", "read", "decode"
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("assets: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// LoadImage opens and decodes a raster image (PNG, JPEG, GIF or BMP).
func LoadImage(path string) (image.Image, error) {
	return LoadImageFS(osFS{}, path)
}

// LoadImageFS decodes a raster image from fsys.
func LoadImageFS(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Op: "open", Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Op: "decode", Err: err}
	}
	return img, nil
}

// LoadText reads a text file in the named encoding and splits it into lines.
// Every "\n" starts a new line, so a trailing newline yields an empty last
// line. A "\r" before the newline is dropped.
func LoadText(path, enc string) ([]string, error) {
	return LoadTextFS(osFS{}, path, enc)
}

// LoadTextFS is LoadText reading from fsys.
func LoadTextFS(fsys fs.FS, name, enc string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Op: "read", Err: err}
	}

	text, err := Decode(data, enc)
	if err != nil {
		return nil, &AssetLoadError{Path: name, Op: "decode", Err: err}
	}
	return SplitLines(text), nil
}

// Decode converts raw bytes in the named encoding to a UTF-8 string.
// Names are WHATWG encoding labels such as "utf-8", "latin1" or "ibm866".
func Decode(data []byte, enc string) (string, error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return "", err
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", enc, err)
	}
	return string(out), nil
}

// SplitLines splits text on "\n", trimming a trailing "\r" from each line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
	}
	return e, nil
}

// osFS resolves names against the operating system, accepting absolute and
// relative paths alike, unlike os.DirFS.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}
