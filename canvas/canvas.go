// Package canvas selects a drawing backend by output format.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/midbel/pitchcharts"
	"github.com/midbel/pitchcharts/canvas/raster"
	"github.com/midbel/pitchcharts/canvas/vector"
)

const (
	PNG = "png"
	SVG = "svg"
)

var ErrFormat = errors.New("unsupported format")

// Target is a surface that can be written out once drawn.
type Target interface {
	charts.Surface
	Encode(io.Writer) error
	ContentType() string
}

func New(format string) (Target, error) {
	switch strings.ToLower(format) {
	case PNG, "":
		return raster.NewSurface(), nil
	case SVG:
		return vector.NewSurface(), nil
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrFormat)
	}
}

func Formats() []string {
	return []string{PNG, SVG}
}

// Bytes encodes the current content of t.
func Bytes(t Target) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
