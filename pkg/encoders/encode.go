package encoders

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for unsupported output formats
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format, default first
var Formats = []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF}

// Framebuffer is the rendered image handed to the encoders
type Framebuffer interface {
	Width() int
	Height() int
	Quantize() []uint8   // RGB triples, row-major, top row first
	ToRGBA() *image.RGBA // Same pixels as an opaque image
}

// ParseFormat resolves a case-insensitive format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm", "pnm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromFilename picks the format matching a file extension
func FormatFromFilename(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

// Extension returns the conventional file extension, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for HTTP responses
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/x-portable-pixmap"
	}
}

// Encode writes the framebuffer in the requested format
func Encode(w io.Writer, fb Framebuffer, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		err = WritePPM(w, fb.Width(), fb.Height(), fb.Quantize())
	case FormatPNG:
		err = png.Encode(w, fb.ToRGBA())
	case FormatBMP:
		err = bmp.Encode(w, fb.ToRGBA())
	case FormatTIFF:
		err = tiff.Encode(w, fb.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
