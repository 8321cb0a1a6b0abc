package encoders

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// mockFramebuffer is a 2x2 image: red, green / blue, white
type mockFramebuffer struct{}

func (mockFramebuffer) Width() int  { return 2 }
func (mockFramebuffer) Height() int { return 2 }

func (mockFramebuffer) Quantize() []uint8 {
	return []uint8{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
}

func (fb mockFramebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	px := fb.Quantize()
	for i := 0; i < 4; i++ {
		img.SetRGBA(i%2, i/2, color.RGBA{R: px[i*3], G: px[i*3+1], B: px[i*3+2], A: 255})
	}
	return img
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	fb := mockFramebuffer{}
	if err := WritePPM(&buf, 2, 2, fb.Quantize()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	header := "P6\n2 2\n255\n"
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte(header)) {
		t.Fatalf("Expected header %q, got %q", header, out[:min(len(out), len(header))])
	}
	if !bytes.Equal(out[len(header):], fb.Quantize()) {
		t.Errorf("Expected raw pixel bytes after header, got %v", out[len(header):])
	}
}

func TestWritePPM_Errors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rgb           []uint8
	}{
		{"zero width", 0, 1, nil},
		{"short data", 2, 2, make([]uint8, 11)},
		{"long data", 1, 1, make([]uint8, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WritePPM(&bytes.Buffer{}, tt.width, tt.height, tt.rgb); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"ppm", FormatPPM},
		{"PPM", FormatPPM},
		{".pnm", FormatPPM},
		{"png", FormatPNG},
		{"bmp", FormatBMP},
		{"tif", FormatTIFF},
		{".TIFF", FormatTIFF},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}

	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatFromFilename(t *testing.T) {
	if f, err := FormatFromFilename("out/render.png"); err != nil || f != FormatPNG {
		t.Errorf("Expected png, got %s, %v", f, err)
	}
	if _, err := FormatFromFilename("render"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat for missing extension, got %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		FormatTIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	fb := mockFramebuffer{}
	want := fb.ToRGBA()

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, fb, format); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}

			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					wr, wg, wb, _ := want.At(x, y).RGBA()
					if r != wr || g != wg || b != wb {
						t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, want.At(x, y), img.At(x, y))
					}
				}
			}
		})
	}
}

func TestEncode_PPM(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, mockFramebuffer{}, FormatPPM); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("P6\n")) {
		t.Errorf("Expected P6 magic, got %q", buf.Bytes()[:3])
	}
	if buf.Len() != len("P6\n2 2\n255\n")+12 {
		t.Errorf("Unexpected output length %d", buf.Len())
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, mockFramebuffer{}, Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormat_Metadata(t *testing.T) {
	for _, f := range Formats {
		if f.Extension() != "."+string(f) {
			t.Errorf("Unexpected extension %q for %s", f.Extension(), f)
		}
		if f.ContentType() == "" {
			t.Errorf("Missing content type for %s", f)
		}
	}
	if FormatPPM.ContentType() != "image/x-portable-pixmap" {
		t.Errorf("Unexpected PPM content type %q", FormatPPM.ContentType())
	}
}
