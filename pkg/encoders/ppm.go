package encoders

import (
	"bufio"
	"fmt"
	"io"
)

// MaxChannelValue is the largest channel value written to PPM output
const MaxChannelValue = 255

// WritePPM writes a binary (P6) PPM image: a text header followed by
// width*height RGB byte triples in row-major order, top row first.
func WritePPM(w io.Writer, width, height int, rgb []uint8) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ppm: invalid dimensions %dx%d", width, height)
	}
	if len(rgb) != width*height*3 {
		return fmt.Errorf("ppm: expected %d bytes of pixel data, got %d", width*height*3, len(rgb))
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", width, height, MaxChannelValue); err != nil {
		return fmt.Errorf("ppm: failed to write header: %w", err)
	}
	if _, err := bw.Write(rgb); err != nil {
		return fmt.Errorf("ppm: failed to write pixels: %w", err)
	}
	return bw.Flush()
}
