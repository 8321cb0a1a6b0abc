package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/calluna-lt3/raytrace/pkg/core"
	"github.com/calluna-lt3/raytrace/pkg/encoders"
	"github.com/calluna-lt3/raytrace/pkg/renderer"
	"github.com/calluna-lt3/raytrace/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	width     int
	height    int
	workers   int
	format    string
	out       string
	print     bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("raytrace", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := &options{}
	fs.StringVar(&opts.sceneName, "scene", "default", "Built-in scene ('default', 'single', 'shadow') or path to a .json scene file")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel row workers (0 = CPU count, 1 = serial)")
	fs.StringVar(&opts.format, "format", "", "Output format: ppm, png, bmp or tiff (default from -out extension, else ppm)")
	fs.StringVar(&opts.out, "out", "", "Output file, '-' for stdout (default output/<scene>/render_<timestamp>.<ext>)")
	fs.BoolVar(&opts.print, "print", false, "Print a text dump of the framebuffer instead of an image")

	fs.Usage = func() {
		fmt.Fprintln(output, "Sphere Raytracer")
		fmt.Fprintln(output, "Usage: raytrace [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Available scenes:")
		for _, info := range scene.ListBuiltinScenes() {
			fmt.Fprintf(output, "  %-8s - %s\n", info.ID, info.Description)
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// createScene loads the named scene and applies dimension overrides
func createScene(name string, width, height int) (*scene.Scene, error) {
	s, err := scene.Create(name)
	if err != nil {
		return nil, err
	}

	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// resolveFormat picks the explicit format, else the output file's extension, else PPM
func resolveFormat(format, out string) (encoders.Format, error) {
	if format != "" {
		return encoders.ParseFormat(format)
	}
	if out != "" && out != "-" {
		if f, err := encoders.FormatFromFilename(out); err == nil {
			return f, nil
		}
	}
	return encoders.FormatPPM, nil
}

// createOutputPath returns output/<scene>/render_<timestamp><ext>
func createOutputPath(sceneName string, format encoders.Format, now time.Time) string {
	base := sceneName
	if strings.HasSuffix(base, ".json") {
		base = strings.TrimSuffix(filepath.Base(base), ".json")
	}
	filename := fmt.Sprintf("render_%s%s", now.Format("20060102_150405"), format.Extension())
	return filepath.Join("output", base, filename)
}

func run(ctx context.Context, args []string, stdout io.Writer, logger core.Logger) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	s, err := createScene(opts.sceneName, opts.width, opts.height)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	format, err := resolveFormat(opts.format, opts.out)
	if err != nil {
		return err
	}

	logger.Printf("Using %s scene (%dx%d)\n", s.Name, s.Width, s.Height)

	raytracer := renderer.NewRaytracer(s, s.Width, s.Height)
	raytracer.SetConfig(renderer.Config{NumWorkers: opts.workers})
	raytracer.SetLogger(logger)

	plane, _, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if opts.print {
		return plane.Print(stdout)
	}

	if opts.out == "-" {
		return encoders.Encode(stdout, plane, format)
	}

	filename := opts.out
	if filename == "" {
		filename = createOutputPath(s.Name, format, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := encoders.Encode(file, plane, format); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
