package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	envFile string
	scene   string
	width   int
	height  int
	depth   int
	out     string
	scale   float64
	orbit   float64
	pivot   float64
	compare string
	upload  bool
	help    bool

	// set records which flags were given explicitly
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.envFile, "env", ".env", "Optional .env file with RT_* and S3_* settings")
	fs.StringVar(&opts.scene, "scene", config.DefaultScene, "Scene name: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.width, "width", config.DefaultWidth, "Image width in pixels")
	fs.IntVar(&opts.height, "height", config.DefaultHeight, "Image height in pixels")
	fs.IntVar(&opts.depth, "depth", config.DefaultMaxDepth, "Maximum reflection/refraction depth")
	fs.StringVar(&opts.out, "out", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	fs.Float64Var(&opts.scale, "scale", 1, "Scale factor applied to the saved image")
	fs.Float64Var(&opts.orbit, "orbit", 0, "Rotate the camera around its target by this many degrees")
	fs.Float64Var(&opts.pivot, "pivot", 1, "Distance ahead of the camera to orbit around")
	fs.StringVar(&opts.compare, "compare", "", "Reference image to diff the render against")
	fs.BoolVar(&opts.upload, "upload", false, "Upload the render to the configured S3 bucket")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.help {
		printHelp(stderr, fs)
	}
	return opts, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.png")
}

// resolveConfig layers explicit flags over the environment and .env file
func resolveConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return config.Config{}, err
	}

	if opts.set["scene"] {
		cfg.Scene = opts.scene
	}
	if opts.set["width"] {
		cfg.Width = opts.width
	}
	if opts.set["height"] {
		cfg.Height = opts.height
	}
	if opts.set["depth"] {
		cfg.MaxDepth = opts.depth
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// createScene builds the named scene at the configured resolution,
// optionally orbiting the camera
func createScene(name string, width, height int, orbit, pivot float64) (*scene.Scene, error) {
	s, err := scene.Create(name)
	if err != nil {
		return nil, err
	}

	camera := s.GetCamera()
	camera.SetResolution(width, height)
	if orbit != 0 {
		camera.Orbit(orbit, pivot)
	}
	return s, nil
}

// createOutputPath returns output/<scene>/render_<timestamp>.png under dir
func createOutputPath(dir, sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func run(opts options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Whitted Raytracer (scene %s, %dx%d)...\n", cfg.Scene, cfg.Width, cfg.Height)

	selectedScene, err := createScene(cfg.Scene, cfg.Width, cfg.Height, opts.orbit, opts.pivot)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderer.Config{MaxDepth: cfg.MaxDepth})
	img, stats := raytracer.RenderPass()

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Primary hits: %.1f%%, shadow rays occluded: %d/%d\n",
		stats.HitRatio()*100, stats.OccludedShadowRays, stats.ShadowRays)

	if opts.compare != "" {
		diff, err := output.CompareFile(opts.compare, img)
		if err != nil {
			return err
		}
		if diff != 0 {
			return fmt.Errorf("render differs from %s in %d pixels", opts.compare, diff)
		}
		fmt.Printf("Render matches %s\n", opts.compare)
	}

	scaled, err := output.Scale(img, opts.scale)
	if err != nil {
		return err
	}

	filename := opts.out
	if filename == "" {
		filename = createOutputPath(cfg.OutputDir, cfg.Scene, time.Now())
	}
	if err := output.Save(scaled, filename); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)

	if opts.upload {
		uploader, err := output.NewS3Uploader(cfg.S3)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(filepath.Join("renders", cfg.Scene, filepath.Base(filename)))
		if err := uploader.UploadImage(context.Background(), key, output.FromImage(scaled)); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if opts.help {
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
