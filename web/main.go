package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Optional .env file with RT_* and S3_* settings")
	port := flag.Int("port", 0, "Port to serve on (overrides RT_PORT)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	uploader, err := output.NewS3Uploader(cfg.S3)
	switch {
	case errors.Is(err, output.ErrUploadsDisabled):
		log.Printf("S3 uploads disabled (S3_BUCKET not set)")
	case err != nil:
		log.Printf("Error configuring S3: %v", err)
		os.Exit(1)
	default:
		log.Printf("Uploading renders to bucket %s", uploader.Bucket())
	}

	// Create and start web server
	webServer := server.NewServer(cfg, uploader)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render?scene=%s to render", cfg.Port, cfg.Scene)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
