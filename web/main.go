package main

import (
	"flag"
	"log"
	"os"

	"github.com/calluna-lt3/raytrace/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	sceneDir := flag.String("scenes", "scenes", "Directory of JSON scene files")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, *sceneDir)

	log.Printf("Sphere Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/render?scene=default to render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
