package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"coward3d/internal/config"
	"coward3d/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	g := game.New(*configPath)
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
