package main

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

func main() {
	projectDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to determine working directory: %v", err)
	}

	appPath := filepath.Join(projectDir, "cmd", "althistory")

	// The game reads choices from the terminal, so stdin is passed through.
	cmd := exec.Command("go", "run", ".")
	cmd.Dir = appPath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Fatalf("failed to run the application: %v", err)
	}
}
