package util

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

// SetupInterruptHandler removes unfinished work folders from outputDir and
// exits when the process is interrupted.
func SetupInterruptHandler(outputDir string, w io.Writer) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Fprintln(w, "\nInterrupt received. Cleaning up...")

		CleanupUnfinishedTempFolders(outputDir, w)
		RemoveIfEmpty(outputDir, w)
		fmt.Fprintln(w, "Exiting due to interrupt.")

		os.Exit(1)
	}()
}

func CleanupUnfinishedTempFolders(outputDir string, w io.Writer) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return
	}

	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasSuffix(name, "_tmp") {
			continue
		}

		full := filepath.Join(outputDir, name)
		if err := os.RemoveAll(full); err != nil {
			fmt.Fprintf(w, "Error cleaning up %s: %v\n", full, err)
		} else {
			fmt.Fprintf(w, "Removed %s\n", full)
		}
	}
}

func RemoveIfEmpty(dir string, w io.Writer) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return
	}

	if err := os.Remove(dir); err == nil {
		fmt.Fprintf(w, "Removed empty output folder: %s\n", dir)
	}
}

func CleanupFolder(folder string) {
	_ = os.RemoveAll(folder)
}
