// Command mkfs builds a Neotron ROMFS image from a set of host files.
//
// Each argument becomes one entry, in argument order, named after the file's
// base name and stamped with its modification time. The image is written to
// stdout by default, or atomically to --output.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	romfs "github.com/Neotron-Compute/neotron-romfs"
)

var cli struct {
	Output  string   `short:"o" help:"Write the image to this path instead of stdout." type:"path"`
	Verbose bool     `short:"v" help:"Enable debug logging."`
	Files   []string `arg:"" name:"file" help:"Files to include, in image order." type:"existingfile"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("mkfs"),
		kong.Description("Build a Neotron ROMFS image from host files."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	logger := newLogger(cli.Verbose)

	entries, err := loadEntries(logger, cli.Files)
	if err != nil {
		return err
	}
	logger.Debug("image sized", "entries", len(entries), "bytes", romfs.SizeRequired(entries))

	if cli.Output == "" {
		_, err := romfs.ConstructInto(os.Stdout, entries)
		return err
	}
	if err := writeImageFile(cli.Output, entries); err != nil {
		return err
	}
	logger.Info("image written", "path", cli.Output, "entries", len(entries))
	return nil
}

// loadEntries reads every file concurrently while keeping argument order.
func loadEntries(logger *slog.Logger, paths []string) ([]romfs.Entry, error) {
	entries := make([]romfs.Entry, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			contents, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			logger.Debug("loaded file", "path", path, "size", len(contents))
			entries[i] = romfs.NewEntry(
				filepath.Base(path),
				romfs.TimeFromStd(info.ModTime()),
				contents,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// writeImageFile writes the image to path via a temp file and rename, so a
// failed build never leaves a partial image behind.
func writeImageFile(path string, entries []romfs.Entry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".romfs-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := romfs.ConstructInto(tmp, entries); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
