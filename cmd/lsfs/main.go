// Command lsfs lists the contents of a Neotron ROMFS image.
//
// With a second argument, the first entry matching that name is also
// extracted into the current directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	romfs "github.com/Neotron-Compute/neotron-romfs"
)

var cli struct {
	Image   string `arg:"" help:"ROMFS image to inspect." type:"existingfile"`
	Extract string `arg:"" optional:"" help:"Extract the named entry into the current directory."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lsfs"),
		kong.Description("List (and optionally extract from) a Neotron ROMFS image."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	logger := newLogger(cli.Verbose)

	data, err := os.ReadFile(cli.Image)
	if err != nil {
		return err
	}
	img, err := romfs.New(data)
	if err != nil {
		return fmt.Errorf("not a valid ROMFS image: %w", err)
	}
	logger.Debug("image mounted", "path", cli.Image, "bytes", len(data))

	extracted := false
	for entry, err := range img.Entries() {
		if err != nil {
			return fmt.Errorf("image is corrupt past this point: %w", err)
		}
		fmt.Printf("%s %10d %s\n", entry.Metadata.Ctime, entry.Metadata.FileSize, entry.Metadata.FileName)

		if cli.Extract != "" && !extracted && entry.Metadata.FileName == cli.Extract {
			if err := os.WriteFile(cli.Extract, entry.Contents, 0o644); err != nil {
				return err
			}
			logger.Info("extracted entry", "name", cli.Extract, "size", entry.Metadata.FileSize)
			extracted = true
		}
	}

	if cli.Extract != "" && !extracted {
		return fmt.Errorf("no entry named %q in image", cli.Extract)
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
