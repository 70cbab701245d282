package main

import (
	"fmt"
	"os"

	"github.com/scholnicks/lyricsipsum/internal/cli"
	"github.com/scholnicks/lyricsipsum/internal/config"
	"github.com/scholnicks/lyricsipsum/internal/tui"
	"github.com/spf13/pflag"
)

func main() {
	number := pflag.IntP("number", "n", cli.DefaultNumber, "maximum number of songs to fetch per artist")
	verbose := pflag.BoolP("verbose", "v", false, "show verbose progress")
	pflag.Parse()

	paths, err := config.DefaultPaths()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Paths:   paths,
		Number:  *number,
		Verbose: *verbose,
	}
	if err := tui.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
