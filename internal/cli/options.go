package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultNumber is the default maximum number of songs fetched per save.
const DefaultNumber = 50

// Options holds the parsed command line.
type Options struct {
	Number  int
	Save    string
	Import  string
	Title   bool
	Verbose bool
	Help    bool
	Version bool
}

// Mode returns which of the three operating modes the options select.
// Save takes precedence over import.
func (o Options) Mode() Mode {
	switch {
	case o.Save != "":
		return ModeSave
	case o.Import != "":
		return ModeImport
	default:
		return ModeRead
	}
}

// Mode is an operating mode of the program.
type Mode int

const (
	ModeRead Mode = iota
	ModeSave
	ModeImport
)

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("lyricsipsum", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.IntVarP(&opts.Number, "number", "n", DefaultNumber, "maximum number of songs to fetch in save mode")
	fs.StringVarP(&opts.Save, "save", "s", "", "fetch the `artist`'s songs and save them")
	fs.StringVarP(&opts.Import, "import", "i", "", "import lyrics from an MP3 file or directory at `path`")
	fs.BoolVarP(&opts.Title, "title", "t", false, "print the song title before the lyrics")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&opts.Help, "help", "h", false, "show this help")
	fs.BoolVar(&opts.Version, "version", false, "show version")

	return fs
}

// ParseOptions parses command line arguments, excluding the program name.
func ParseOptions(args []string) (Options, error) {
	var opts Options
	fs := newFlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return opts, nil
}

// Usage returns the help text.
func Usage() string {
	var b strings.Builder

	b.WriteString("lyricsipsum - print random song lyrics\n\n")
	b.WriteString("Usage:\n")
	b.WriteString("  lyricsipsum [-t] [-v]\n")
	b.WriteString("  lyricsipsum -s <artist> [-n <num>] [-v]\n")
	b.WriteString("  lyricsipsum -i <path> [-v]\n")
	b.WriteString("  lyricsipsum -h | --version\n\n")
	b.WriteString("Options:\n")
	b.WriteString(newFlagSet(&Options{}).FlagUsages())

	return b.String()
}
