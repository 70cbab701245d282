package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scholnicks/lyricsipsum/internal/audio"
	"github.com/scholnicks/lyricsipsum/internal/cache"
	"github.com/scholnicks/lyricsipsum/internal/config"
	"github.com/scholnicks/lyricsipsum/internal/fetch"
	ioutils "github.com/scholnicks/lyricsipsum/internal/io"
	"github.com/scholnicks/lyricsipsum/internal/model"
	"github.com/sirupsen/logrus"
)

// Version is the program version printed by --version.
const Version = "1.1.3"

// LyricsReader reads raw songs from audio files.
//
// *audio.LyricsReader implements LyricsReader.
type LyricsReader interface {
	ReadPath(ctx context.Context, path string) ([]model.Song, error)
}

// App runs one invocation of the program.
type App struct {
	Stdout io.Writer
	Logger *logrus.Logger
	Paths  config.Paths

	Selector  *cache.Selector
	Reader    LyricsReader
	NewSource fetch.SourceFactory
}

// NewApp creates an App writing to the process stdout and logging to
// stderr.
func NewApp(paths config.Paths) *App {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)

	return &App{
		Stdout:    os.Stdout,
		Logger:    logger,
		Paths:     paths,
		Selector:  cache.NewSelector(),
		Reader:    audio.NewLyricsReader(),
		NewSource: fetch.NewGeniusSource,
	}
}

// Run executes the command line args and returns the process exit code.
//
// A run that ends with ctx cancelled exits 0.
func (a *App) Run(ctx context.Context, args []string) int {
	opts, err := ParseOptions(args)
	if err != nil {
		a.Logger.Error(err)
		fmt.Fprint(a.Stdout, Usage())
		return 1
	}

	switch {
	case opts.Help:
		fmt.Fprint(a.Stdout, Usage())
		return 0
	case opts.Version:
		fmt.Fprintf(a.Stdout, "lyricsipsum %s\n", Version)
		return 0
	}

	if opts.Verbose {
		a.Logger.SetLevel(logrus.DebugLevel)
	}

	if err := ioutils.EnsureDir(a.Paths.Dir); err != nil {
		a.Logger.WithError(err).Error("failed to create configuration directory")
		return 1
	}

	store := cache.NewStore(a.Paths.SongsFile())

	switch opts.Mode() {
	case ModeSave:
		err = a.save(ctx, store, opts)
	case ModeImport:
		err = a.importSongs(ctx, store, opts)
	default:
		return a.read(store, opts)
	}

	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		a.Logger.Error(err)
		return 1
	}

	return 0
}

func (a *App) read(store *cache.Store, opts Options) int {
	songs, err := store.Load()
	if errors.Is(err, cache.ErrCacheMissing) || (err == nil && len(songs) == 0) {
		fmt.Fprintf(a.Stdout, "No lyrics file found at %s. Please run with --save to create one.\n", store.Path())
		return 1
	}
	if err != nil {
		a.Logger.Error(err)
		return 1
	}

	song := a.Selector.PickOne(songs)
	if opts.Title {
		fmt.Fprintf(a.Stdout, "%s\n\n%s\n", song.Title, song.Lyrics)
	} else {
		fmt.Fprintf(a.Stdout, "\n%s\n", song.Lyrics)
	}

	return 0
}

func (a *App) save(ctx context.Context, store *cache.Store, opts Options) error {
	existing, err := store.LoadOrEmpty()
	if err != nil {
		return err
	}

	settings, err := config.Load(a.Paths.ConfigFile())
	if err != nil {
		return err
	}
	token, err := a.Paths.LoadAccessToken()
	if err != nil {
		return err
	}

	cfg := settings.ToClientConfig(token, opts.Verbose, a.Logger.WithField("artist", opts.Save))
	if cfg.Verbose {
		a.Logger.SetLevel(logrus.DebugLevel)
	}

	source, err := a.NewSource(cfg)
	if err != nil {
		return err
	}

	manager := fetch.NewManager(source, a.logProgress)
	merged, err := manager.FetchAndMerge(ctx, opts.Save, opts.Number, existing)
	if err != nil {
		return err
	}

	if err := store.Save(ctx, merged); err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "Saved %d songs to %s\n", len(merged), store.Path())
	return nil
}

func (a *App) importSongs(ctx context.Context, store *cache.Store, opts Options) error {
	existing, err := store.LoadOrEmpty()
	if err != nil {
		return err
	}

	raw, err := a.Reader.ReadPath(ctx, opts.Import)
	if err != nil {
		return err
	}

	manager := fetch.NewManager(nil, a.logProgress)
	merged := manager.Merge(existing, raw)

	if err := store.Save(ctx, merged); err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "Imported %d songs, saved %d songs to %s\n", len(merged)-len(existing), len(merged), store.Path())
	return nil
}

// logProgress routes fetch progress onto logger levels. Errors are logged
// once by Run, so error events only show at debug level.
func (a *App) logProgress(event fetch.ProgressEvent) {
	switch event.Level {
	case fetch.LevelInfo, fetch.LevelSuccess:
		a.Logger.Info(event.Message)
	case fetch.LevelWarning:
		a.Logger.Warn(event.Message)
	default:
		a.Logger.Debug(event.Message)
	}
}
