// Package tui provides a Bubble Tea terminal user interface for lyricsipsum.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/scholnicks/lyricsipsum/internal/cache"
	"github.com/scholnicks/lyricsipsum/internal/config"
	"github.com/scholnicks/lyricsipsum/internal/fetch"
	"github.com/scholnicks/lyricsipsum/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	songTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// errCancelled is shown when the user aborts a fetch.
var errCancelled = errors.New("cancelled by user")

const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateInput
	StateFetching
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   fetch.ProgressLevel
}

// Options configures the TUI.
type Options struct {
	Paths   config.Paths
	Number  int
	Verbose bool

	// NewSource builds the lyrics source for a fetch. Nil selects
	// fetch.NewGeniusSource.
	NewSource fetch.SourceFactory
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	opts      Options
	store     *cache.Store
	selector  *cache.Selector
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model

	songs     []model.Song
	current   *model.Song
	showTitle bool

	logs   []LogEntry
	artist string
	added  int
	err    error

	// Fetch context
	ctx        context.Context
	cancel     context.CancelFunc
	progressCh chan fetch.ProgressEvent

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	if opts.NewSource == nil {
		opts.NewSource = fetch.NewGeniusSource
	}

	ti := textinput.New()
	ti.Placeholder = "Artist name"
	ti.CharLimit = 200
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:     StateBrowse,
		opts:      opts,
		store:     cache.NewStore(opts.Paths.SongsFile()),
		selector:  cache.NewSelector(),
		textInput: ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		showTitle: true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSongs(), m.spinner.Tick)
}

// Message types
type (
	// SongsLoadedMsg is sent when the cache has been read.
	SongsLoadedMsg struct {
		Songs []model.Song
		Err   error
	}

	// ProgressMsg is sent for every fetch progress event.
	ProgressMsg struct {
		Event fetch.ProgressEvent
	}

	// FetchDoneMsg is sent when a fetch has finished and the cache was saved.
	FetchDoneMsg struct {
		Songs []model.Song
		Added int
		Err   error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-8, 5)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelFetch()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case SongsLoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.songs = msg.Songs
		m.pickSong()

	case ProgressMsg:
		// The sender gives up on ctx.Done, so dropping the relay here cannot block it.
		if m.state != StateFetching {
			return m, nil
		}
		if msg.Event.Level != fetch.LevelVerbose || m.opts.Verbose {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}
		cmds = append(cmds, waitForProgress(m.progressCh))

	case FetchDoneMsg:
		if m.state != StateFetching {
			return m, nil
		}
		m.cancelFetch()
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.state = StateComplete
		m.songs = msg.Songs
		m.added = msg.Added
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.state {
	case StateBrowse:
		switch key {
		case "q", "esc":
			return m, tea.Quit
		case "n":
			m.pickSong()
		case "t":
			m.showTitle = !m.showTitle
			m.refreshViewport()
		case "s":
			m.state = StateInput
			m.textInput.SetValue("")
			return m, m.textInput.Focus()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case StateInput:
		switch key {
		case "esc":
			m.textInput.Blur()
			m.state = StateBrowse
		case "enter":
			artist := strings.TrimSpace(m.textInput.Value())
			if artist == "" {
				return m, nil
			}
			m.textInput.Blur()
			return m, m.startFetch(artist)
		default:
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}

	case StateFetching:
		if key == "esc" {
			m.cancelFetch()
			m.state = StateError
			m.err = errCancelled
		}

	case StateComplete, StateError:
		switch key {
		case "q":
			return m, tea.Quit
		case "enter", "esc":
			m.state = StateBrowse
			m.err = nil
			m.pickSong()
			return m, m.loadSongs()
		}
	}

	return m, nil
}

// pickSong shows a new random song, or an empty viewport without songs.
func (m *Model) pickSong() {
	if len(m.songs) == 0 {
		m.current = nil
	} else {
		song := m.selector.PickOne(m.songs)
		m.current = &song
	}
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if m.current == nil {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder
	if m.showTitle {
		b.WriteString(songTitleStyle.Render(m.current.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.current.Lyrics)

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m *Model) cancelFetch() {
	if m.cancel != nil {
		m.cancel()
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ lyricsipsum"))
	b.WriteString("\n")

	switch m.state {
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateInput:
		b.WriteString(m.viewInput())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewBrowse() string {
	if m.current == nil {
		return infoStyle.Render("No lyrics cached yet. Press s to save an artist's songs.") + "\n"
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d songs cached", len(m.songs))))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Save songs by artist:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Up to %d songs will be added to %s", m.opts.Number, m.store.Path())))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Fetching songs by %s...", m.artist)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf(
		"Saved!\n\n"+
			"Artist: %s\n"+
			"Added: %d\n"+
			"Total: %d",
		m.artist,
		m.added,
		len(m.songs),
	)) + "\n"
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case fetch.LevelError:
			style = errorStyle
			prefix = "✗"
		case fetch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case fetch.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case fetch.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBrowse:
		return "n: next song • t: toggle title • s: save artist • ↑/↓: scroll • q: quit"
	case StateInput:
		return "enter: fetch • esc: back"
	case StateFetching:
		return "esc: cancel"
	case StateComplete, StateError:
		return "enter: back to lyrics • q: quit"
	}
	return ""
}

// loadSongs reads the cache. A missing cache is an empty song list.
func (m Model) loadSongs() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		songs, err := store.LoadOrEmpty()
		return SongsLoadedMsg{Songs: songs, Err: err}
	}
}

// startFetch switches to the fetching state and returns the commands that
// run the fetch and relay its progress.
func (m *Model) startFetch(artist string) tea.Cmd {
	m.state = StateFetching
	m.artist = artist
	m.logs = nil
	m.err = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.progressCh = make(chan fetch.ProgressEvent, 64)

	ctx, ch := m.ctx, m.progressCh
	opts, store := m.opts, m.store

	run := func() tea.Msg {
		defer close(ch)

		songs, added, err := fetchAndSave(ctx, opts, store, artist, func(event fetch.ProgressEvent) {
			select {
			case ch <- event:
			case <-ctx.Done():
			}
		})
		return FetchDoneMsg{Songs: songs, Added: added, Err: err}
	}

	return tea.Batch(run, waitForProgress(ch), m.spinner.Tick)
}

// fetchAndSave runs one save-mode fetch against the cache as it is on disk
// now and persists the merged songs. It returns the merged songs and the
// number added.
func fetchAndSave(ctx context.Context, opts Options, store *cache.Store, artist string, onProgress func(fetch.ProgressEvent)) ([]model.Song, int, error) {
	existing, err := store.LoadOrEmpty()
	if err != nil {
		return nil, 0, err
	}

	settings, err := config.Load(opts.Paths.ConfigFile())
	if err != nil {
		return nil, 0, err
	}
	token, err := opts.Paths.LoadAccessToken()
	if err != nil {
		return nil, 0, err
	}

	// Client logging would corrupt the alternate screen.
	source, err := opts.NewSource(settings.ToClientConfig(token, opts.Verbose, nil))
	if err != nil {
		return nil, 0, err
	}

	merged, err := fetch.NewManager(source, onProgress).FetchAndMerge(ctx, artist, opts.Number, existing)
	if err != nil {
		return nil, 0, err
	}

	if err := store.Save(ctx, merged); err != nil {
		return nil, 0, err
	}
	return merged, len(merged) - len(existing), nil
}

// waitForProgress relays the next progress event. It yields nil once the
// channel is closed.
func waitForProgress(ch <-chan fetch.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
