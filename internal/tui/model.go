package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
	"github.com/MichaelCho6556/cardgrid/internal/config"
	"github.com/MichaelCho6556/cardgrid/internal/logger"
	"github.com/MichaelCho6556/cardgrid/pkg/virtualgrid"
)

const framesPerSecond = 60

// chrome line counts around the grid viewport.
const (
	headerLines = 2
	footerLines = 2
)

// Loader produces the record collection, typically from a catalog file or
// the synthetic generator. It runs asynchronously behind the spinner.
type Loader func() ([]catalog.Record, error)

// Model is the main TUI model. It feeds scroll and resize signals into the
// grid engine and composes the materialized slots into the frame.
type Model struct {
	cfg    *config.Config
	loader Loader

	records []catalog.Record // full collection
	visible []catalog.Record // filtered + sorted view of records
	indexOf map[string]int   // record key -> index in visible

	engine     *virtualgrid.Engine[catalog.Record]
	scrollFeed *virtualgrid.Feed[int]
	resizeFeed *virtualgrid.Feed[virtualgrid.Size]
	sched      *virtualgrid.CoalescingScheduler

	// Smooth scrolling: a spring drives scrollPos toward scrollTarget and
	// the integer offset is emitted as a scroll signal on change.
	spring       harmonica.Spring
	scrollPos    float64
	scrollVel    float64
	scrollTarget int
	lastEmitted  int

	cursor int

	width  int
	height int

	loading bool
	spinner spinner.Model

	filterState FilterState
	filterText  string
	filterInput textinput.Model

	sortOrder catalog.SortOrder

	showDetail bool
	help       help.Model
	err        error
}

// NewModel creates the model and its grid engine.
func NewModel(cfg *config.Config, loader Loader) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	input := textinput.New()
	input.Placeholder = "title, tag, or status"
	input.Prompt = "/ "
	input.CharLimit = 64

	m := &Model{
		cfg:         cfg,
		loader:      loader,
		indexOf:     make(map[string]int),
		scrollFeed:  virtualgrid.NewFeed[int](),
		resizeFeed:  virtualgrid.NewFeed[virtualgrid.Size](),
		sched:       virtualgrid.NewCoalescingScheduler(),
		spring:      harmonica.NewSpring(harmonica.FPS(framesPerSecond), 14.0, 1.0),
		loading:     true,
		spinner:     s,
		filterInput: input,
		sortOrder:   cfg.Sort,
		help:        help.New(),
	}

	engine, err := virtualgrid.New(virtualgrid.Options[catalog.Record]{
		Geometry:     cfg.Geometry(),
		OverscanRows: cfg.OverscanRows,
		KeyOf:        catalog.KeyOf,
		RenderItem:   m.renderRecord,
		Scheduler:    m.sched,
	})
	if err != nil {
		// Geometry comes from validated config, so this is a programming
		// error rather than a runtime condition.
		panic(err)
	}
	m.engine = engine
	engine.Mount(virtualgrid.Size{}, m.scrollFeed, m.resizeFeed)

	return m
}

// renderRecord is the engine's render callback: one card per materialized slot.
func (m *Model) renderRecord(r catalog.Record) string {
	selected := false
	if idx, ok := m.indexOf[r.Key]; ok {
		selected = idx == m.cursor
	}
	return renderCard(r, m.cfg.CardWidth, m.cfg.CardHeight, selected)
}

// Init starts the catalog load, the spinner, and the frame clock.
func (m *Model) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(m.spinner.Tick, m.loadCatalog(), frameCmd())
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		records, err := m.loader()
		return catalogLoadedMsg{records: records, err: err}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// gridSize returns the viewport dimensions available to the grid.
func (m *Model) gridSize() (w, h int) {
	w = m.width
	h = m.height - headerLines - footerLines
	if h < 0 {
		h = 0
	}
	return w, h
}

// Destroy tears down the engine. Called on quit; idempotent.
func (m *Model) Destroy() {
	m.engine.Destroy()
	logger.Debug("engine destroyed",
		"scroll_listeners", m.scrollFeed.ListenerCount(),
		"resize_listeners", m.resizeFeed.ListenerCount())
}
