// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/restyle/internal/config"
	"github.com/bethropolis/restyle/internal/editor"
	"github.com/bethropolis/restyle/internal/event"
	"github.com/bethropolis/restyle/internal/input"
	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/statusbar"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/theme"
	"github.com/bethropolis/restyle/internal/tui"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *editor.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	themeManager   *theme.Manager
	pipeline       *Pipeline
	filePath       string
	viewport       tui.Viewport

	// Terminal events are read on their own goroutine and handled on the
	// Run goroutine, which is the only one touching the editor.
	events   chan tcell.Event
	quit     chan struct{}
	quitOnce sync.Once
}

// NewApp creates an application on the terminal.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return NewAppWithScreen(cfg, filePath, screen)
}

// NewAppWithScreen creates an application drawing to screen, which may be a
// simulation screen. The screen is initialized here.
func NewAppWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager, err := theme.NewManager(cfg.ThemesDir())
	if err != nil {
		logger.Warnf("App: loading themes: %v", err)
	}
	if cfg.Editor.Theme != "" {
		if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v", err)
		}
	}

	pipeline, err := BuildPipeline(cfg.Transform, filePath, nil)
	if err != nil {
		return nil, err
	}

	content, err := loadText(filePath)
	if err != nil {
		return nil, err
	}

	eventManager := event.NewManager()
	ed := editor.New(content, editor.Options{
		Transformer: pipeline.Transformer,
		Events:      eventManager,
		Clipboard:   editor.NewClipboard(cfg.Editor.SystemClipboard),
	})

	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current())
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         ed,
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(themeManager.Current())),
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		themeManager:   themeManager,
		pipeline:       pipeline,
		filePath:       filePath,
		events:         make(chan tcell.Event, 16),
		quit:           make(chan struct{}),
	}
	a.subscribe()
	a.updateStatusBarContent()
	return a, nil
}

// loadText reads the file as plain text. A missing file starts an empty
// buffer.
func loadText(filePath string) (*styled.Text, error) {
	if filePath == "" {
		logger.Debugf("No file specified, starting empty.")
		return styled.New(""), nil
	}
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("App: '%s' does not exist, starting empty", filePath)
		return styled.New(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", filePath, err)
	}
	return styled.New(string(data)), nil
}

// Run handles terminal events until quit is requested.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage("restyle - Ctrl+T Theme | Ctrl+Q Quit")
	a.draw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if a.editor.Modified() {
				logger.Warnf("App: exited with unsaved changes")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.draw()
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reports whether the screen needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
		return a.handleAction(a.inputProcessor.ProcessEvent(ev))
	}
	return false
}

func (a *App) requestQuit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// Editor returns the editor host.
func (a *App) Editor() *editor.Editor {
	return a.editor
}
