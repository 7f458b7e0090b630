package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/marktext/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marktext/internal/core/domain"
)

// App is the paste pad following the Elm architecture.
// Text typed or pasted into the pad is pasted into a fresh tree on demand,
// and the exported tree is shown alongside with the classifier verdict.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	input   textarea.Model
	preview viewport.Model
	status  *status.Bar
	help    help.Model

	// focus is the pane receiving key messages.
	focus messages.Pane

	// analysed holds the last completed analysis, nil before the first.
	analysed *messages.AnalysisCompleted

	// saved is the last stored document.
	saved *domain.Document

	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new paste pad with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	input := textarea.New()
	input.Placeholder = "Type or paste text here..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.Focus()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		input:   input,
		preview: viewport.New(0, 0),
		status:  status.NewBar(s, km),
		help:    help.New(),
		focus:   messages.PaneInput,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.SetWindowTitle("marktext - Paste Pad"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.AnalysisRequested:
		a.status.SetState(status.StateAnalysing)
		return a, a.analyse(msg.Event)

	case messages.AnalysisCompleted:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.analysed = &msg
		a.status.SetVerdict(msg.Mode, msg.Blocks)
		a.refreshPreview()
		return a, nil

	case messages.DocumentSaved:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.saved = msg.Document
		a.status.SetState(status.StateSaved)
		a.status.SetMessage(msg.Document.ID)
		return a, nil

	case messages.PaneChanged:
		a.setFocus(msg.Pane)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the focused pane.
	return a, a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
		return a, nil

	case key.Matches(msg, a.keymap.Analyse):
		return a, a.requestAnalysis()

	case key.Matches(msg, a.keymap.Save):
		return a, a.save()

	case key.Matches(msg, a.keymap.Clear):
		a.input.Reset()
		a.analysed = nil
		a.saved = nil
		a.err = nil
		a.status.Clear()
		a.refreshPreview()
		return a, nil

	case key.Matches(msg, a.keymap.SwitchPane):
		a.setFocus(a.focus.Next())
		return a, nil
	}

	cmd := a.forward(msg)
	if msg.Paste && a.focus == messages.PaneInput {
		// A bracketed paste analyses straight away.
		return a, tea.Batch(cmd, a.requestAnalysis())
	}
	return a, cmd
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if a.focus == messages.PaneInput {
		a.input, cmd = a.input.Update(msg)
	} else {
		a.preview, cmd = a.preview.Update(msg)
	}
	return cmd
}

func (a *App) requestAnalysis() tea.Cmd {
	event := domain.PasteEvent{Text: a.input.Value()}
	return func() tea.Msg {
		return messages.AnalysisRequested{Event: event}
	}
}

// analyse pastes event into an empty tree and exports the result.
func (a *App) analyse(event domain.PasteEvent) tea.Cmd {
	ctx := a.ctx
	paste := a.ports.Paste
	conversion := a.ports.Conversion
	return func() tea.Msg {
		likely := paste.Classify(ctx, event)
		tree := domain.NewTree()
		result, err := paste.Paste(ctx, tree, event)
		if err != nil {
			return messages.AnalysisCompleted{Likely: likely, Err: err}
		}
		markdown, err := conversion.Export(ctx, tree)
		return messages.AnalysisCompleted{
			Likely:   likely,
			Mode:     result.Mode,
			Blocks:   len(result.Inserted),
			Markdown: markdown,
			Err:      err,
		}
	}
}

func (a *App) save() tea.Cmd {
	if a.ports.Document == nil {
		a.setError(ErrNoDocumentService)
		return nil
	}
	if a.analysed == nil || a.analysed.Markdown == "" {
		a.setError(ErrNothingToSave)
		return nil
	}

	ctx := a.ctx
	docs := a.ports.Document
	markdown := a.analysed.Markdown
	return func() tea.Msg {
		doc, err := docs.Create(ctx, "", markdown)
		return messages.DocumentSaved{Document: doc, Err: err}
	}
}

func (a *App) setFocus(pane messages.Pane) {
	a.focus = pane
	if pane == messages.PaneInput {
		a.input.Focus()
	} else {
		a.input.Blur()
	}
}

func (a *App) setError(err error) {
	a.err = err
	a.status.SetState(status.StateError)
	a.status.SetMessage(err.Error())
}

func (a *App) refreshPreview() {
	if a.analysed == nil {
		a.preview.SetContent(a.styles.Muted.Render("Press ctrl+r to analyse the pad."))
		return
	}
	verdict := a.styles.Plain.Render("plain text")
	if a.analysed.Likely {
		verdict = a.styles.Markdown.Render("likely markdown")
	}
	a.preview.SetContent(verdict + "\n\n" + a.analysed.Markdown)
	a.preview.GotoTop()
}

// layout sizes the panes to the terminal.
func (a *App) layout() {
	helpHeight := lipgloss.Height(a.help.View(a.keymap))
	// Title, status bar, help and the pane borders.
	paneHeight := a.height - 2 - helpHeight - 2
	if paneHeight < 1 {
		paneHeight = 1
	}
	// Border and padding on each side of both panes.
	paneWidth := a.width/2 - 4
	if paneWidth < 1 {
		paneWidth = 1
	}

	a.input.SetWidth(paneWidth)
	a.input.SetHeight(paneHeight)
	a.preview.Width = paneWidth
	a.preview.Height = paneHeight
	a.status.SetWidth(a.width)
	a.help.Width = a.width
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	inputStyle, previewStyle := a.styles.FocusedPane, a.styles.Pane
	if a.focus == messages.PanePreview {
		inputStyle, previewStyle = a.styles.Pane, a.styles.FocusedPane
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		inputStyle.Render(a.input.View()),
		previewStyle.Render(a.preview.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("marktext paste pad"),
		panes,
		a.status.View(),
		a.help.View(a.keymap),
	)
}

// Run starts the paste pad.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
	a.refreshPreview()
}

// SetInput replaces the pad content.
func (a *App) SetInput(text string) {
	a.input.SetValue(text)
}

// Input returns the pad content.
func (a *App) Input() string {
	return a.input.Value()
}

// Focus returns the focused pane.
func (a *App) Focus() messages.Pane {
	return a.focus
}

// Analysis returns the last completed analysis, or nil.
func (a *App) Analysis() *messages.AnalysisCompleted {
	return a.analysed
}

// Saved returns the last stored document, or nil.
func (a *App) Saved() *domain.Document {
	return a.saved
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
