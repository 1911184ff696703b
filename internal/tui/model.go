// Package tui is the terminal front-end of the site. It drives the same
// view.State as the web page: keys switch tabs, the card cursor and the
// focused submit button stand in for the pointer, and scrolling feeds the
// fade-in latches.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"gradientspace.dev/internal/models"
	"gradientspace.dev/internal/services"
	"gradientspace.dev/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	submitTimeout = 10 * time.Second
	// header and footer lines outside the viewport
	chromeHeight = 3
)

const sinkFailureMessage = "We could not send your message right now. Please try again."

// focus positions of the contact form
const (
	focusNone = iota - 1
	focusName
	focusEmail
	focusPackage
	focusMessage
	focusSubmit
	focusCount
)

// span is the line range of one section inside the viewport content
type span struct {
	id         models.SectionID
	start, end int
}

// submitResultMsg carries the sink's verdict back into Update
type submitResultMsg struct {
	err error
}

// Options configure a Model
type Options struct {
	// Style is a glamour style name or path. Empty picks one from the terminal.
	Style  string
	Logger *zap.Logger
}

// Model is the bubbletea model of the site
type Model struct {
	state   *view.State
	content *services.ContentService
	sink    view.Sink
	logger  *zap.Logger
	styles  Styles

	style    string
	md       *glamour.TermRenderer
	mdCache  map[models.SectionID]string
	viewport viewport.Model
	width    int
	height   int
	sized    bool
	spans    []span

	inputs  map[models.Field]*textinput.Model
	focus   int
	sending bool
	formErr string
}

// New creates the model on the home tab
func New(state *view.State, content *services.ContentService, sink view.Sink, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		state:   state,
		content: content,
		sink:    sink,
		logger:  logger,
		styles:  DefaultStyles(),
		style:   opts.Style,
		focus:   focusNone,
		inputs: map[models.Field]*textinput.Model{
			models.FieldName:    newInput("Your Name", 128),
			models.FieldEmail:   newInput("Your Email", 254),
			models.FieldMessage: newInput("Additional message (optional)", 2000),
		},
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func newInput(placeholder string, limit int) *textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &ti
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.sized = true
		m.resize(msg.Width, msg.Height)
		return m, nil

	case submitResultMsg:
		m.finishSubmit(msg.err)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing() {
			cmd = m.updateForm(msg)
		} else {
			var quit bool
			quit, cmd = m.updateBrowse(msg)
			if quit {
				return m, tea.Quit
			}
		}

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	}

	m.refresh()
	return m, cmd
}

// updateBrowse handles keys while no form control has focus
func (m *Model) updateBrowse(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "q":
		return true, nil
	case "1", "2", "3", "4":
		m.selectTab(models.Tabs()[int(msg.Runes[0]-'1')])
	case "left", "h":
		m.selectTab(m.tabAt(-1))
	case "right", "l":
		m.selectTab(m.tabAt(1))
	case "tab":
		if m.state.ActiveTab() == models.TabContact {
			return false, m.enterForm()
		}
		m.moveCard(1)
	case "shift+tab":
		m.moveCard(-1)
	case "enter":
		if m.state.ActiveTab() == models.TabContact {
			return false, m.enterForm()
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return false, cmd
	}
	return false, nil
}

// updateForm handles keys while a contact form control has focus
func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.setFocus(focusNone)
		return nil
	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "enter":
		if m.focus == focusSubmit {
			return m.submit()
		}
		return m.setFocus((m.focus + 1) % focusCount)
	}

	if m.focus == focusPackage {
		switch msg.String() {
		case "left":
			m.cyclePackage(-1)
		case "right", " ":
			m.cyclePackage(1)
		}
		return nil
	}

	field, ok := focusField(m.focus)
	if !ok {
		return nil
	}
	in := m.inputs[field]
	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated
	if in.Value() != before {
		if err := m.state.EditField(field, in.Value()); err != nil {
			m.logger.Warn("form edit rejected", zap.String("field", string(field)), zap.Error(err))
		}
	}
	return cmd
}

func (m *Model) editing() bool {
	return m.focus != focusNone && !m.sending &&
		m.state.ActiveTab() == models.TabContact && !m.state.Submitted()
}

// tabAt returns the tab offset steps from the active one, wrapping around
func (m *Model) tabAt(offset int) models.Tab {
	tabs := models.Tabs()
	for i, t := range tabs {
		if t == m.state.ActiveTab() {
			return tabs[(i+offset+len(tabs))%len(tabs)]
		}
	}
	return models.TabHome
}

func (m *Model) selectTab(tab models.Tab) {
	if tab == m.state.ActiveTab() {
		return
	}
	if err := m.state.SelectTab(tab); err != nil {
		m.logger.Error("tab selection failed", zap.String("tab", string(tab)), zap.Error(err))
		return
	}
	m.setFocus(focusNone)
	m.formErr = ""
	m.viewport.GotoTop()
}

// moveCard steps the card cursor through the packages on the home tab.
// Stepping past either end clears the hover.
func (m *Model) moveCard(step int) {
	if !m.state.Branch().Contains(models.SectionPackages) {
		return
	}
	n := len(m.content.GetPackages())
	cur, ok := m.state.HoveredCard()
	if !ok {
		cur = n
	}
	// n stands for "no card"
	next := (cur + step + n + 1) % (n + 1)
	if next == n {
		m.state.ClearCardHover()
		return
	}
	m.state.HoverCard(next)
}

func (m *Model) enterForm() tea.Cmd {
	if m.state.Submitted() || m.sending {
		return nil
	}
	form := m.state.Form()
	for field, in := range m.inputs {
		v, _ := form.Get(field)
		in.SetValue(v)
	}
	return m.setFocus(focusName)
}

// setFocus moves focus between form controls. The submit button counts as
// hovered while it holds focus.
func (m *Model) setFocus(focus int) tea.Cmd {
	m.focus = focus
	var cmd tea.Cmd
	for field, in := range m.inputs {
		if f, ok := focusField(focus); ok && f == field {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	m.state.HoverButton(focus == focusSubmit)
	return cmd
}

func focusField(focus int) (models.Field, bool) {
	switch focus {
	case focusName:
		return models.FieldName, true
	case focusEmail:
		return models.FieldEmail, true
	case focusMessage:
		return models.FieldMessage, true
	}
	return "", false
}

// cyclePackage steps the package chooser through the catalog
func (m *Model) cyclePackage(step int) {
	pkgs := m.content.GetPackages()
	if len(pkgs) == 0 {
		return
	}
	cur := -1
	selected := m.state.Form().Package
	for i, p := range pkgs {
		if p.Name == selected {
			cur = i
		}
	}
	var next int
	switch {
	case cur < 0 && step < 0:
		next = len(pkgs) - 1
	case cur < 0:
		next = 0
	default:
		next = (cur + step + len(pkgs)) % len(pkgs)
	}
	if err := m.state.EditField(models.FieldPackage, pkgs[next].Name); err != nil {
		m.logger.Warn("package choice rejected", zap.Error(err))
	}
}

// submit validates the form and hands it to the sink off the update loop
func (m *Model) submit() tea.Cmd {
	form := m.state.Form()
	if err := form.Validate(); err != nil {
		m.formErr = err.Error()
		return nil
	}
	m.formErr = ""
	m.sending = true

	sink := m.sink
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitResultMsg{err: sink.Accept(ctx, form)}
	}
}

// finishSubmit records the sink's verdict on the view state. Edits are
// blocked while sending, so the state still holds the form that was sent.
func (m *Model) finishSubmit(result error) {
	m.sending = false
	verdict := view.SinkFunc(func(context.Context, models.ContactFormData) error {
		return result
	})
	_, err := m.state.Submit(context.Background(), verdict)
	switch {
	case errors.Is(err, view.ErrAlreadySubmitted):
		return
	case err != nil:
		m.logger.Error("contact form submission failed", zap.Error(err))
		m.formErr = sinkFailureMessage
		return
	}
	for _, in := range m.inputs {
		in.Reset()
	}
	m.setFocus(focusNone)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(width, vpHeight)
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(width-4, 20))}
	if m.style != "" {
		opts = append(opts, glamour.WithStylePath(m.style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	md, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
	}
	m.md = md
	m.mdCache = make(map[models.SectionID]string)

	m.refresh()
}

// refresh redraws the viewport content and feeds every mounted section's
// visible ratio to its latch. A reveal restyles its section, so the content
// is drawn again when any latch flipped. Nothing is observed until the
// terminal size is known.
func (m *Model) refresh() {
	m.layout()
	if m.sized && m.observe() {
		m.layout()
	}
}

func (m *Model) layout() {
	content, spans := m.renderContent()
	m.spans = spans
	offset := m.viewport.YOffset
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(offset)
}

func (m *Model) observe() bool {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	changed := false
	for _, s := range m.spans {
		before := m.state.Revealed(s.id)
		revealed, err := m.state.Observe(s.id, visibleRatio(s, top, bottom))
		if err != nil {
			m.logger.Warn("visibility update dropped", zap.String("section", string(s.id)), zap.Error(err))
			continue
		}
		if revealed && !before {
			m.logger.Debug("section revealed", zap.String("section", string(s.id)))
			changed = true
		}
	}
	return changed
}

// visibleRatio is the share of a span's lines inside [top, bottom)
func visibleRatio(s span, top, bottom int) float64 {
	height := s.end - s.start
	if height <= 0 {
		return 0
	}
	lo, hi := max(s.start, top), min(s.end, bottom)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}
