package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"gradientspace.dev/internal/models"
)

// narrowWidth is the width below which package cards stack
const narrowWidth = 72

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(Divider).Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m *Model) renderNav() string {
	var tabs []string
	for i, tab := range models.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == m.state.ActiveTab() {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) help() string {
	switch {
	case m.sending:
		return "sending..."
	case m.editing():
		return "tab/shift+tab: move • ←/→: choose package • enter: next/submit • esc: leave form"
	case m.state.ActiveTab() == models.TabContact && !m.state.Submitted():
		return "1-4/←/→: tabs • tab: fill in the form • ↑/↓: scroll • q: quit"
	case m.state.Branch().Contains(models.SectionPackages):
		return "1-4/←/→: tabs • tab: browse packages • ↑/↓: scroll • q: quit"
	}
	return "1-4/←/→: tabs • ↑/↓: scroll • q: quit"
}

// renderContent draws the banner and the mounted sections and records the
// line range each section occupies
func (m *Model) renderContent() (string, []span) {
	site := m.content.Site()
	banner := m.styles.Banner.Width(max(m.width, 1)).Render(site.Name)

	lines := []string{banner}
	offset := lipgloss.Height(banner)
	var spans []span

	for _, id := range m.state.Branch().Sections {
		block := m.renderSection(id)
		if !m.state.Revealed(id) {
			block = m.styles.Pending.Render(block)
		}
		h := lipgloss.Height(block)
		spans = append(spans, span{id: id, start: offset, end: offset + h})
		lines = append(lines, block)
		offset += h
	}
	return strings.Join(lines, "\n"), spans
}

func (m *Model) renderSection(id models.SectionID) string {
	sec, err := m.content.GetSection(id)
	if err != nil {
		m.logger.Error("section missing", zap.String("section", string(id)), zap.Error(err))
		return ""
	}

	title := m.styles.Title.Render(sec.Title)
	switch id {
	case models.SectionPackages:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.wrap(sec.Intro), m.renderCards())
	case models.SectionTestimonials:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.renderTestimonials())
	case models.SectionContact:
		return lipgloss.JoinVertical(lipgloss.Left, title, m.wrap(sec.Intro), "", m.renderForm(), "", m.renderOffice())
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.markdown(sec))
}

func (m *Model) wrap(s string) string {
	return m.styles.Text.Width(max(m.width-2, 20)).Render(s)
}

// markdown renders a prose section body, cached per width
func (m *Model) markdown(sec models.Section) string {
	if out, ok := m.mdCache[sec.ID]; ok {
		return out
	}
	out := sec.Body
	if m.md != nil {
		rendered, err := m.md.Render(sec.Body)
		if err != nil {
			m.logger.Warn("markdown render failed", zap.String("section", string(sec.ID)), zap.Error(err))
		} else {
			out = strings.Trim(rendered, "\n")
		}
	}
	m.mdCache[sec.ID] = out
	return out
}

func (m *Model) renderCards() string {
	pkgs := m.content.GetPackages()
	hovered, _ := m.state.HoveredCard()

	stacked := m.width < narrowWidth
	cardWidth := max(m.width-4, 20)
	if !stacked && len(pkgs) > 0 {
		cardWidth = (m.width-2)/len(pkgs) - 2
	}

	cards := make([]string, 0, len(pkgs))
	for i, p := range pkgs {
		style := m.styles.Card
		if i == hovered {
			style = m.styles.CardElevated
		}
		var body strings.Builder
		body.WriteString(m.styles.Focused.Render(p.Name))
		body.WriteString("\n")
		body.WriteString(p.Description)
		body.WriteString("\n")
		for _, benefit := range p.Benefits {
			body.WriteString("\n• " + benefit)
		}
		body.WriteString("\n\n")
		body.WriteString(m.styles.Price.Render(p.Price))
		cards = append(cards, style.Width(cardWidth).Render(body.String()))
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) renderTestimonials() string {
	var blocks []string
	for _, t := range m.content.GetTestimonials() {
		filled, empty := t.Stars()
		stars := m.styles.Stars.Render(strings.Repeat("★", filled)) +
			m.styles.StarsOff.Render(strings.Repeat("★", empty))
		quote := m.wrap(fmt.Sprintf("%q", t.Text))
		blocks = append(blocks, "", quote, "- "+t.Name+" "+stars)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m *Model) renderForm() string {
	if m.state.Submitted() {
		return m.styles.Success.Render("Thank you for contacting us! We’ll get back to you shortly.")
	}

	form := m.state.Form()
	row := func(focus int, label, value string) string {
		l := m.styles.Label.Render(label)
		if m.focus == focus {
			l = m.styles.Focused.Width(10).Render(label)
		}
		return l + " " + value
	}
	input := func(f models.Field) string {
		in := m.inputs[f]
		if in.Focused() {
			return in.View()
		}
		v, _ := form.Get(f)
		if v == "" {
			return m.styles.Help.Render(in.Placeholder)
		}
		return v
	}

	pkg := form.Package
	if pkg == "" {
		pkg = m.styles.Help.Render("Select a Package")
	}
	if m.focus == focusPackage {
		pkg = "‹ " + pkg + " ›"
	}

	button := m.styles.Button.Render("Submit")
	if m.state.ButtonHovered() {
		button = m.styles.ButtonHover.Render("Submit")
	}

	rows := []string{
		row(focusName, "Name", input(models.FieldName)),
		row(focusEmail, "Email", input(models.FieldEmail)),
		row(focusPackage, "Package", pkg),
		row(focusMessage, "Message", input(models.FieldMessage)),
		"",
		button,
	}
	if m.formErr != "" {
		rows = append([]string{m.styles.Error.Render(m.formErr), ""}, rows...)
	}
	if m.sending {
		rows = append(rows, m.styles.Help.Render("Sending..."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderOffice() string {
	site := m.content.Site()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Focused.Render("Our Office"),
		strings.Join(site.Address, "\n"),
		"Phone: "+site.Phone,
		"Email: "+site.Email,
		"",
		m.styles.Focused.Render("Business Hours"),
		strings.Join(site.Hours, "\n"),
	)
}
