package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sectionPaneWidth = 24
	valueWidth       = 60
)

type pane int

const (
	paneSections pane = iota
	paneEntries
)

type sectionView struct {
	name    string
	entries []settings.KeyValue
}

type browserModel struct {
	title          string
	sections       []sectionView
	usingDefaults  bool
	defaultsNotice string
	buildInfo      models.AppBuildInfo

	secIdx   int
	entryIdx int
	focus    pane
	showInfo bool

	status     string
	lastErr    error
	quitByUser bool
	copy       func(string) error
}

func newBrowserModel(s Settings, buildInfo models.AppBuildInfo) browserModel {
	m := browserModel{
		title:         s.ValueOf(settings.SectionMainWindow, "WindowName"),
		usingDefaults: s.IsDefault(),
		buildInfo:     buildInfo,
		copy:          clipboard.WriteAll,
	}
	if m.usingDefaults {
		m.defaultsNotice = s.ValueOf(settings.SectionMessages, "XmlNotOpened")
	}
	for name, kvs := range s.DumpAll() {
		m.sections = append(m.sections, sectionView{name: name, entries: kvs})
	}
	if m.title == "" {
		m.title = "Launcher configuration"
	}
	return m
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) currentSection() (sectionView, bool) {
	if m.secIdx < 0 || m.secIdx >= len(m.sections) {
		return sectionView{}, false
	}
	return m.sections[m.secIdx], true
}

func (m browserModel) currentEntry() (settings.KeyValue, bool) {
	sec, ok := m.currentSection()
	if !ok || m.entryIdx < 0 || m.entryIdx >= len(sec.entries) {
		return settings.KeyValue{}, false
	}
	return sec.entries[m.entryIdx], true
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		m.status = fmt.Sprintf("Copied %s", msg.key)
		m.lastErr = nil
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = humanizeClipboardError(msg.err)
		m.lastErr = msg.err
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m browserModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showInfo = false
		} else if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.tab):
		if m.focus == paneSections {
			m.focus = paneEntries
		} else {
			m.focus = paneSections
		}
	case key.Matches(msg, keys.right):
		m.focus = paneEntries
	case key.Matches(msg, keys.left), key.Matches(msg, keys.esc):
		m.focus = paneSections
	case key.Matches(msg, keys.up):
		m.move(-1)
	case key.Matches(msg, keys.down):
		m.move(1)
	case key.Matches(msg, keys.copy):
		if kv, ok := m.currentEntry(); ok {
			return m, cmdCopyToClipboard(m.copy, kv)
		}
	}
	return m, nil
}

func (m *browserModel) move(delta int) {
	if m.focus == paneSections {
		next := m.secIdx + delta
		if next >= 0 && next < len(m.sections) {
			m.secIdx = next
			m.entryIdx = 0
		}
		return
	}

	sec, ok := m.currentSection()
	if !ok {
		return
	}
	next := m.entryIdx + delta
	if next >= 0 && next < len(sec.entries) {
		m.entryIdx = next
	}
}

func (m browserModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo, m.usingDefaults)
	}

	var b strings.Builder
	if m.defaultsNotice != "" {
		b.WriteString(warnStyle.Render(m.defaultsNotice))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewSections(), " ", m.viewEntries()))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(m.title, b.String(), "↑/↓ move  tab/←/→ switch pane  c copy value  v about")
}

func (m browserModel) viewSections() string {
	var b strings.Builder
	if len(m.sections) == 0 {
		b.WriteString("No sections")
	}
	for i, sec := range m.sections {
		line := fitText(fmt.Sprintf("%s (%d)", sec.name, len(sec.entries)), sectionPaneWidth)
		if i == m.secIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(m.sections)-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if m.focus == paneSections {
		style = activePane
	}
	return style.Width(sectionPaneWidth).Render(b.String())
}

func (m browserModel) viewEntries() string {
	var b strings.Builder

	sec, ok := m.currentSection()
	switch {
	case !ok:
		b.WriteString("-")
	case len(sec.entries) == 0:
		b.WriteString("No entries")
	}

	for i, kv := range sec.entries {
		line := fmt.Sprintf("%s = %s", kv.Key, fitText(showValue(kv.Value), valueWidth))
		if i == m.entryIdx && m.focus == paneEntries {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(sec.entries)-1 {
			b.WriteString("\n")
		}
	}

	style := paneStyle
	if m.focus == paneEntries {
		style = activePane
	}
	return style.Render(b.String())
}

func cmdCopyToClipboard(copyFn func(string) error, kv settings.KeyValue) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(kv.Value); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{key: kv.Key}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
