package tui

import (
	"errors"
	"iter"
	"testing"

	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type stubSection struct {
	name    string
	entries []settings.KeyValue
}

type stubSettings struct {
	sections     []stubSection
	isDefault    bool
	windowName   string
	xmlNotOpened string
}

func (s *stubSettings) DumpAll() iter.Seq2[string, []settings.KeyValue] {
	return func(yield func(string, []settings.KeyValue) bool) {
		for _, sec := range s.sections {
			if !yield(sec.name, sec.entries) {
				return
			}
		}
	}
}

func (s *stubSettings) IsDefault() bool { return s.isDefault }

func (s *stubSettings) ValueOf(section, key string) string {
	switch {
	case section == settings.SectionMainWindow && key == "WindowName":
		return s.windowName
	case section == settings.SectionMessages && key == "XmlNotOpened":
		return s.xmlNotOpened
	}
	return ""
}

func sampleSettings() *stubSettings {
	return &stubSettings{
		windowName:   "Sirus Launcher",
		xmlNotOpened: "Launcher uses default parameters.",
		sections: []stubSection{
			{name: "Main", entries: []settings.KeyValue{
				{Key: "DeleteCache", Value: "1"},
				{Key: "KeepBackups", Value: "0"},
			}},
			{name: "Paths", entries: []settings.KeyValue{
				{Key: "Webpage", Value: "https://example.org"},
			}},
			{name: "Empty"},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m browserModel, msg tea.Msg) (browserModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(browserModel)
	require.True(t, ok)
	return bm, cmd
}

// ── construction ──────────────────────────────────────────────────────────────

func TestNew_NilSettings(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoSettings)
}

func TestNewBrowserModel_CollectsSections(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})

	require.Len(t, m.sections, 3)
	assert.Equal(t, "Main", m.sections[0].name)
	assert.Len(t, m.sections[0].entries, 2)
	assert.Equal(t, "Sirus Launcher", m.title)
	assert.False(t, m.usingDefaults)
}

func TestNewBrowserModel_FallbackTitle(t *testing.T) {
	s := sampleSettings()
	s.windowName = ""

	m := newBrowserModel(s, models.AppBuildInfo{})
	assert.Equal(t, "Launcher configuration", m.title)
}

// ── navigation ────────────────────────────────────────────────────────────────

func TestBrowser_MoveBetweenSections(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.secIdx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.secIdx, "cursor stops at the last section")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.secIdx)
}

func TestBrowser_MoveWithinEntries(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, paneEntries, m.focus)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.entryIdx)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.entryIdx, "cursor stops at the last entry")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, paneSections, m.focus)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.entryIdx, "switching section resets the entry cursor")
}

func TestBrowser_QuitKey(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})

	m, cmd := press(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitByUser)
}

func TestBrowser_QuitFromInfoOverlay(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})

	m, _ = press(t, m, keyRunes("v"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
}

// ── copy ──────────────────────────────────────────────────────────────────────

func TestBrowser_CopySelectedValue(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})
	var copied string
	m.copy = func(v string) error {
		copied = v
		return nil
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := press(t, m, keyRunes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, copiedMsg{key: "Webpage"}, msg)
	assert.Equal(t, "https://example.org", copied)

	m, clearCmd := press(t, m, msg)
	assert.Equal(t, "Copied Webpage", m.status)
	assert.NotNil(t, clearCmd)

	m, _ = press(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestBrowser_CopyFailure(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})
	m.copy = func(string) error {
		return errors.New("exec: \"xclip\": executable file not found in $PATH")
	}

	_, cmd := press(t, m, keyRunes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, copyFailedMsg{}, msg)

	m, _ = press(t, m, msg)
	assert.Equal(t, "Clipboard is not available on this system", m.status)
	assert.Error(t, m.lastErr)
}

func TestBrowser_CopyOnEmptySectionDoesNothing(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})
	m.secIdx = 2

	_, cmd := press(t, m, keyRunes("c"))
	assert.Nil(t, cmd)
}

// ── view ──────────────────────────────────────────────────────────────────────

func TestBrowser_ViewShowsEntries(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.AppBuildInfo{})

	out := m.View()
	assert.Contains(t, out, "Sirus Launcher")
	assert.Contains(t, out, "Main (2)")
	assert.Contains(t, out, "DeleteCache = 1")
	assert.NotContains(t, out, "Launcher uses default parameters.")
}

func TestBrowser_ViewWarnsOnDefaults(t *testing.T) {
	s := sampleSettings()
	s.isDefault = true

	out := newBrowserModel(s, models.AppBuildInfo{}).View()
	assert.Contains(t, out, "Launcher uses default parameters.")
}

func TestBrowser_DefaultsNoticeComesFromSettings(t *testing.T) {
	s := sampleSettings()
	s.isDefault = true
	s.xmlNotOpened = "启动器使用默认参数。"

	m := newBrowserModel(s, models.AppBuildInfo{})
	assert.Equal(t, "启动器使用默认参数。", m.defaultsNotice)
	assert.Contains(t, m.View(), "启动器使用默认参数。")
}

func TestBrowser_InfoOverlay(t *testing.T) {
	m := newBrowserModel(sampleSettings(), models.NewAppBuildInfo("v1.2.3", "", "abc123"))

	m, _ = press(t, m, keyRunes("v"))
	require.True(t, m.showInfo)

	out := m.View()
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "20240101.00")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)
}

// ── helpers under test ────────────────────────────────────────────────────────

func TestShowValue(t *testing.T) {
	assert.Equal(t, "(empty)", showValue(""))
	assert.Equal(t, "plain", showValue("plain"))
	assert.Equal(t, "« padded »", showValue(" padded "))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "аб", fitText("абвг", 2))
}
