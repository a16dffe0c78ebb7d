package launcher

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-launcher/internal/config"
	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/internal/tui"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type stubBrowser struct {
	calls int
	err   error
}

func (b *stubBrowser) Browse() error {
	b.calls++
	return b.err
}

func newTestApp(t *testing.T, path string, cfg config.Maintenance, ui Browser) (*App, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	app, err := NewApp(settings.New(log, settings.WithFile(path)), ui, cfg, log)
	require.NoError(t, err)
	return app, &buf
}

func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), settings.DefaultFileName)
}

// ── NewApp ────────────────────────────────────────────────────────────────────

func TestNewApp_RequiresSettings(t *testing.T) {
	_, err := NewApp(nil, nil, config.Maintenance{}, logger.Nop())
	assert.Error(t, err)
}

func TestNewApp_ViewWithoutBrowser(t *testing.T) {
	s := settings.New(logger.Nop(), settings.WithFile(configPath(t)))
	_, err := NewApp(s, nil, config.Maintenance{View: true}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoBrowser)
}

// ── Run ───────────────────────────────────────────────────────────────────────

func TestRun_MissingFileWarnsAndUsesDefaults(t *testing.T) {
	app, buf := newTestApp(t, configPath(t), config.Maintenance{}, nil)

	require.NoError(t, app.Run())

	out := buf.String()
	assert.Contains(t, out, "启动器使用默认参数")
	assert.Contains(t, out, "欢迎来到wow wild")
	assert.Contains(t, out, "default-active")
	assert.True(t, app.settings.IsDefault())
}

func TestRun_LoadedFileDoesNotWarn(t *testing.T) {
	path := configPath(t)
	content := `<?xml version="1.0" encoding="utf-8"?>
<Config>
  <Messages>
    <HelloMessage>Hello from file</HelloMessage>
    <XmlNotOpened>should not appear</XmlNotOpened>
  </Messages>
</Config>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	app, buf := newTestApp(t, path, config.Maintenance{}, nil)
	require.NoError(t, app.Run())

	out := buf.String()
	assert.Contains(t, out, "Hello from file")
	assert.NotContains(t, out, "should not appear")
	assert.False(t, app.settings.IsDefault())
}

func TestRun_WriteDefaultThenLoad(t *testing.T) {
	path := configPath(t)
	app, _ := newTestApp(t, path, config.Maintenance{WriteDefault: true}, nil)

	require.NoError(t, app.Run())

	assert.FileExists(t, path)
	assert.False(t, app.settings.IsDefault(), "the freshly written file is loaded")
}

func TestRun_WriteDefaultKeepsExistingFile(t *testing.T) {
	path := configPath(t)
	require.NoError(t, os.WriteFile(path, []byte("<Config/>"), 0o644))

	app, buf := newTestApp(t, path, config.Maintenance{WriteDefault: true}, nil)
	require.NoError(t, app.Run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<Config/>", string(data))
	assert.Contains(t, buf.String(), "pass -force to replace it")
}

func TestRun_WriteDefaultForceReplaces(t *testing.T) {
	path := configPath(t)
	require.NoError(t, os.WriteFile(path, []byte("<Config/>"), 0o644))

	app, _ := newTestApp(t, path, config.Maintenance{WriteDefault: true, Force: true}, nil)
	require.NoError(t, app.Run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Main")
}

func TestRun_DumpLogsEveryValue(t *testing.T) {
	app, buf := newTestApp(t, configPath(t), config.Maintenance{Dump: true}, nil)

	require.NoError(t, app.Run())

	out := buf.String()
	assert.Contains(t, out, "dumping configuration values")
	assert.Contains(t, out, `"key":"FilelistPath"`)
}

func TestRun_ViewOpensBrowser(t *testing.T) {
	ui := &stubBrowser{}
	app, _ := newTestApp(t, configPath(t), config.Maintenance{View: true}, ui)

	require.NoError(t, app.Run())
	assert.Equal(t, 1, ui.calls)
}

func TestRun_BrowserError(t *testing.T) {
	ui := &stubBrowser{err: errors.New("no tty")}
	app, _ := newTestApp(t, configPath(t), config.Maintenance{View: true}, ui)

	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}

func TestRun_UserQuitIsCleanExit(t *testing.T) {
	ui := &stubBrowser{err: tui.ErrUserQuit}
	app, _ := newTestApp(t, configPath(t), config.Maintenance{View: true}, ui)

	require.NoError(t, app.Run())
	assert.Equal(t, 1, ui.calls)
}
