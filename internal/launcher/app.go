package launcher

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-launcher/internal/config"
	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/internal/tui"
)

var ErrNoBrowser = errors.New("configuration browser requested but not available")

var (
	_ Launcher = (*App)(nil)
	_ Browser  = (*tui.TUI)(nil)
)

type App struct {
	settings *settings.Service
	ui       Browser
	cfg      config.Maintenance
	log      *logger.Logger
}

func NewApp(s *settings.Service, ui Browser, cfg config.Maintenance, log *logger.Logger) (*App, error) {
	if s == nil {
		return nil, errors.New("settings service is required")
	}
	if cfg.View && ui == nil {
		return nil, ErrNoBrowser
	}

	return &App{settings: s, ui: ui, cfg: cfg, log: log}, nil
}

func (a *App) Run() error {
	if a.cfg.WriteDefault {
		if err := a.settings.WriteDefault(a.cfg.Force); err != nil {
			if errors.Is(err, settings.ErrFileExists) {
				a.log.Warn().Err(err).Msg("configuration file kept, pass -force to replace it")
			} else {
				return fmt.Errorf("write default configuration: %w", err)
			}
		}
	}

	a.settings.Init()
	a.log.Info().
		Str("state", a.settings.State().String()).
		Str("version", settings.FormatVersion(settings.Version)).
		Msg("launcher configuration ready")

	if a.settings.IsDefault() {
		a.log.Warn().Err(a.settings.LoadError()).
			Msg(a.settings.ValueOf(settings.SectionMessages, "XmlNotOpened"))
	}
	a.log.Info().Msg(a.settings.ValueOf(settings.SectionMessages, "HelloMessage"))

	flags := a.settings.Flags()
	a.log.Debug().
		Bool("delete_cache", flags.DeleteCache).
		Bool("keep_backups", flags.KeepBackups).
		Bool("keep_blizzlike_mpqs", flags.KeepBlizzlikeMPQs).
		Bool("forced_realmlist", flags.ForcedRealmlist).
		Bool("file_processing_outputs", flags.FileProcessingOutputs).
		Msg("main flags")

	if a.cfg.Dump {
		a.settings.OutputContent()
	}

	if a.cfg.View {
		err := a.ui.Browse()
		switch {
		case errors.Is(err, tui.ErrUserQuit):
			a.log.Debug().Msg("configuration browser closed")
		case err != nil:
			return fmt.Errorf("browse configuration: %w", err)
		}
	}

	return nil
}
