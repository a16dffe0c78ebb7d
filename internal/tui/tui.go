// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive configuration browser opened with
// the -view maintenance flag. It only reads settings.
package tui

import (
	"errors"
	"iter"

	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Browse] when the user closes the browser.
var ErrUserQuit = errors.New("user quit the configuration browser")

// Settings is the read-only view of the configuration the browser needs.
type Settings interface {
	DumpAll() iter.Seq2[string, []settings.KeyValue]
	IsDefault() bool
	ValueOf(section, key string) string
}

type TUI struct {
	settings  Settings
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

func New(s Settings, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if s == nil {
		return nil, ErrNoSettings
	}
	return &TUI{settings: s, buildInfo: buildInfo, log: log}, nil
}

// Browse runs the browser until the user leaves it.
func (t *TUI) Browse() error {
	model := newBrowserModel(t.settings, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(browserModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.lastErr != nil {
		t.log.Warn().Err(result.lastErr).Msg("configuration browser error")
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
