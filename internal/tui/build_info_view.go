// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-launcher/internal/settings"
	"github.com/MKhiriev/go-launcher/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, usingDefaults bool) string {
	var b strings.Builder

	b.WriteString("Launcher version: ")
	b.WriteString(settings.FormatVersion(settings.Version))
	b.WriteString("\n")
	b.WriteString("Build: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Configuration: ")
	if usingDefaults {
		b.WriteString("built-in defaults")
	} else {
		b.WriteString(settings.DefaultFileName)
	}

	return renderPage("ABOUT", overlayStyle.Render(b.String()), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
