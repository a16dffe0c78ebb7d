// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var ErrNoSettings = errors.New("no settings to browse")

func humanizeClipboardError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "no clipboard utilities available") ||
		strings.Contains(s, "executable file not found") {
		return "Clipboard is not available on this system"
	}

	return err.Error()
}
