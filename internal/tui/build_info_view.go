// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-llm-relay/models"
)

// renderBuildInfo is the header suffix describing the connected relay.
func renderBuildInfo(info models.AppBuildInfo) string {
	if strings.TrimSpace(info.Version) == "" {
		return "relay: N/A"
	}

	var b strings.Builder
	b.WriteString("relay ")
	b.WriteString(info.Version)
	if commit := strings.TrimSpace(info.Commit); commit != "" {
		b.WriteString(" (")
		b.WriteString(fitText(commit, 7))
		b.WriteString(")")
	}
	return b.String()
}
