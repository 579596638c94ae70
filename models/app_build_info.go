// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown by
// the /api/version endpoint and the terminal client for diagnostics.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Linker placeholders ("N/A" or empty) are normalized to empty strings.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: known(buildVersion),
		Date:    known(buildDate),
		Commit:  known(buildCommit),
	}
}

func known(v string) string {
	if v == "N/A" {
		return ""
	}
	return v
}
