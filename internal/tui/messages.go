package tui

import (
	"github.com/MKhiriev/go-llm-relay/models"
)

type repliesMsg struct {
	replies []models.Reply
	err     error
}

type versionMsg struct {
	info models.AppBuildInfo
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
