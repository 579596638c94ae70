// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's view of a relay.
//
// [RelayAdapter] decouples the chat UI from the transport; the package ships
// an HTTP implementation over resty ([NewHTTPRelayAdapter]). Non-2xx
// responses are mapped to the sentinel errors of errors.go by mapHTTPError so
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-llm-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter talks to a relay on behalf of one user.
type RelayAdapter interface {
	// SendMessage posts text (a command or free text) and returns every
	// reply the relay produced for it, in order.
	SendMessage(ctx context.Context, text string) ([]models.Reply, error)

	// Providers returns the names of the backends the relay offers.
	Providers(ctx context.Context) ([]string, error)

	// Version returns the build information of the relay.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
