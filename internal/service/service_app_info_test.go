package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.App
		build       models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{
			name:        "build version",
			build:       models.NewAppBuildInfo("v1.2.0", "2026-01-02", "abc123"),
			wantVersion: "v1.2.0",
		},
		{
			name:        "config overrides build",
			cfg:         config.App{Version: "v2.0.0"},
			build:       models.NewAppBuildInfo("v1.2.0", "N/A", "N/A"),
			wantVersion: "v2.0.0",
		},
		{
			name:    "linker placeholder only",
			build:   models.NewAppBuildInfo("N/A", "N/A", "N/A"),
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()).Version)
		})
	}
}

func TestAppInfoService_KeepsBuildMetadata(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("v1", "2026-01-02", "N/A"), logger.Nop())
	require.NoError(t, err)

	info := svc.GetAppVersion(context.Background())
	assert.Equal(t, models.AppBuildInfo{Version: "v1", Date: "2026-01-02"}, info)
}
