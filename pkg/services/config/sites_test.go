package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

func writeSitesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistry_GetProfile(t *testing.T) {
	ctx := context.Background()
	path := writeSitesFile(t, `
[office]
interface = wlp3s0
network = 192.168.1.0/24
band = 5GHz
anchors = 0,0; 80,0; 40,70
nmap = true
ssdp = false

[warehouse]
network = 10.20.0.0/16
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	t.Run("success - full profile", func(t *testing.T) {
		profile, err := registry.GetProfile(ctx, "office")
		require.NoError(t, err)

		assert.Equal(t, "office", profile.Name)
		assert.Equal(t, "wlp3s0", profile.Interface)
		assert.Equal(t, "192.168.1.0/24", profile.Network)
		assert.Equal(t, domain.Band5GHz, profile.Band)
		assert.True(t, profile.NmapScan)
		assert.False(t, profile.SSDPScan)
		require.Len(t, profile.Anchors, 3)
		assert.Equal(t, domain.Position{X: 80, Y: 0}, profile.Anchors[1])
	})

	t.Run("success - sparse section gets defaults", func(t *testing.T) {
		profile, err := registry.GetProfile(ctx, "warehouse")
		require.NoError(t, err)

		assert.Equal(t, "wlan0", profile.Interface)
		assert.Equal(t, "10.20.0.0/16", profile.Network)
		assert.False(t, profile.NmapScan)
		assert.True(t, profile.SSDPScan, "ssdp defaults on")
		assert.Empty(t, profile.Anchors)
	})

	t.Run("success - default profile without a file lookup", func(t *testing.T) {
		for _, site := range []string{"", "default"} {
			profile, err := registry.GetProfile(ctx, site)
			require.NoError(t, err)
			assert.Equal(t, DefaultProfile(), profile)
		}
	})

	t.Run("error - unknown site", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "basement")
		assert.EqualError(t, err, "site basement not found")
	})
}

func TestRegistry_GetProfile_BadAnchors(t *testing.T) {
	ctx := context.Background()
	path := writeSitesFile(t, `
[office]
anchors = 0,0; 80
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetProfile(ctx, "office")
	assert.ErrorContains(t, err, `invalid anchor "80"`)
}

func TestRegistry_GetSites(t *testing.T) {
	ctx := context.Background()
	path := writeSitesFile(t, `
[office]
interface = wlan0

[warehouse]
network = 10.20.0.0/16
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	sites, err := registry.GetSites(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"office", "warehouse"}, sites)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	registry, err := NewRegistry(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err, "a missing file still yields an empty registry")

	sites, err := registry.GetSites(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sites)

	profile, err := registry.GetProfile(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, "wlan0", profile.Interface)
}

func TestParseAnchors(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    []domain.Position
		expectedErr string
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "single pair", raw: "5,10", expected: []domain.Position{{X: 5, Y: 10}}},
		{
			name:     "spaced pairs",
			raw:      " 0,0 ; 100 , 0 ",
			expected: []domain.Position{{X: 0, Y: 0}, {X: 100, Y: 0}},
		},
		{name: "missing coordinate", raw: "1,2;3", expectedErr: `invalid anchor "3"`},
		{name: "non-numeric", raw: "a,b", expectedErr: `invalid anchor "a,b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchors, err := parseAnchors(tt.raw)
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, anchors)
		})
	}
}
