// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// startWatcher runs a watcher over dir and returns the snapshot
// channel. The rate limiter is opened up so tests are not pacing
// against wall-clock reload intervals.
func startWatcher(t *testing.T, dir string) <-chan *Config {
	t.Helper()

	loaded := make(chan *Config, 8)
	w, err := NewWatcher(dir, nil, func(cfg *Config) {
		loaded <- cfg
	})
	require.NoError(t, err)
	w.limiter = rate.NewLimiter(rate.Inf, 1)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Run(ctx)

	return loaded
}

func waitForSnapshot(t *testing.T, ch <-chan *Config) *Config {
	t.Helper()
	select {
	case cfg := <-ch:
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
		return nil
	}
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatcherReloadsOnSave(t *testing.T) {
	dir := t.TempDir()
	loaded := startWatcher(t, dir)

	require.NoError(t, SaveTo(dir, &Config{Preferences: Preferences{Theme: "light"}}))

	cfg := waitForSnapshot(t, loaded)
	require.NotNil(t, cfg)
	assert.Equal(t, "light", cfg.Preferences.Theme)
}

func TestWatcherDeliversNilOnRemove(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveTo(dir, &Config{Preferences: Preferences{Theme: "light"}}))

	loaded := startWatcher(t, dir)

	require.NoError(t, os.Remove(filepath.Join(dir, "ui.toml")))

	cfg := waitForSnapshot(t, loaded)
	assert.Nil(t, cfg, "removing the file should deliver a nil snapshot")
}

func TestWatcherSurvivesMalformedWrite(t *testing.T) {
	dir := t.TempDir()
	loaded := startWatcher(t, dir)

	// A half-written file must not kill the watcher.
	writeFile(t, dir, "ui.toml", "[preferences\nbroken")
	time.Sleep(600 * time.Millisecond)

	require.NoError(t, SaveTo(dir, &Config{Preferences: Preferences{Theme: "dark"}}))

	cfg := waitForSnapshot(t, loaded)
	require.NotNil(t, cfg)
	assert.Equal(t, "dark", cfg.Preferences.Theme)
}

func TestWatchDeliversSnapshot(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loaded := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, func(cfg *Config) { loaded <- cfg })
	}()

	// Give the watch a moment to install before the write lands.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, SaveTo(dir, &Config{Preferences: Preferences{Theme: "light"}}))

	cfg := waitForSnapshot(t, loaded)
	require.NotNil(t, cfg)
	assert.Equal(t, "light", cfg.Preferences.Theme)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Watch to return")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent"), func(*Config) {})
	require.Error(t, err)
}

func TestIsPreferenceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/home/u/.swissarmyhammer/ui.toml", true},
		{"/home/u/.swissarmyhammer/ui.yaml", true},
		{"ui.toml", true},
		{"/home/u/.swissarmyhammer/.tmp-12345", false},
		{"/home/u/.swissarmyhammer/other.toml", false},
		{"/home/u/.swissarmyhammer/ui.json", false},
	}

	for _, tc := range tests {
		if got := isPreferenceFile(tc.path); got != tc.want {
			t.Errorf("isPreferenceFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
