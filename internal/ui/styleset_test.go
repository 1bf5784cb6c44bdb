// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

// sgrParams returns the parameters of the first SGR sequence in s.
func sgrParams(t *testing.T, s string) []string {
	t.Helper()
	if !strings.HasPrefix(s, "\x1b[") {
		t.Fatalf("output %q does not start with an escape sequence", s)
	}
	end := strings.IndexByte(s, 'm')
	if end < 0 {
		t.Fatalf("output %q has no SGR terminator", s)
	}
	return strings.Split(s[2:end], ";")
}

func hasParam(params []string, p string) bool {
	for _, v := range params {
		if v == p {
			return true
		}
	}
	return false
}

func TestNewStyleSetTrueColor(t *testing.T) {
	set := NewStyleSet(DarkTheme(), enabledSettings(DepthTrueColor))

	if set.Profile != termenv.TrueColor {
		t.Errorf("Profile = %v, want %v", set.Profile, termenv.TrueColor)
	}

	tests := []struct {
		name    string
		got     string
		triplet string
		attr    string
	}{
		{"Title", set.Title.Render("ok"), "38;2;100;181;246", "1"},
		{"Success", set.Success.Render("ok"), "38;2;129;199;132", "1"},
		{"Error", set.Error.Render("ok"), "38;2;239;83;80", "1"},
		{"Muted", set.Muted.Render("ok"), "38;2;158;158;158", ""},
		{"Emphasis", set.Emphasis.Render("ok"), "38;2;255;255;255", "1"},
		{"Link", set.Link.Render("ok"), "38;2;100;181;246", "4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(tc.got, tc.triplet) {
				t.Errorf("Render = %q, want foreground %s", tc.got, tc.triplet)
			}
			if tc.attr != "" && !hasParam(sgrParams(t, tc.got), tc.attr) {
				t.Errorf("Render = %q, want SGR attribute %s", tc.got, tc.attr)
			}
		})
	}
}

func TestNewStyleSetQuantizes(t *testing.T) {
	// #9e9e9e lands on ANSI index 8 at 16 colors and grayscale
	// index 247 at 256 colors, matching Renderer output.
	set16 := NewStyleSet(DarkTheme(), enabledSettings(Depth16))
	if got := set16.Muted.Render("x"); !strings.Contains(got, "\x1b[90m") {
		t.Errorf("16-color muted = %q, want bright-black sequence", got)
	}

	set256 := NewStyleSet(DarkTheme(), enabledSettings(Depth256))
	if got := set256.Muted.Render("x"); !strings.Contains(got, "38;5;247") {
		t.Errorf("256-color muted = %q, want grayscale index 247", got)
	}
}

func TestNewStyleSetDisabledIsPlain(t *testing.T) {
	settings := []Settings{
		{Depth: DepthTrueColor, ColorEnabled: false},
		{Depth: DepthNone, ColorEnabled: true},
	}

	for _, s := range settings {
		set := NewStyleSet(DarkTheme(), s)
		if set.Profile != termenv.Ascii {
			t.Errorf("Profile = %v, want %v", set.Profile, termenv.Ascii)
		}
		for name, st := range map[string]string{
			"Title": set.Title.Render("plain"),
			"Error": set.Error.Render("plain"),
			"Link":  set.Link.Render("plain"),
		} {
			if st != "plain" {
				t.Errorf("%s.Render with color off = %q, want passthrough", name, st)
			}
		}
	}
}

func TestNewStyleSetUsesThemePalette(t *testing.T) {
	colors := fullSlotMap()
	colors[SlotSuccess] = Color{1, 2, 3}
	theme, err := NewCustomTheme("probe", colors, nil)
	if err != nil {
		t.Fatalf("NewCustomTheme() error = %v", err)
	}

	set := NewStyleSet(theme, enabledSettings(DepthTrueColor))
	if got := set.Success.Render("x"); !strings.Contains(got, "38;2;1;2;3") {
		t.Errorf("Success.Render = %q, want custom palette color", got)
	}
}
