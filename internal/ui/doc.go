// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui is the terminal presentation layer: themes, capability
// detection, preference resolution and styled rendering.
//
// The package is built around one rule: output never fails. Parsing a
// user-supplied color can fail, resolving preferences cannot; by the
// time text is rendered every fallible decision has already been made
// and the renderer is a total function from (theme, settings, text) to
// bytes.
//
// # Pipeline
//
// Assembly runs in a fixed order:
//   - Detect reads the environment (NO_COLOR, FORCE_COLOR, COLORTERM,
//     TERM, locale, COLORFGBG) into a Capability snapshot. It never
//     writes to the terminal.
//   - Resolver folds environment overrides, persisted preferences and
//     the capability snapshot into Settings. Invalid inputs are logged
//     and skipped, never fatal.
//   - The resolved theme name is bound against a ThemeSet holding the
//     built-ins plus any registered custom themes.
//   - Renderer (or StyleSet, for lipgloss consumers) turns slots and
//     decorations into escape sequences, quantizing colors to the
//     active depth with the nearest-match tables in this package.
//
// # Usage
//
// Most callers want the one-shot assembly:
//
//	ctx := ui.NewContext()
//	fmt.Println(ctx.Success("build passed"))
//	fmt.Println(ctx.Style("42 warnings", ui.SlotWarning, ui.Bold))
//
// Pieces can be used separately when embedding:
//
//	settings := ui.NewResolver(themes, logger).Resolve(prefs, ui.Detect())
//	r := ui.NewRenderer(theme, settings)
//
// Contexts are immutable snapshots. React to a changed environment or
// an edited preference file by building a new one.
package ui
