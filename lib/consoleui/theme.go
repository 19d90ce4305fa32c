// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the console. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected table row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Field labels and input chrome.
	LabelForeground   lipgloss.Color
	FocusedForeground lipgloss.Color

	// Validation and server errors.
	ErrorForeground lipgloss.Color

	// Transient success notices.
	SuccessForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Modal dialogs.
	ModalBackground lipgloss.Color
	ModalForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	LabelForeground:   lipgloss.Color("250"),
	FocusedForeground: lipgloss.Color("75"), // blue

	ErrorForeground:   lipgloss.Color("196"), // bright red
	SuccessForeground: lipgloss.Color("114"), // green

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ModalBackground: lipgloss.Color("237"),
	ModalForeground: lipgloss.Color("252"),
}
