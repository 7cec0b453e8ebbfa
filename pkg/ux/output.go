// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides the terminal surface of the Ghost Protocol:
// styled output, timed horror effects, interactive input with history,
// and the Presenter implementation the game engine renders through.
package ux

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ghost Protocol color palette - phosphor greens over a dead-channel dark
var (
	// Primary palette (brightest to darkest)
	ColorPhosphor   = lipgloss.Color("#39FF6A") // Bright phosphor green - success, highlights
	ColorTerminal   = lipgloss.Color("#2ECC71") // Terminal green - primary text accents
	ColorSpectral   = lipgloss.Color("#9B59B6") // Spectral violet - ghost voices, flavor
	ColorBloodDim   = lipgloss.Color("#922B21") // Dried blood - low-sanity accents
	ColorStaticGray = lipgloss.Color("#7F8C8D") // Static gray - muted text

	// Semantic colors
	ColorSuccess = lipgloss.Color("#39FF6A") // Phosphor green for success
	ColorWarning = lipgloss.Color("#F4D03F") // Amber for warnings
	ColorError   = lipgloss.Color("#E74C3C") // Red for errors and scares
	ColorHint    = lipgloss.Color("#F4D03F") // Amber for hints
	ColorMuted   = lipgloss.Color("#7F8C8D") // Static gray for muted text
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
	Spectral lipgloss.Style

	// Box styles
	HintBox  lipgloss.Style
	ScareBox lipgloss.Style

	// Status indicators
	StatusDone    lipgloss.Style
	StatusOpen    lipgloss.Style
	StatusWarning lipgloss.Style
}{
	// Text styles
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorPhosphor),
	Subtitle: lipgloss.NewStyle().Foreground(ColorTerminal),
	Bold:     lipgloss.NewStyle().Bold(true),
	Muted:    lipgloss.NewStyle().Foreground(ColorStaticGray),
	Success:  lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
	Error:    lipgloss.NewStyle().Foreground(ColorError),
	Hint:     lipgloss.NewStyle().Foreground(ColorHint),
	Spectral: lipgloss.NewStyle().Foreground(ColorSpectral).Italic(true),

	// Box styles
	HintBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorHint).
		Padding(0, 1),
	ScareBox: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorBloodDim).
		Padding(0, 1),

	// Status indicators
	StatusDone:    lipgloss.NewStyle().SetString("✓").Foreground(ColorSuccess),
	StatusOpen:    lipgloss.NewStyle().SetString("○").Foreground(ColorStaticGray),
	StatusWarning: lipgloss.NewStyle().SetString("⚠").Foreground(ColorWarning),
}

// Icon provides themed status icons
type Icon string

const (
	IconDone    Icon = "✓"
	IconOpen    Icon = "○"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconHint    Icon = "💡"
	IconSkull   Icon = "💀"
	IconGhost   Icon = "👻"
	IconArrow   Icon = "→"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconDone:
		return Styles.Success.Render(string(i))
	case IconWarning, IconHint:
		return Styles.Warning.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	case IconOpen:
		return Styles.Muted.Render(string(i))
	default:
		return string(i)
	}
}

// Print helpers that respect the atmosphere level

// Title prints a styled title
func Title(text string) {
	if GetAtmosphere().Level == AtmospherePlain {
		fmt.Println(text)
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	switch GetAtmosphere().Level {
	case AtmospherePlain:
		fmt.Fprintf(os.Stdout, "OK: %s\n", text)
	case AtmosphereMinimal:
		fmt.Printf("%s %s\n", IconDone.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconDone.Render(), Styles.Success.Render(text))
	}
}

// Warning prints a warning message
func Warning(text string) {
	switch GetAtmosphere().Level {
	case AtmospherePlain:
		fmt.Fprintf(os.Stderr, "WARN: %s\n", text)
	case AtmosphereMinimal:
		fmt.Printf("%s %s\n", IconWarning.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconWarning.Render(), Styles.Warning.Render(text))
	}
}

// Error prints an error message
func Error(text string) {
	switch GetAtmosphere().Level {
	case AtmospherePlain:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", text)
	case AtmosphereMinimal:
		fmt.Printf("%s %s\n", IconError.Render(), text)
	default:
		fmt.Printf("%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}

// Info prints an informational message
func Info(text string) {
	if GetAtmosphere().Level == AtmospherePlain {
		fmt.Println(text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Muted.Render("│"), text)
}

// Muted prints muted/secondary text
func Muted(text string) {
	if GetAtmosphere().Level == AtmospherePlain {
		fmt.Println(text)
		return
	}
	fmt.Println(Styles.Muted.Render(text))
}

// Banner returns a framed banner with each line centered to the frame
// width.
func Banner(text string, style lipgloss.Style) string {
	if GetAtmosphere().Level == AtmospherePlain {
		return text
	}
	const inner = 75
	rows := []string{"╔" + strings.Repeat("═", inner) + "╗"}
	for _, line := range strings.Split(text, "\n") {
		pad := inner - len([]rune(line))
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		rows = append(rows, "║"+strings.Repeat(" ", left)+line+strings.Repeat(" ", pad-left)+"║")
	}
	rows = append(rows, "╚"+strings.Repeat("═", inner)+"╝")
	return style.Render(strings.Join(rows, "\n"))
}

// Separator prints a horizontal rule
func Separator() {
	if GetAtmosphere().Level == AtmospherePlain {
		fmt.Println(strings.Repeat("-", 40))
		return
	}
	fmt.Println(Styles.Muted.Render(strings.Repeat("─", 76)))
}

// ProgressBar renders labeled progress as "label: [███░░] cur/total".
func ProgressBar(label string, current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	if GetAtmosphere().Level == AtmospherePlain {
		return fmt.Sprintf("%s: %d/%d", label, current, total)
	}
	filled := current * width / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s: [%s] %d/%d", label, bar, current, total)
}
