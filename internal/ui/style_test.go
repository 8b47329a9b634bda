package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Use TrueColor to properly test hex color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestStyles_Colors(t *testing.T) {
	// Error Style (Red - 196)
	errText := Error("Error Message")
	if !strings.Contains(errText, "196") { // Lipgloss uses 38;5;196m
		t.Errorf("Expected error text to contain color 196, got %q", errText)
	}

	// Success Style (Green - 46)
	okText := Success("All good")
	if !strings.Contains(okText, "46") {
		t.Errorf("Expected success text to contain color 46, got %q", okText)
	}

	// Warning Style (Orange - 214)
	warnText := Warning("Heads up")
	if !strings.Contains(warnText, "214") {
		t.Errorf("Expected warning text to contain color 214, got %q", warnText)
	}
}

func TestHeader_BrandColor(t *testing.T) {
	headerText := Header("Benchmark Gate Report")

	if !strings.Contains(headerText, "Benchmark Gate Report") {
		t.Fatal("Header text missing")
	}

	// #7D56F4 = RGB(125, 86, 244) which becomes 48;2;125;86;244m for the
	// background in TrueColor mode.
	if !strings.Contains(headerText, "48;2;125;86;244") {
		t.Errorf("Header missing brand color #7D56F4, got %q", headerText)
	}
}

func TestDetail_MutedColor(t *testing.T) {
	detailText := Detail("baseline: .benchgate/baseline.json")
	if !strings.Contains(detailText, "252") {
		t.Errorf("Expected detail text to contain color 252, got %q", detailText)
	}
}
