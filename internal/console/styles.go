package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Theme defines the colours of the letter tiles and messages.
type Theme struct {
	Correct lipgloss.Color
	Present lipgloss.Color
	Absent  lipgloss.Color
	Tile    lipgloss.Color // tile text
	Success lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
}

// DefaultTheme returns the classic green / yellow / grey palette.
func DefaultTheme() Theme {
	return Theme{
		Correct: lipgloss.Color("#538D4E"),
		Present: lipgloss.Color("#B59F3B"),
		Absent:  lipgloss.Color("#3A3A3C"),
		Tile:    lipgloss.Color("#FFFFFF"),
		Success: lipgloss.Color("#A6E3A1"),
		Error:   lipgloss.Color("#F38BA8"),
		Muted:   lipgloss.Color("#6C7086"),
	}
}

// Styles contains pre-configured lipgloss styles bound to one writer.
type Styles struct {
	Correct lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles for w. With color false every style renders
// its input unchanged.
func NewStyles(w io.Writer, theme Theme, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return Styles{Correct: plain, Present: plain, Absent: plain, Success: plain, Error: plain, Muted: plain}
	}

	tile := r.NewStyle().Bold(true).Padding(0, 1).Foreground(theme.Tile)
	return Styles{
		Correct: tile.Background(theme.Correct),
		Present: tile.Background(theme.Present),
		Absent:  tile.Background(theme.Absent),
		Success: r.NewStyle().Foreground(theme.Success).Bold(true),
		Error:   r.NewStyle().Foreground(theme.Error),
		Muted:   r.NewStyle().Foreground(theme.Muted),
	}
}

// Tile returns the style for a mark.
func (s Styles) Tile(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkCorrect:
		return s.Correct
	case game.MarkPresent:
		return s.Present
	default:
		return s.Absent
	}
}
