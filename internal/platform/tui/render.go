package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mshamp4/ConnectFourRemote/internal/config"
	"github.com/mshamp4/ConnectFourRemote/internal/games/connectfour"
)

const (
	pieceGlyph  = "●"
	emptyGlyph  = "·"
	cursorGlyph = "▼"
)

// Theme holds the lipgloss styles used to draw the board.
type Theme struct {
	PlayerOne lipgloss.Style
	PlayerTwo lipgloss.Style
	Empty     lipgloss.Style
	Frame     lipgloss.Style
	Cursor    lipgloss.Style
	LastMove  lipgloss.Style
	Title     lipgloss.Style
	Muted     lipgloss.Style
}

// NewTheme builds styles from configured colors.
func NewTheme(c config.ColorsConfig) Theme {
	return Theme{
		PlayerOne: lipgloss.NewStyle().Foreground(lipgloss.Color(c.PlayerOne)).Bold(true),
		PlayerTwo: lipgloss.NewStyle().Foreground(lipgloss.Color(c.PlayerTwo)).Bold(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Empty)),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Frame)).
			Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Cursor)).Bold(true),
		LastMove: lipgloss.NewStyle().Underline(true),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PlayerStyle returns the style for p's pieces.
func (t Theme) PlayerStyle(p connectfour.Player) lipgloss.Style {
	switch p {
	case connectfour.PlayerOne:
		return t.PlayerOne
	case connectfour.PlayerTwo:
		return t.PlayerTwo
	default:
		return t.Empty
	}
}

// BoardView describes one frame of the board.
type BoardView struct {
	Board   connectfour.Board
	Cursor  int // Column the cursor sits over, -1 hides it
	LastRow int // Last placed piece, valid when HasLast
	LastCol int
	HasLast bool
	Turn    connectfour.Player // Colors the cursor
}

// RenderBoard draws the board with a cursor row above it and column numbers
// below it.
func RenderBoard(v BoardView, t Theme) string {
	var sb strings.Builder

	for col := 0; col < connectfour.Cols; col++ {
		if col > 0 {
			sb.WriteString(" ")
		}
		if col == v.Cursor {
			sb.WriteString(t.PlayerStyle(v.Turn).Render(cursorGlyph))
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")

	for row := 0; row < connectfour.Rows; row++ {
		for col := 0; col < connectfour.Cols; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			cell, _ := v.Board.Get(row, col)
			if cell.Empty() {
				sb.WriteString(t.Empty.Render(emptyGlyph))
				continue
			}
			style := t.PlayerStyle(cell.Owner)
			if v.HasLast && row == v.LastRow && col == v.LastCol {
				style = style.Inherit(t.LastMove)
			}
			sb.WriteString(style.Render(pieceGlyph))
		}
		sb.WriteString("\n")
	}

	for col := 0; col < connectfour.Cols; col++ {
		if col > 0 {
			sb.WriteString(" ")
		}
		label := string(rune('1' + col))
		if col == v.Cursor {
			sb.WriteString(t.Cursor.Render(label))
		} else {
			sb.WriteString(t.Muted.Render(label))
		}
	}

	return t.Frame.Render(sb.String())
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
