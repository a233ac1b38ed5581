package tictactoe

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the board as a 3x3 grid, marks colored when the terminal
// supports it. Diagnostics only.
func (p *Position) Render() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			mask := uint16(1) << (row*3 + col)
			switch {
			case p.boards[crossIdx]&mask != 0:
				b.WriteString(termenv.String("X").Foreground(termenv.ANSIRed).String())
			case p.boards[noughtIdx]&mask != 0:
				b.WriteString(termenv.String("O").Foreground(termenv.ANSIBlue).String())
			default:
				b.WriteString(".")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
