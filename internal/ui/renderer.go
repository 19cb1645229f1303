package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Board layout. The play screen targets a classic 80x24 terminal; rows
// hold the retired-word list on top and the in-play list below, with
// score, message and prompt lines at the bottom.
const (
	BoardCols = 80
	BoardRows = 24

	PriorHeaderRow = 1
	PriorStartRow  = 2
	PriorEndRow    = 15

	CurrentHeaderRow = 17
	CurrentStartRow  = 18
	CurrentEndRow    = 20

	ScoreRow   = 21
	MessageRow = 22
	PromptRow  = 23

	// PriorPageRows and CurrentPageRows are the page sizes Paginate
	// should be called with for each list.
	PriorPageRows   = PriorEndRow - PriorStartRow + 1
	CurrentPageRows = CurrentEndRow - CurrentStartRow + 1
)

// Renderer draws the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Board is everything the play screen shows for one turn.
type Board struct {
	Score       int
	PriorPage   []string // one page of retired words, row strings
	CurrentPage []string // one page of in-play words, row strings
	Message     string   // status or error line, may be empty
}

// RenderBoard draws the full play screen.
func (r *Renderer) RenderBoard(b Board) {
	r.screen.Clear()

	header := tcell.StyleDefault.Reverse(true)
	r.screen.Print(0, PriorHeaderRow, pad("Prior words:"), header)
	r.screen.Print(0, CurrentHeaderRow, pad("Current words:"), header)

	for i, row := range b.PriorPage {
		if PriorStartRow+i > PriorEndRow {
			break
		}
		r.screen.Print(0, PriorStartRow+i, row, tcell.StyleDefault)
	}
	for i, row := range b.CurrentPage {
		if CurrentStartRow+i > CurrentEndRow {
			break
		}
		r.screen.Print(0, CurrentStartRow+i, row, tcell.StyleDefault)
	}

	r.screen.Print(0, ScoreRow, pad(fmt.Sprintf("Score: %d", b.Score)), header)
	if b.Message != "" {
		r.Message(b.Message)
	}
	r.screen.Print(0, PromptRow, ">", tcell.StyleDefault)
	r.screen.Show()
}

// Message writes a status line above the prompt.
func (r *Renderer) Message(msg string) {
	r.screen.ClearRow(MessageRow)
	r.screen.Print(0, MessageRow, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.screen.Show()
}

// RenderTitle draws the welcome screen shown before a session starts.
func (r *Renderer) RenderTitle() {
	r.screen.Clear()

	center := func(y int, text string) {
		r.screen.Print((BoardCols-len(text))/2, y, text, tcell.StyleDefault)
	}
	center(3, "welcome to")
	center(5, "R A T")
	center(6, "T R A P")
	center(7, "P A R T S")

	header := tcell.StyleDefault.Reverse(true)
	r.screen.Print(0, 21, pad("Enter a 3-letter word to start with."), header)
	r.screen.Print(0, 22, pad("'r' or 'random' for random start, 'h' for help."), header)
	r.screen.Print(0, PromptRow, ">", tcell.StyleDefault)
	r.screen.Show()
}

// RenderFinal draws the end-of-session score and waits for a key.
func (r *Renderer) RenderFinal(score int) {
	r.screen.ClearRow(ScoreRow)
	r.screen.Print(0, ScoreRow, fmt.Sprintf("Your final score is %d", score), tcell.StyleDefault)
	r.Message("Press any key to continue...")
	r.screen.WaitKey()
}

// RenderHelp draws the help text and waits for a key. Lines underlined
// with = in the source are treated as headings and drawn emphasized,
// with the underline itself dropped.
func (r *Renderer) RenderHelp(lines []string) {
	r.screen.Clear()

	heading := tcell.StyleDefault.Reverse(true)
	y := 0
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) && isUnderline(lines[i+1], len(lines[i])) {
			r.screen.Print(0, y, lines[i], heading)
			i++
		} else {
			r.screen.Print(0, y, lines[i], tcell.StyleDefault)
		}
		y++
	}
	r.Message("Press any key to return to the game.")
	r.screen.WaitKey()
	r.screen.Clear()
}

// isUnderline reports whether line is a run of = matching the length of
// the line above it.
func isUnderline(line string, length int) bool {
	if len(line) == 0 || len(line) != length {
		return false
	}
	return strings.Count(line, "=") == len(line)
}

// pad right-fills a string to the board width so reverse-video rows span
// the screen.
func pad(s string) string {
	if len(s) >= BoardCols {
		return s
	}
	return s + strings.Repeat(" ", BoardCols-len(s))
}
