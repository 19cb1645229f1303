// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Print writes a string starting at the given position.
func (s *Screen) Print(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// ClearRow blanks an entire row.
func (s *Screen) ClearRow(y int) {
	w, _ := s.screen.Size()
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// ReadLine collects one line of input at the given position, echoing as
// the player types. Enter submits; Backspace edits; Escape or Ctrl+C
// abort, reported as ok=false.
func (s *Screen) ReadLine(x, y, maxLen int) (line string, ok bool) {
	buf := make([]rune, 0, maxLen)
	style := tcell.StyleDefault

	redraw := func() {
		for i := 0; i < maxLen; i++ {
			r := ' '
			if i < len(buf) {
				r = buf[i]
			}
			s.screen.SetContent(x+i, y, r, nil, style)
		}
		s.screen.ShowCursor(x+len(buf), y)
		s.screen.Show()
	}
	redraw()
	defer s.screen.HideCursor()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(buf), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
					redraw()
				}
			case tcell.KeyRune:
				if len(buf) < maxLen {
					buf = append(buf, ev.Rune())
					redraw()
				}
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// WaitKey blocks until any key is pressed.
func (s *Screen) WaitKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}
