package lab

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/iterlist/internal/config"
	"github.com/dshills/iterlist/list"
)

// Session is an interactive terminal view of a cursor list. Every keypress
// maps to one cursor operation, so the session doubles as a visual
// demonstration of the movement and mutation semantics.
type Session struct {
	screen  tcell.Screen
	cfg     config.UIConfig
	list    *list.List[float64]
	nextVal float64
	status  string
}

// NewSession creates a session on the real terminal.
func NewSession(cfg config.UIConfig) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	return NewSessionWithScreen(cfg, screen), nil
}

// NewSessionWithScreen creates a session on the given screen. Tests use
// this with tcell's simulation screen.
func NewSessionWithScreen(cfg config.UIConfig, screen tcell.Screen) *Session {
	return &Session{
		screen:  screen,
		cfg:     cfg,
		list:    list.New[float64](),
		nextVal: 1,
	}
}

// Run owns the terminal until the user quits.
func (s *Session) Run() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.screen.Fini()

	for {
		s.draw()
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if !s.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one keypress and reports whether the session should
// keep running.
func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.report("retreat", s.list.Retreat())
		return true
	case tcell.KeyRight:
		s.report("advance", s.list.Advance())
		return true
	case tcell.KeyHome:
		s.report("move to head", s.list.MoveTo(0))
		return true
	case tcell.KeyEnd:
		s.report("move to tail", s.list.MoveTo(s.list.Len()-1))
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'h':
		s.report("retreat", s.list.Retreat())
	case 'l':
		s.report("advance", s.list.Advance())
	case 'p':
		s.list.PushNext(s.nextVal)
		s.status = fmt.Sprintf("pushed %g after cursor", s.nextVal)
		s.nextVal++
	case 'P':
		s.list.PushPrev(s.nextVal)
		s.status = fmt.Sprintf("pushed %g before cursor", s.nextVal)
		s.nextVal++
	case 'i':
		s.list.InsertNext(s.nextVal)
		s.status = fmt.Sprintf("inserted %g after cursor", s.nextVal)
		s.nextVal++
	case 'I':
		s.list.InsertPrev(s.nextVal)
		s.status = fmt.Sprintf("inserted %g before cursor", s.nextVal)
		s.nextVal++
	case 'x':
		if v, landed, ok := s.list.ConsumeForward(); ok {
			s.status = fmt.Sprintf("consumed %g (landed forward: %v)", v, landed)
		} else {
			s.status = "nothing under the cursor"
		}
	case 'X':
		if v, landed, ok := s.list.ConsumeBackward(); ok {
			s.status = fmt.Sprintf("consumed %g (landed backward: %v)", v, landed)
		} else {
			s.status = "nothing under the cursor"
		}
	case 's':
		front := s.list.Split()
		s.status = fmt.Sprintf("split off front %s", front)
	case 'S':
		back := s.list.SplitAfter()
		s.status = fmt.Sprintf("split off back %s", back)
	case 'c':
		s.list = list.New[float64]()
		s.nextVal = 1
		s.status = "cleared"
	}
	return true
}

func (s *Session) report(op string, ok bool) {
	if ok {
		s.status = op
		return
	}
	s.status = op + ": hit the ghost slot"
}

// List exposes the session's list for inspection.
func (s *Session) List() *list.List[float64] {
	return s.list
}

func (s *Session) draw() {
	s.screen.Clear()

	s.drawText(0, 0, tcell.StyleDefault.Bold(true),
		"listlab  p/P push  i/I insert  x/X consume  s/S split  arrows move  q quit")

	// The list itself, one cell group per element, cursor highlighted.
	x := 2
	style := tcell.StyleDefault
	cursorStyle := style.Reverse(true)
	pos := s.list.Position()

	idx := 0
	s.list.Range(func(v float64) bool {
		st := style
		if pos.OnElement() && idx == pos.Index {
			st = cursorStyle
		}
		x = s.drawText(x, 2, st, fmt.Sprintf(" %g ", v))
		x++
		idx++
		return true
	})
	if pos.Kind == list.PositionGhost {
		s.drawText(x, 2, cursorStyle, " "+s.cfg.GhostMarker+" ")
	}

	line := fmt.Sprintf("position: %s  length: %d", pos.Kind, s.list.Len())
	if s.cfg.ShowIndex && pos.OnElement() {
		line += fmt.Sprintf("  index: %d", pos.Index)
	}
	s.drawText(0, 4, style, line)
	s.drawText(0, 5, style.Dim(true), s.status)

	s.screen.Show()
}

// drawText writes a run of text and returns the x position after it.
func (s *Session) drawText(x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
