// Package terminal owns the raw-mode screen for the duration of a game.
//
// A Session pairs screen initialisation with a Close that is safe to call
// more than once; With brackets a function so the terminal is restored on
// normal return, error return and panic alike.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScreenFactory creates an uninitialised screen
type ScreenFactory func() (tcell.Screen, error)

// DefaultFactory opens the controlling terminal
var DefaultFactory ScreenFactory = tcell.NewScreen

// Session holds an initialised screen until Close
type Session struct {
	screen tcell.Screen
	once   sync.Once
}

// Open creates and initialises a screen: raw mode, alternate buffer, hidden cursor
func Open(factory ScreenFactory) (*Session, error) {
	screen, err := factory()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	return &Session{screen: screen}, nil
}

// Screen returns the session's screen
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Close restores the terminal. Safe to call multiple times
func (s *Session) Close() {
	s.once.Do(s.screen.Fini)
}

// With opens a session, runs fn and closes the session on every exit path.
// A panic in fn propagates after the terminal has been restored
func With(factory ScreenFactory, fn func(tcell.Screen) error) error {
	s, err := Open(factory)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(s.Screen())
}
