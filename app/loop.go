// Package app runs the interactive session: one blocking read per turn of
// the loop, no background goroutines.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/reversi/game"
	"github.com/lixenwraith/reversi/input"
	"github.com/lixenwraith/reversi/render"
)

// ErrScreenClosed is returned when the screen stops delivering events
var ErrScreenClosed = errors.New("screen closed")

// Sounder plays cues for game events
type Sounder interface {
	PlayPlace(captured int)
	PlayError()
	PlayGameOver()
}

type silent struct{}

func (silent) PlayPlace(int) {}
func (silent) PlayError()    {}
func (silent) PlayGameOver() {}

// Loop wires the controller to its terminal collaborators
type Loop struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	keys     *input.KeyTable
	sound    Sounder
	log      logrus.FieldLogger
}

// NewLoop creates a loop with default key bindings. A nil sound plays nothing;
// a nil log discards
func NewLoop(screen tcell.Screen, g *game.Game, r *render.Renderer, sound Sounder, log logrus.FieldLogger) *Loop {
	if sound == nil {
		sound = silent{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Loop{
		screen:   screen,
		game:     g,
		renderer: r,
		keys:     input.DefaultKeyTable(),
		sound:    sound,
		log:      log,
	}
}

// Run draws, then processes events until the player quits or the game ends
// and the outcome is acknowledged. Only screen failures are returned
func (l *Loop) Run() error {
	l.log.WithFields(logrus.Fields{
		"width":  l.game.Board().Width(),
		"height": l.game.Board().Height(),
		"rule":   l.game.Rule(),
		"first":  l.game.Current(),
	}).Info("game started")

	l.renderer.Draw(l.game)

	for l.game.State() == game.AwaitingInput {
		ev, err := l.next()
		if err != nil {
			return err
		}
		if ev == nil {
			continue
		}

		res := l.game.Handle(l.keys.Translate(ev))
		l.report(res)
		l.renderer.Draw(l.game)
	}

	if l.game.State() == game.Quit {
		l.log.WithField("moves", l.game.Moves()).Info("player quit")
		return nil
	}

	o := l.game.Outcome()
	l.log.WithFields(logrus.Fields{
		"black": o.Black,
		"white": o.White,
		"draw":  o.Draw,
	}).Info(l.renderer.Glyphs().OutcomeLine(o))
	l.sound.PlayGameOver()

	// Wait for any key before leaving the final board
	for {
		ev, err := l.next()
		if err != nil {
			return err
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			return nil
		}
	}
}

// next blocks for one event. Resizes are handled here and yield a nil event
func (l *Loop) next() (tcell.Event, error) {
	ev := l.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return nil, ErrScreenClosed
	case *tcell.EventError:
		return nil, fmt.Errorf("terminal input: %w", ev)
	case *tcell.EventResize:
		l.screen.Sync()
		l.renderer.Draw(l.game)
		return nil, nil
	}
	return ev, nil
}

func (l *Loop) report(res game.Result) {
	entry := l.log.WithFields(logrus.Fields{
		"player": res.Player,
		"x":      res.Pos.X,
		"y":      res.Pos.Y,
	})

	switch {
	case res.Err != nil:
		entry.WithError(res.Err).Debug("move rejected")
		l.sound.PlayError()
	case res.Placed:
		entry.WithField("captured", res.Captured).Debug("move placed")
		l.sound.PlayPlace(res.Captured)
		if res.Passed {
			l.log.WithField("player", l.game.Current().Other()).Info("no legal move, turn passed")
		}
	case res.Intent == input.IntentQuit:
		entry.Debug("quit requested")
	default:
		entry.WithField("intent", res.Intent).Trace("input")
	}
}
