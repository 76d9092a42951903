// SPDX-License-Identifier: MIT

package game

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ndmines/flood"
	"github.com/katalvlaran/ndmines/minefield"
	"github.com/katalvlaran/ndmines/render"
)

// Player-facing messages.
const (
	MsgMovePrompt = "Please Enter Selection Square"
	MsgLose       = "BOOM! You lose!"
	MsgWin        = "You won!"
)

// Session plays one game on a field whose mines are already placed.
type Session struct {
	ID    uuid.UUID
	field *minefield.Field
	out   io.Writer
	log   logrus.FieldLogger
	moves int
	werr  error // first write error, sticky
}

// NewSession binds f and out. The session ID is random unless WithID is given.
func NewSession(f *minefield.Field, out io.Writer, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	return &Session{
		ID:    o.id,
		field: f,
		out:   out,
		log:   o.log.WithField("session", o.id.String()),
	}
}

// Field returns the board the session plays on.
func (s *Session) Field() *minefield.Field { return s.field }

// Moves returns the number of moves applied without error.
func (s *Session) Moves() int { return s.moves }

// Apply performs m on the field and reports the resulting outcome. Errors
// from the field (out-of-bounds coordinates) leave the board unchanged and
// the outcome Playing.
func (s *Session) Apply(m Move) (Outcome, error) {
	if m.Action == Quit {
		return Abandoned, nil
	}

	cell, err := s.field.Cell(m.Coord)
	if err != nil {
		return Playing, err
	}

	switch m.Action {
	case Flag:
		if _, err = s.field.ToggleFlag(m.Coord); err != nil {
			return Playing, err
		}
	case Reveal:
		if cell.State == minefield.Flagged {
			// a reveal on a flag only takes the flag off
			if _, err = s.field.ToggleFlag(m.Coord); err != nil {
				return Playing, err
			}
			break
		}
		res, err := s.field.Reveal(m.Coord)
		if err != nil {
			return Playing, err
		}
		if res.Lost {
			s.record(m, Lost, 1)
			return Lost, nil
		}
		if cell.Adjacent == 0 {
			opened, err := flood.Run(s.field, m.Coord, flood.WithLogger(s.log))
			if err != nil {
				return Playing, err
			}
			s.record(m, s.outcome(), len(opened))
			return s.outcome(), nil
		}
	default:
		return Playing, fmt.Errorf("%w: action %s", ErrBadInput, m.Action)
	}

	s.record(m, s.outcome(), 0)

	return s.outcome(), nil
}

func (s *Session) outcome() Outcome {
	if s.field.IsWon() {
		return Won
	}

	return Playing
}

func (s *Session) record(m Move, out Outcome, opened int) {
	s.moves++
	s.log.WithFields(logrus.Fields{
		"action":  m.Action.String(),
		"coord":   m.Coord.String(),
		"outcome": out.String(),
		"opened":  opened,
		"move":    s.moves,
	}).Debug("move applied")
}

// Play reads moves from in until the game is won, lost or quit, printing the
// board after every applied move. End of input counts as quitting. The
// returned error is a read or write failure, never a bad move.
// Play consumes in only up to the end of the last line it handles.
func (s *Session) Play(in io.Reader) (Outcome, error) {
	rank := len(s.field.Shape())

	s.printBoard()
	for s.werr == nil {
		s.println(MsgMovePrompt)
		line, err := readLine(in)
		if errors.Is(err, io.EOF) {
			s.log.Info("input closed")
			return Abandoned, s.werr
		}
		if err != nil {
			return Playing, err
		}

		m, err := ParseMove(line, rank)
		if err != nil {
			s.println(badInput(err))
			continue
		}
		outcome, err := s.Apply(m)
		if err != nil {
			s.println(badInput(err))
			continue
		}

		switch outcome {
		case Abandoned:
			s.log.Info("player quit")
			return outcome, s.werr
		case Lost:
			s.printBoard()
			s.println(MsgLose)
			s.log.WithField("moves", s.moves).Info("game lost")
			return outcome, s.werr
		case Won:
			s.printBoard()
			s.println(MsgWin)
			s.log.WithField("moves", s.moves).Info("game won")
			return outcome, s.werr
		}
		s.printBoard()
	}

	return Playing, s.werr
}

// badInput formats an input or field error for the player.
func badInput(err error) string {
	switch {
	case errors.Is(err, minefield.ErrOutOfBounds):
		return "Bad input (indices out of bounds)"
	case errors.Is(err, ErrBadInput):
		return "Bad input (" + strings.TrimPrefix(err.Error(), ErrBadInput.Error()+": ") + ")"
	default:
		return "Bad input (" + err.Error() + ")"
	}
}

// printBoard writes the folded board and the mine counter.
func (s *Session) printBoard() {
	for _, line := range render.Render(s.field) {
		s.println(line)
	}
	s.println(fmt.Sprintf("Mines left: %d", s.field.RemainingMines()))
}

func (s *Session) println(line string) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintln(s.out, line)
}

// readLine returns the next line of in without its terminator, reading no
// byte past the '\n'. A final line without a newline is returned with a nil
// error. Readers that are not io.ByteReaders are read one byte per call.
func readLine(in io.Reader) (string, error) {
	br, ok := in.(io.ByteReader)
	if !ok {
		br = byteReader{in}
	}

	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
	}

	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// byteReader reads single bytes from an unbuffered reader.
type byteReader struct {
	r io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := b.r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
