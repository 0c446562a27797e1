package lisp

import (
	"fmt"
	"io"
	"log"

	"github.com/ohodson/tiny-lisp/internal/lfmt"
	"github.com/ohodson/tiny-lisp/parser/token"
)

// DefaultMaxHeight is the call stack height allowed by a Runtime unless
// configured otherwise.  Evaluation is plain Go recursion so the bound exists
// to fail with a lisp error well before the goroutine stack is exhausted.
const DefaultMaxHeight = 10000

// CallStack is a function call stack.
type CallStack struct {
	Frames []CallFrame
	// MaxHeight is the maximum number of frames allowed on the stack.  A
	// value of zero allows unbounded recursion.
	MaxHeight int
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	Name   string
	Source *token.Location
}

// Copy creates a copy of the current stack so that it can be attached to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push adds a frame to the top of the stack.  Push returns false without
// modifying the stack if the stack is already at its maximum height.
func (s *CallStack) Push(name string, source *token.Location) bool {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return false
	}
	s.Frames = append(s.Frames, CallFrame{Name: name, Source: source})
	return true
}

// Pop removes the top CallFrame from the stack and returns it.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		log.Panicf("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	lw := lfmt.NewWriter(w)
	lw.Do(func(w io.Writer) (int, error) {
		return fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	})
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		f := s.Frames[i]
		name := f.Name
		if f.Source != nil {
			name = f.Source.String() + ": " + name
		}
		height := i
		lw.Do(func(w io.Writer) (int, error) {
			return fmt.Fprintf(w, "%sheight %d: %s\n", indent, height, name)
		})
	}
	return lw.Result()
}
