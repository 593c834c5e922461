package terminal

import (
	"errors"
	"slices"
	"testing"

	"room-planner/internal/commands"
)

type history struct {
	lines []string
}

func (h *history) Log(line string)  { h.lines = append(h.lines, line) }
func (h *history) Lines() []string { return h.lines }

func TestSubmitRunsCommands(t *testing.T) {
	h := &history{}
	reg := commands.NewRegistry()
	var got []string
	reg.Register("add", "add <type> [x z]", nil, func(args []string) error {
		got = args
		return nil
	})
	reg.Register("save", "save", nil, func([]string) error { return errors.New("disk full") })
	term := New(h, reg)

	term.Submit("/add lamp 1 2")
	if !slices.Equal(got, []string{"lamp", "1", "2"}) {
		t.Errorf("args = %v", got)
	}
	term.Submit("save")
	term.Submit("   ")
	want := []string{"> /add lamp 1 2", "> save", "disk full", ">    "}
	if !slices.Equal(h.lines, want) {
		t.Errorf("history = %q, want %q", h.lines, want)
	}
}
