package store

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rogersnm/todo/internal/model"
)

// Add appends a new unfinished task for every non-blank text. It writes
// straight to the end of the file and ignores the loaded lines. It returns
// how many tasks were added.
func (s *Store) Add(texts []string) (added int, err error) {
	f, err := os.OpenFile(s.cfg.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("couldn't open the todo file at %s: %w", s.cfg.Path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", s.cfg.Path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if _, err := w.WriteString(model.NewEntry(text).FileLine()); err != nil {
			return added, fmt.Errorf("appending task: %w", err)
		}
		added++
	}
	if err := w.Flush(); err != nil {
		return added, fmt.Errorf("appending task: %w", err)
	}
	s.log.Debug("appended tasks", "path", s.cfg.Path, "added", added)
	return added, nil
}

// Remove drops the tasks at the given 1-based positions. Survivors keep their
// relative order, so later tasks move up.
func (s *Store) Remove(positions []string) error {
	ps := newPositionSet(positions)
	out := make([]string, 0, len(s.lines))
	for i, line := range s.lines {
		if ps.match(i) {
			continue
		}
		out = append(out, line+"\n")
	}
	s.warnUnmatched("rm", ps)
	return s.rewrite(out)
}

// Done toggles the done flag of the tasks at the given positions.
func (s *Store) Done(positions []string) error {
	ps := newPositionSet(positions)
	out := make([]string, 0, len(s.lines))
	for i, line := range s.lines {
		if !ps.match(i) {
			out = append(out, line+"\n")
			continue
		}
		e := model.ParseLine(line)
		e.Toggle()
		out = append(out, e.FileLine())
	}
	s.warnUnmatched("done", ps)
	return s.rewrite(out)
}

// Edit replaces the text of the task at pos and keeps its done flag. pos must
// equal the task's position exactly.
func (s *Store) Edit(pos, text string) error {
	ps := newPositionSet([]string{pos})
	out := make([]string, 0, len(s.lines))
	for i, line := range s.lines {
		if !ps.match(i) {
			out = append(out, line+"\n")
			continue
		}
		e := model.ParseLine(line)
		e.Text = text
		out = append(out, e.FileLine())
	}
	s.warnUnmatched("edit", ps)
	return s.rewrite(out)
}

// Sort moves unfinished tasks ahead of finished ones, keeping relative order
// within each group. With alphabetical set, each group is ordered by the raw
// stored line first.
func (s *Store) Sort(alphabetical bool) error {
	lines := slices.Clone(s.lines)
	if alphabetical {
		slices.Sort(lines)
	}

	todo := make([]string, 0, len(lines))
	var done []string
	for _, line := range lines {
		if model.ParseLine(line).Done {
			done = append(done, line+"\n")
		} else {
			todo = append(todo, line+"\n")
		}
	}
	return s.rewrite(append(todo, done...))
}
