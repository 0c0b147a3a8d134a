package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/logging"
	"github.com/rogersnm/todo/internal/model"
)

// Store is the task list of one invocation. The lines are read once by Open
// and every mutation rewrites the file from a copy of them; Add is the only
// operation that appends.
type Store struct {
	cfg   config.Config
	lines []string
	log   *log.Logger
}

// Open creates the store file if needed and loads its lines.
func Open(cfg config.Config, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	f, err := os.OpenFile(cfg.Path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the todo file at %s: %w", cfg.Path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.Path, err)
	}
	logger.Debug("loaded todo file", "path", cfg.Path, "lines", len(lines))
	return &Store{cfg: cfg, lines: lines, log: logger}, nil
}

// readLines splits the whole file on newlines. A final newline does not start
// another line, and a trailing carriage return is dropped from each line.
func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

func (s *Store) Path() string { return s.cfg.Path }
func (s *Store) BackupPath() string { return s.cfg.BackupPath }
func (s *Store) Len() int { return len(s.lines) }

// Entries decodes the snapshot in file order.
func (s *Store) Entries() []model.Entry {
	entries := make([]model.Entry, len(s.lines))
	for i, line := range s.lines {
		entries[i] = model.ParseLine(line)
	}
	return entries
}

// List writes every task, numbered from 1, in a single write.
func (s *Store) List(w io.Writer) error {
	var data []byte
	for i, line := range s.lines {
		data = append(data, model.ParseLine(line).ListLine(i+1)...)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing list: %w", err)
	}
	return nil
}

// RawMode selects which tasks Raw prints.
type RawMode string

const (
	RawDone RawMode = "done"
	RawTodo RawMode = "todo"
)

func ParseRawMode(s string) (RawMode, error) {
	switch RawMode(s) {
	case RawDone, RawTodo:
		return RawMode(s), nil
	}
	return "", fmt.Errorf("invalid raw mode %q: must be done or todo", s)
}

// Raw prints the bare text of every task matching mode.
func (s *Store) Raw(w io.Writer, mode RawMode) error {
	for _, line := range s.lines {
		e := model.ParseLine(line)
		if e.Done != (mode == RawDone) {
			continue
		}
		if _, err := io.WriteString(w, e.RawLine()); err != nil {
			return fmt.Errorf("writing task %q: %w", e.Text, err)
		}
	}
	return nil
}

// rewrite replaces the whole store file with data.
func (s *Store) rewrite(data []string) (err error) {
	f, err := os.OpenFile(s.cfg.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("couldn't open the todo file at %s: %w", s.cfg.Path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", s.cfg.Path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range data {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("writing %s: %w", s.cfg.Path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", s.cfg.Path, err)
	}
	s.log.Debug("rewrote todo file", "path", s.cfg.Path, "lines", len(data))
	return nil
}

func position(i int) string {
	return strconv.Itoa(i + 1)
}

// positionSet indexes position arguments and tracks which ones were used, so
// the leftovers can be reported in the order they were given.
type positionSet struct {
	order []string
	used  map[string]bool
}

func newPositionSet(positions []string) *positionSet {
	ps := &positionSet{used: make(map[string]bool, len(positions))}
	for _, p := range positions {
		if _, seen := ps.used[p]; seen {
			continue
		}
		ps.order = append(ps.order, p)
		ps.used[p] = false
	}
	return ps
}

func (ps *positionSet) match(i int) bool {
	p := position(i)
	if _, ok := ps.used[p]; !ok {
		return false
	}
	ps.used[p] = true
	return true
}

// unmatched lists the positions no task had, first occurrence order.
func (ps *positionSet) unmatched() []string {
	var out []string
	for _, p := range ps.order {
		if !ps.used[p] {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) warnUnmatched(op string, ps *positionSet) {
	for _, p := range ps.unmatched() {
		s.log.Warn("no task at position", "op", op, "position", p)
	}
}
