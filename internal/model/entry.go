package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Checkbox markers prefixing every stored line.
const (
	MarkerDone = "[*] "
	MarkerTodo = "[ ] "

	markerLen = len(MarkerDone)
)

var doneStyle = lipgloss.NewStyle().Strikethrough(true)

// Entry is a single task: its text and whether it is done.
type Entry struct {
	Text string
	Done bool
}

func NewEntry(text string) Entry {
	return Entry{Text: text}
}

// ParseLine decodes a stored line. The marker is the first four characters;
// a line with fewer is an unfinished task whose text is the whole line.
func ParseLine(line string) Entry {
	if utf8.RuneCountInString(line) < markerLen {
		return Entry{Text: line}
	}
	if strings.HasPrefix(line, MarkerDone) {
		return Entry{Text: line[len(MarkerDone):], Done: true}
	}
	return Entry{Text: line[prefixEnd(line, markerLen):]}
}

// prefixEnd returns the byte offset just past the first n runes of s.
func prefixEnd(s string, n int) int {
	end := 0
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return end
}

// FileLine encodes e in the persisted form, newline included.
func (e Entry) FileLine() string {
	marker := MarkerTodo
	if e.Done {
		marker = MarkerDone
	}
	return marker + e.Text + "\n"
}

// ListLine renders e for `todo list` at the given 1-based position.
func (e Entry) ListLine(number int) string {
	text := e.Text
	if e.Done {
		text = doneStyle.Render(text)
	}
	return fmt.Sprintf("%d %s\n", number, text)
}

// RawLine is the bare task text, for scripts.
func (e Entry) RawLine() string {
	return e.Text + "\n"
}

// Toggle flips the done flag.
func (e *Entry) Toggle() {
	e.Done = !e.Done
}
