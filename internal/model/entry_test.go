package model

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

const strikethroughSGR = "\x1b[9m"

// forceANSI makes lipgloss emit escape sequences even though tests do not
// run on a terminal.
func forceANSI(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestFileLine(t *testing.T) {
	assert.Equal(t, "[ ] buy milk\n", NewEntry("buy milk").FileLine())
	assert.Equal(t, "[*] buy milk\n", Entry{Text: "buy milk", Done: true}.FileLine())
}

func TestParseLine(t *testing.T) {
	e := ParseLine("[*] call mom")
	assert.True(t, e.Done)
	assert.Equal(t, "call mom", e.Text)

	e = ParseLine("[ ] call mom")
	assert.False(t, e.Done)
	assert.Equal(t, "call mom", e.Text)
}

func TestParseLine_UnknownMarkerIsTodo(t *testing.T) {
	e := ParseLine("[x] weird")
	assert.False(t, e.Done)
	assert.Equal(t, "weird", e.Text)
}

func TestParseLine_ShortLine(t *testing.T) {
	for _, line := range []string{"", "a", "[*]"} {
		e := ParseLine(line)
		assert.False(t, e.Done, line)
		assert.Equal(t, line, e.Text)
	}
}

func TestParseLine_ShortMultibyteLine(t *testing.T) {
	for _, line := range []string{"abé", "aéé", "ééé"} {
		e := ParseLine(line)
		assert.False(t, e.Done, line)
		assert.Equal(t, line, e.Text)
	}
}

func TestParseLine_MultibytePrefixCutsOnRune(t *testing.T) {
	e := ParseLine("aébc rest")
	assert.False(t, e.Done)
	assert.Equal(t, " rest", e.Text)

	e = ParseLine("ééééé")
	assert.Equal(t, "é", e.Text)
	assert.True(t, utf8.ValidString(e.Text))
}

func TestParseLine_MarkerOnly(t *testing.T) {
	e := ParseLine("[*] ")
	assert.True(t, e.Done)
	assert.Equal(t, "", e.Text)
}

func TestRoundTrip(t *testing.T) {
	cases := []Entry{
		{Text: "plain"},
		{Text: "done one", Done: true},
		{Text: ""},
		{Text: "[*] looks like a marker", Done: true},
		{Text: "unicode ✓ ünïcödé"},
	}
	for _, e := range cases {
		line := e.FileLine()
		got := ParseLine(line[:len(line)-1])
		assert.Equal(t, e, got)
	}
}

func TestListLine(t *testing.T) {
	assert.Equal(t, "1 buy milk\n", NewEntry("buy milk").ListLine(1))

	done := Entry{Text: "ship it", Done: true}.ListLine(12)
	assert.Contains(t, done, "ship it")
	assert.Regexp(t, `^12 `, done)
}

func TestListLine_Strikethrough(t *testing.T) {
	forceANSI(t)

	done := Entry{Text: "ship it", Done: true}.ListLine(1)
	assert.Contains(t, done, strikethroughSGR)
	assert.Contains(t, done, "ship it")

	todo := NewEntry("ship it").ListLine(2)
	assert.NotContains(t, todo, strikethroughSGR)
	assert.Equal(t, "2 ship it\n", todo)
}

func TestRawLine(t *testing.T) {
	assert.Equal(t, "x\n", Entry{Text: "x", Done: true}.RawLine())
}

func TestToggle(t *testing.T) {
	e := NewEntry("t")
	e.Toggle()
	assert.True(t, e.Done)
	e.Toggle()
	assert.False(t, e.Done)
}
