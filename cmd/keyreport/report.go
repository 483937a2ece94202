package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/tidwall/sjson"

	"github.com/Siri-chan/getkey/input"
	"github.com/Siri-chan/getkey/key"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	markLine    = "----------------------------------------"
)

// display receives report lines
type display interface {
	Line(s string)
	Clear()
}

// ttyDisplay writes to a terminal that may be in raw mode
type ttyDisplay struct {
	w io.Writer
}

func (d *ttyDisplay) Line(s string) {
	// Raw mode has no output processing, \n alone would staircase
	fmt.Fprintf(d.w, "%s\r\n", s)
}

func (d *ttyDisplay) Clear() {
	io.WriteString(d.w, clearScreen)
}

// screenDisplay keeps the last screenful of lines on a tcell screen
type screenDisplay struct {
	screen tcell.Screen
	lines  []string
}

func (d *screenDisplay) Line(s string) {
	d.lines = append(d.lines, s)
	if _, h := d.screen.Size(); h > 0 && len(d.lines) > h {
		d.lines = d.lines[len(d.lines)-h:]
	}
	d.draw()
}

func (d *screenDisplay) Clear() {
	d.lines = d.lines[:0]
	d.draw()
}

func (d *screenDisplay) draw() {
	d.screen.Clear()
	for y, line := range d.lines {
		x := 0
		for _, r := range line {
			d.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	d.screen.Show()
}

// reporter formats keys and errors onto a display
type reporter struct {
	d    display
	json bool
}

func (r *reporter) key(k key.Key, a input.Action) {
	if r.json {
		r.d.Line(keyJSON(k, a))
		return
	}
	r.d.Line(keyText(k, a))
}

func (r *reporter) err(err error) {
	if r.json {
		r.d.Line(errorJSON(err))
		return
	}
	r.d.Line("error: " + err.Error())
}

func keyText(k key.Key, a input.Action) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s kind=%-9s", k.String(), k.Kind())
	if name := k.Name(); name != "" {
		fmt.Fprintf(&b, " name=%-10s", name)
	}
	if a != input.ActionNone {
		fmt.Fprintf(&b, " action=%s", a)
	}
	return strings.TrimRight(b.String(), " ")
}

func keyJSON(k key.Key, a input.Action) string {
	s, _ := sjson.Set("", "key", k.String())
	s, _ = sjson.Set(s, "kind", k.Kind().String())
	s, _ = sjson.Set(s, "name", k.Name())
	s, _ = sjson.Set(s, "action", a.String())
	return s
}

func errorJSON(err error) string {
	s, _ := sjson.Set("", "error", err.Error())
	return s
}
