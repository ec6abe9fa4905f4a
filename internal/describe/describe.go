// Package describe maps point-in-time snapshots of Discord entities into
// flat, ordered descriptions ready to be rendered as an embed or as JSON.
// Nothing in here talks to the network or caches anything between calls.
package describe

import (
	"errors"
	"time"
)

// timeNow is swapped out in tests that assert relative-time phrases.
var timeNow = time.Now

// ErrNotFound is returned when the requested entity does not exist in the
// guild snapshot (e.g. an emoji name with no match).
var ErrNotFound = errors.New("entity not found")

// Field is one labeled line of a description.
type Field struct {
	Label string
	Value string
}

// EmbedField is a named block rendered separately from the description lines.
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Description is the aggregation result: an ordered list of labeled lines,
// optional named blocks, and optional images.
type Description struct {
	Author    string
	Title     string
	Lines     []Field
	Fields    []EmbedField
	Thumbnail string
	Image     string
}

func (d *Description) addLine(label, value string) {
	d.Lines = append(d.Lines, Field{Label: label, Value: value})
}

func (d *Description) addField(name, value string, inline bool) {
	d.Fields = append(d.Fields, EmbedField{Name: name, Value: value, Inline: inline})
}

// check renders a boolean the way the bot always has.
func check(v bool) string {
	if v {
		return "✓"
	}
	return "✕"
}
