// Package settings defines the one-shot handoff from the setup form to the
// editor: canvas dimensions plus the text and background colors.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"asciicanvas/internal/jsonutil"
	"asciicanvas/internal/style"
)

const (
	DefaultRows = 20
	DefaultCols = 40

	// MinDimension and MaxDimension bound both height and width.
	MinDimension = 5
	MaxDimension = 200

	DefaultTextColor       = "#000000"
	DefaultBackgroundColor = "#ffffff"
)

var ErrOutOfRange = errors.New("dimension out of range")

// Settings is the handoff record. Zero fields mean "not provided".
type Settings struct {
	Height          int    `json:"height"`
	Width           int    `json:"width"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// Resolved is a Settings with every field filled in and validated.
type Resolved struct {
	Rows   int
	Cols   int
	Colors style.Pair
}

// Defaults returns the resolved defaults: 20x40, black on white.
func Defaults() Resolved {
	return Resolved{
		Rows:   DefaultRows,
		Cols:   DefaultCols,
		Colors: style.Pair{
			Text:       style.MustParseHex(DefaultTextColor),
			Background: style.MustParseHex(DefaultBackgroundColor),
		},
	}
}

// InRange reports whether n is a valid height or width.
func InRange(n int) bool {
	return n >= MinDimension && n <= MaxDimension
}

// Resolve fills each missing or invalid field from Defaults independently.
// A nil receiver resolves to Defaults.
func (s *Settings) Resolve() Resolved {
	r := Defaults()
	if s == nil {
		return r
	}
	if InRange(s.Height) {
		r.Rows = s.Height
	}
	if InRange(s.Width) {
		r.Cols = s.Width
	}
	if c, err := style.ParseHex(s.TextColor); err == nil {
		r.Colors.Text = c
	}
	if c, err := style.ParseHex(s.BackgroundColor); err == nil {
		r.Colors.Background = c
	}
	return r
}

// Validate reports every field that would be replaced by a default on Resolve.
func (s Settings) Validate() error {
	var errs []error
	if !InRange(s.Height) {
		errs = append(errs, fmt.Errorf("height %d: %w (%d-%d)", s.Height, ErrOutOfRange, MinDimension, MaxDimension))
	}
	if !InRange(s.Width) {
		errs = append(errs, fmt.Errorf("width %d: %w (%d-%d)", s.Width, ErrOutOfRange, MinDimension, MaxDimension))
	}
	if _, err := style.ParseHex(s.TextColor); err != nil {
		errs = append(errs, fmt.Errorf("text color: %w", err))
	}
	if _, err := style.ParseHex(s.BackgroundColor); err != nil {
		errs = append(errs, fmt.Errorf("background color: %w", err))
	}
	return errors.Join(errs...)
}

// FromResolved builds a fully populated Settings from r.
func FromResolved(r Resolved) Settings {
	return Settings{
		Height:          r.Rows,
		Width:           r.Cols,
		TextColor:       r.Colors.Text.Hex(),
		BackgroundColor: r.Colors.Background.Hex(),
	}
}

// Decode parses a handoff payload leniently. Numbers may be JSON numbers or
// numeric strings; fields of the wrong type are left zero so Resolve falls
// back to their defaults. Only a payload that is not a JSON object is an error.
func Decode(data []byte) (*Settings, error) {
	m, err := jsonutil.DecodeObject(data, "decoding settings")
	if err != nil {
		return nil, err
	}
	s := &Settings{
		TextColor:       jsonutil.GetString(m, "textColor"),
		BackgroundColor: jsonutil.GetString(m, "backgroundColor"),
	}
	if n, ok := jsonutil.GetInt(m, "height"); ok {
		s.Height = n
	}
	if n, ok := jsonutil.GetInt(m, "width"); ok {
		s.Width = n
	}
	return s, nil
}

// Encode returns the JSON form of s.
func (s Settings) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
