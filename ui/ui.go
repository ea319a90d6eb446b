package ui

import (
	"encoding/json"
	"io"
)

// Severity picks the colour a value is rendered with.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain
	SeveritySuccess                 // green
	SeverityWarn                    // yellow
	SeverityError                   // red
	SeverityEmphasis                // bold
)

// StyledText is a value plus the colour it should be shown in. It marshals
// to JSON as the bare text.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything the addressbook commands print. TerminalUI writes to
// stdout, RecordingUI keeps the calls for tests.
//
// Diagnostics do not belong here, they go to the log package.
type UI interface {
	// Style renders t in its colour, or as plain text when colours are off.
	//
	//	u.Info("%s => %s", u.Style(role), u.Style(addr))
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error prints in red. It does not exit.
	Error(format string, args ...any)

	// Section prints a "===== title =====" separator.
	Section(title string)

	// KeyValue prints label/value pairs with the values aligned.
	KeyValue(rows [][2]string)

	// Table prints a bordered table. A nil header skips the header row.
	Table(headers []string, rows [][]string)

	// TableWithGroups is Table with a divider between groups, e.g. one group
	// per network.
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner shows msg with an animation until the returned func is called.
	//
	//	stop := u.Spinner("fetching reserves")
	//	defer stop()
	Spinner(msg string) func()

	// Indent returns a UI one level deeper sharing the same output.
	Indent() UI

	// Writer is the indented output, for encoders that take an io.Writer.
	Writer() io.Writer
}
