/*
 * MultiTrie
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

/*
TraceableError can record and show a trace of the sources it passed
through (e.g. a chain of loaded files that led to the error).
*/
type TraceableError interface {
	error

	/*
		AddTrace adds a trace step.
	*/
	AddTrace(source string, line int)

	/*
		GetTraceString returns the current trace as a string.
	*/
	GetTraceString() []string
}

/*
SourceError is an error which occurred while reading or matching against
a named source (a loaded file, a REPL line, ...).
*/
type SourceError struct {
	Source string   // Name of the source which produced the error
	Type   error    // Error type (to be used for equal checks)
	Detail string   // Details of this error
	Line   int      // Line of the error
	Pos    int      // Position of the error
	Trace  []string // Trace of sources that led to this error
}

/*
Source reading and matching related error types.
*/
var (
	ErrUnexpectedEOF = errors.New("Unexpected end of input")
	ErrUnexpectedTok = errors.New("Unexpected token")
)

/*
NewSourceError creates a new SourceError object.
*/
func NewSourceError(source string, t error, detail string, line int, pos int) error {
	return &SourceError{source, t, detail, line, pos, nil}
}

/*
Error returns a human-readable string representation of this error.
*/
func (se *SourceError) Error() string {
	ret := fmt.Sprintf("error in %s: %v (%v)", se.Source, se.Type, se.Detail)

	if se.Line != 0 {

		// Add line if available

		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, se.Line, se.Pos)
	}

	return ret
}

/*
AddTrace adds a trace step.
*/
func (se *SourceError) AddTrace(source string, line int) {
	se.Trace = append(se.Trace, fmt.Sprintf("%s:%d", source, line))
}

/*
GetTraceString returns the current trace as a string.
*/
func (se *SourceError) GetTraceString() []string {
	return se.Trace
}

/*
ToJSONObject returns this SourceError as a JSON object.
*/
func (se *SourceError) ToJSONObject() map[string]interface{} {
	t := ""
	if se.Type != nil {
		t = se.Type.Error()
	}
	return map[string]interface{}{
		"Source": se.Source,
		"Type":   t,
		"Detail": se.Detail,
		"Line":   se.Line,
		"Pos":    se.Pos,
		"Trace":  se.Trace,
	}
}

/*
MarshalJSON serializes this SourceError into a JSON string.
*/
func (se *SourceError) MarshalJSON() ([]byte, error) {
	return json.Marshal(se.ToJSONObject())
}
