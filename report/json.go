package report

import (
	"encoding/json"
	"io"

	"github.com/dpotapov/go-htmllint/lint"
)

// JSONOutput is the JSON document written by WriteJSON.
type JSONOutput struct {
	Clean  bool          `json:"clean"`
	Counts Counts        `json:"counts"`
	Errors []*lint.Error `json:"errors"`
}

// NewJSONOutput builds the JSON form of errs.
func NewJSONOutput(errs []*lint.Error) JSONOutput {
	out := JSONOutput{
		Clean:  len(errs) == 0,
		Counts: Count(errs),
		Errors: errs,
	}
	if out.Errors == nil {
		out.Errors = []*lint.Error{}
	}
	return out
}

// WriteJSON writes errs to w as an indented JSON document.
func WriteJSON(w io.Writer, errs []*lint.Error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONOutput(errs))
}
