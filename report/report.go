// Package report renders lint records for people and tools: plain text with
// optional source excerpts, JSON, and checkstyle XML.
package report

import (
	"fmt"
	"io"

	"github.com/dpotapov/go-htmllint/lint"
)

// Counts holds the number of records per category.
type Counts struct {
	Structure int `json:"structure"`
	Helper    int `json:"helper"`
	Fluff     int `json:"fluff"`
}

// Total returns the number of records counted.
func (c Counts) Total() int {
	return c.Structure + c.Helper + c.Fluff
}

// Count tallies errs by category.
func Count(errs []*lint.Error) Counts {
	var c Counts
	for _, e := range errs {
		switch e.Category() {
		case lint.Structure:
			c.Structure++
		case lint.Helper:
			c.Helper++
		case lint.Fluff:
			c.Fluff++
		}
	}
	return c
}

// WriteSummary writes a one-line tally of errs to w.
func WriteSummary(w io.Writer, errs []*lint.Error) error {
	c := Count(errs)
	if c.Total() == 0 {
		_, err := fmt.Fprintln(w, "No defects found.")
		return err
	}
	_, err := fmt.Fprintf(w, "%d defects: %d structure, %d helper, %d fluff\n",
		c.Total(), c.Structure, c.Helper, c.Fluff)
	return err
}
