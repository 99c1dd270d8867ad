package report

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/dpotapov/go-htmllint/lint"
)

// checkstyleVersion is the format version CI tools expect in the root element.
const checkstyleVersion = "4.3"

// Severity returns the checkstyle severity of a category.
func Severity(c lint.Category) string {
	switch c {
	case lint.Structure:
		return "error"
	case lint.Helper:
		return "warning"
	default:
		return "info"
	}
}

// Checkstyle builds a checkstyle document from errs. Records are grouped per
// file, files in the order they first appear.
func Checkstyle(errs []*lint.Error) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("checkstyle")
	root.CreateAttr("version", checkstyleVersion)

	files := make(map[string]*etree.Element)
	for _, e := range errs {
		f, ok := files[e.File()]
		if !ok {
			f = root.CreateElement("file")
			f.CreateAttr("name", e.File())
			files[e.File()] = f
		}
		el := f.CreateElement("error")
		el.CreateAttr("line", strconv.Itoa(e.Line()))
		el.CreateAttr("column", strconv.Itoa(e.Column()))
		el.CreateAttr("severity", Severity(e.Category()))
		el.CreateAttr("message", e.Message())
		el.CreateAttr("source", "htmllint."+string(e.Code()))
	}

	doc.Indent(2)
	return doc
}

// WriteCheckstyle writes errs to w as checkstyle XML.
func WriteCheckstyle(w io.Writer, errs []*lint.Error) error {
	_, err := Checkstyle(errs).WriteTo(w)
	return err
}
