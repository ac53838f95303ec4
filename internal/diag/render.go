package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	fatalColor    = color.New(color.FgRed, color.Bold)
	errorColor    = color.New(color.FgRed)
	warningColor  = color.New(color.FgYellow)
	locationColor = color.New(color.FgCyan)
)

// Render writes d to w in the colorized "path:line:col: severity: message"
// form the CLI uses, matching the teacher's pretty-error-output idiom in
// cmd/dwscript's error formatting.
func Render(w io.Writer, path string, d Diagnostic) {
	c := errorColor
	switch d.Severity {
	case SeverityFatal:
		c = fatalColor
	case SeverityWarning:
		c = warningColor
	}
	loc := locationColor.Sprintf("%s:%s", path, d.Range.Begin)
	fmt.Fprintf(w, "%s: %s [%s]: %s\n", loc, c.Sprint(d.Severity), d.Category, d.Message)
}

// RenderAll renders every diagnostic in order.
func RenderAll(w io.Writer, path string, ds []Diagnostic) {
	for _, d := range ds {
		Render(w, path, d)
	}
}

// Summary formats a pluralized "N error(s), M warning(s) generated" tail
// line the way a build tool reports its run, using x/text/message the same
// way the rest of the domain stack reaches for golang.org/x/text.
func Summary(ds []Diagnostic) string {
	var errs, warns int
	for _, d := range ds {
		switch d.Severity {
		case SeverityWarning:
			warns++
		default:
			errs++
		}
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d error(s), %d warning(s) generated", errs, warns)
}
