// Package report prints the summary of a generation run.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/Masterminds/sprig"
)

//go:embed summary.tmpl
var summaryTemplate string

var summary = template.Must(template.New("summary").Funcs(sprig.TxtFuncMap()).Parse(summaryTemplate))

// Summary is what a run did. Files is only listed when non-empty, so callers
// leave it nil unless a listing was asked for.
type Summary struct {
	RunID      string
	Command    string
	Directory  string
	Written    int
	Skipped    int
	Collisions int
	Elapsed    time.Duration
	Files      []string
}

// Render writes the summary to w.
func Render(w io.Writer, s Summary) error {
	s.Elapsed = s.Elapsed.Round(time.Millisecond)
	if err := summary.Execute(w, s); err != nil {
		return fmt.Errorf("could not render summary: %w", err)
	}
	return nil
}
