package output

import (
	"io"
	"os"
	"time"

	"github.com/masmgr/changelog-go/internal/aggregation"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
)

// NoCommitsMessage is the fixed document body rendered when the report
// contains no commits at all.
const NoCommitsMessage = "No commits found."

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string // empty means stdout
	Title      string

	// GeneratedAt stamps formats that carry a generation time. The zero
	// value means the wall clock; tests inject a fixed time so repeated
	// runs produce byte-identical output.
	GeneratedAt time.Time
}

// ReportWriter writes a grouped changelog report.
type ReportWriter interface {
	Write(report *aggregation.Report, options OutputOptions) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatConsole:
		return &ConsoleWriter{}
	case FormatJSON:
		return &JSONWriter{}
	default:
		return &MarkdownWriter{}
	}
}

func createWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, err
		}
		return file, file, nil
	}
	return os.Stdout, nil, nil
}
