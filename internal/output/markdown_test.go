package output

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/masmgr/changelog-go/internal/aggregation"
	"github.com/masmgr/changelog-go/internal/changelog"
	"github.com/masmgr/changelog-go/internal/git"
)

func sampleReport() *aggregation.Report {
	when := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	commits := []changelog.VersionedCommit{
		{
			CommitInfo: git.CommitInfo{ShortSHA: "abc1234", When: when, Message: "feat(auth): add login", Category: "Feat"},
			Branch:     "main", Version: "2.0.0",
		},
		{
			CommitInfo: git.CommitInfo{ShortSHA: "def5678", When: when, Message: "fix: handle nil pointer", Category: "Fix"},
			Branch:     "main", Version: "2.0.0",
		},
		{
			CommitInfo: git.CommitInfo{ShortSHA: "0123abc", When: when, Message: "tidy up whitespace", Category: "Other"},
			Branch:     "develop", Version: "latest",
		},
	}
	return aggregation.Group(commits)
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, sampleReport(), "Changelog"); err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}

	expected := `# Changelog

## 2026-08-30

### MAIN

#### 2.0.0

**Feat**

- feat(auth): add login (abc1234)

**Fix**

- fix: handle nil pointer (def5678)

### DEVELOP

#### latest

**Other**

- tidy up whitespace (0123abc)
`

	if buf.String() != expected {
		t.Errorf("rendered document mismatch:\n--- got ---\n%s\n--- expected ---\n%s", buf.String(), expected)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, aggregation.Group(nil), "Changelog"); err != nil {
		t.Fatalf("renderMarkdown: %v", err)
	}
	if buf.String() != NoCommitsMessage+"\n" {
		t.Errorf("empty document = %q, expected %q", buf.String(), NoCommitsMessage+"\n")
	}
}

func TestMarkdownWriter_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")

	w := &MarkdownWriter{}
	opts := OutputOptions{Format: FormatMarkdown, OutputPath: path, Title: "Changelog"}
	if err := w.Write(sampleReport(), opts); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("# Changelog\n")) {
		t.Errorf("file does not start with the document title: %q", data[:min(len(data), 30)])
	}

	// A second run overwrites prior content rather than appending.
	if err := w.Write(aggregation.Group(nil), opts); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != NoCommitsMessage+"\n" {
		t.Errorf("overwritten file = %q, expected %q", data, NoCommitsMessage+"\n")
	}
}

func TestNewReportWriter(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected ReportWriter
	}{
		{FormatMarkdown, &MarkdownWriter{}},
		{FormatConsole, &ConsoleWriter{}},
		{FormatJSON, &JSONWriter{}},
		{OutputFormat("bogus"), &MarkdownWriter{}},
	}

	for _, tt := range tests {
		got := NewReportWriter(tt.format)
		if reflect.TypeOf(got) != reflect.TypeOf(tt.expected) {
			t.Errorf("NewReportWriter(%q) = %T, expected %T", tt.format, got, tt.expected)
		}
	}
}
