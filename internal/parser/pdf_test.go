package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/google/go-cmp/cmp"
)

func TestPagesToSections(t *testing.T) {
	b := newBuilder("report.pdf")
	pagesToSections(b, "first page\f\f  third page  ")
	doc := b.build()

	want := []docstore.Section{
		{Heading: "Page 1", Content: "first page"},
		{Heading: "Page 3", Content: "third page"},
	}
	if diff := cmp.Diff(want, doc.Sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
	if doc.Title != "report" {
		t.Errorf("expected title %q, got %q", "report", doc.Title)
	}
}

func TestPDFParser_NotAPDF(t *testing.T) {
	p := &PDFParser{}
	if _, err := p.Parse(strings.NewReader("plain text"), "fake.pdf"); err == nil {
		t.Error("expected error for non-pdf input")
	}
}
