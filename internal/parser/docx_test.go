package parser

import (
	"bytes"
	"testing"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/fumiama/go-docx"
	"github.com/google/go-cmp/cmp"
)

func TestDOCXParser(t *testing.T) {
	w := docx.New().WithDefaultTheme()
	w.AddParagraph().Style("Title").AddText("Handbook")
	w.AddParagraph().AddText("Welcome aboard.")
	w.AddParagraph().Style("Heading1").AddText("Tools")
	w.AddParagraph().AddText("Install these.")
	w.AddParagraph().Style("ListParagraph").AddText("editor")
	w.AddParagraph().Style("ListParagraph").AddText("terminal")
	w.AddParagraph().Style("Heading2").AddText("Access")

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatalf("write docx: %v", err)
	}

	p := &DOCXParser{}
	doc, err := p.Parse(&buf, "handbook.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &docstore.Document{
		Title:       "Handbook",
		Description: "Welcome aboard.",
		Sections: []docstore.Section{
			{Heading: "Tools", Content: "Install these.", List: []string{"editor", "terminal"}},
			{Heading: "Access"},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDOCXParser_NotADocx(t *testing.T) {
	p := &DOCXParser{}
	if _, err := p.Parse(bytes.NewReader([]byte("plain text")), "fake.docx"); err == nil {
		t.Error("expected error for non-zip input")
	}
}
