package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestCSVParser(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,role\n")
	for i := range 25 {
		fmt.Fprintf(&b, "user%d,dev\n", i)
	}
	b.WriteString("extra,ops,oncall\n")

	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(b.String()), "team.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "team" {
		t.Errorf("expected title %q, got %q", "team", doc.Title)
	}
	if doc.Description != "Columns: name, role" {
		t.Errorf("expected description %q, got %q", "Columns: name, role", doc.Description)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "Rows 2-21" {
		t.Errorf("expected %q, got %q", "Rows 2-21", doc.Sections[0].Heading)
	}
	if len(doc.Sections[0].List) != 20 {
		t.Errorf("expected 20 rows, got %d", len(doc.Sections[0].List))
	}
	if got := doc.Sections[0].List[0]; got != "name: user0, role: dev" {
		t.Errorf("expected %q, got %q", "name: user0, role: dev", got)
	}
	last := doc.Sections[1]
	if last.Heading != "Rows 22-27" {
		t.Errorf("expected %q, got %q", "Rows 22-27", last.Heading)
	}
	if got := last.List[len(last.List)-1]; got != "name: extra, role: ops, oncall" {
		t.Errorf("expected %q, got %q", "name: extra, role: ops, oncall", got)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 0 || doc.Description != "" {
		t.Errorf("expected empty document, got %+v", doc)
	}
}
