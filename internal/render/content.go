package render

import (
	"fmt"

	"github.com/dgallion1/docdesk/internal/docstore"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document renders doc as a content tree: title, description, then one
// section node per section holding only the fields that are present.
// It fails only when doc or its section list is missing.
func Document(doc *docstore.Document) (*html.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("render: %w", docstore.ErrDocumentNotFound)
	}
	if doc.Sections == nil {
		return nil, fmt.Errorf("render %s: no sections: %w", doc.ID, docstore.ErrDocumentNotFound)
	}

	content := Element(atom.Div, Class("content"))
	Append(content,
		TextElement(atom.H1, doc.Title),
		TextElement(atom.P, doc.Description),
	)
	for _, s := range doc.Sections {
		content.AppendChild(section(s))
	}
	return content, nil
}

func section(s docstore.Section) *html.Node {
	sec := Element(atom.Div, Class("section"))
	if s.Heading != "" {
		sec.AppendChild(TextElement(atom.H2, s.Heading))
	}
	if s.Content != "" {
		sec.AppendChild(TextElement(atom.P, s.Content))
	}
	if s.List != nil {
		ul := Element(atom.Ul)
		for _, item := range s.List {
			ul.AppendChild(TextElement(atom.Li, item))
		}
		sec.AppendChild(ul)
	}
	for _, cb := range s.CodeBlocks {
		pre := Element(atom.Pre, Class("codeblock"))
		pre.AppendChild(TextElement(atom.Code, cb.Code))
		sec.AppendChild(pre)
	}
	return sec
}
