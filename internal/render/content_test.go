package render

import (
	"errors"
	"testing"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func tags(n *html.Node) []string {
	var out []string
	for _, c := range Children(n) {
		out = append(out, c.Data)
	}
	return out
}

func TestDocument_TitleDescriptionAndSections(t *testing.T) {
	doc := &docstore.Document{
		ID:          "d1",
		Title:       "Readme",
		Description: "intro",
		Sections: []docstore.Section{
			{Heading: "Usage", Content: "run it"},
			{List: []string{"one", "two", "three"}},
			{CodeBlocks: []docstore.CodeBlock{{Code: "a"}, {Code: "b"}}},
			{},
			{Heading: "All", Content: "c", List: []string{"x"}, CodeBlocks: []docstore.CodeBlock{{Code: "y"}}},
		},
	}

	content, err := Document(doc)
	require.NoError(t, err)
	assert.True(t, HasClass(content, "content"))

	children := Children(content)
	require.Len(t, children, 2+len(doc.Sections))
	assert.Equal(t, "h1", children[0].Data)
	assert.Equal(t, "Readme", TextContent(children[0]))
	assert.Equal(t, "p", children[1].Data)
	assert.Equal(t, "intro", TextContent(children[1]))

	sections := FindAll(content, ByClass("section"))
	require.Len(t, sections, len(doc.Sections))

	want := [][]string{
		{"h2", "p"},
		{"ul"},
		{"pre", "pre"},
		nil,
		{"h2", "p", "ul", "pre"},
	}
	for i, sec := range sections {
		assert.Equal(t, want[i], tags(sec), "section %d", i)
	}

	items := FindAll(sections[1], ByTag(atom.Li))
	require.Len(t, items, 3)
	for i, w := range []string{"one", "two", "three"} {
		assert.Equal(t, w, TextContent(items[i]))
	}

	codes := FindAll(sections[2], ByTag(atom.Code))
	require.Len(t, codes, 2)
	assert.Equal(t, "a", TextContent(codes[0]))
	assert.Equal(t, "b", TextContent(codes[1]))
	assert.True(t, HasClass(codes[0].Parent, "codeblock"))
}

func TestDocument_EmptySectionsIsNotAnError(t *testing.T) {
	content, err := Document(&docstore.Document{ID: "d", Title: "T", Sections: []docstore.Section{}})
	require.NoError(t, err)
	assert.Empty(t, FindAll(content, ByClass("section")))
}

func TestDocument_Missing(t *testing.T) {
	_, err := Document(nil)
	assert.True(t, errors.Is(err, docstore.ErrDocumentNotFound))

	_, err = Document(&docstore.Document{ID: "d", Title: "T"})
	assert.True(t, errors.Is(err, docstore.ErrDocumentNotFound))
}

func TestDocument_EscapesText(t *testing.T) {
	content, err := Document(&docstore.Document{
		Title:    "<script>",
		Sections: []docstore.Section{{CodeBlocks: []docstore.CodeBlock{{Code: "if a < b {}"}}}},
	})
	require.NoError(t, err)
	out := String(content)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "if a &lt; b {}")
}
