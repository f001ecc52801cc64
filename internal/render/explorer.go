package render

import (
	"github.com/dgallion1/docdesk/internal/docstore"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Icon image paths under the public directory and the data attributes the
// desktop client reads to route double-clicks.
const (
	IconFolderTree = "/images/icons/folder-explorer.png"
	IconFolder     = "/images/icons/folder-document.png"
	IconDocument   = "/images/icons/notepad.png"
	IconPanelClose = "/images/icons/close-x.svg"
	KindFolder     = "folder"
	KindFile       = "file"
	attrTargetID   = "data-doc-id"
	attrTargetKind = "data-kind"
)

// FolderTree renders the explorer's left panel: a tree rooted at folder.
// Each node lists its own label, then its resolvable files in order, then
// its subfolders in order.
func FolderTree(folder *docstore.Folder, store *docstore.Store) *html.Node {
	tree := Element(atom.Ul, Class("tree-view"))
	treeNode(tree, folder, store)
	return tree
}

func treeNode(parent *html.Node, folder *docstore.Folder, store *docstore.Store) {
	li := Element(atom.Li, Class("tree-folder"), Attr(attrTargetID, folder.ID), Attr(attrTargetKind, KindFolder))
	details := Element(atom.Details, Attr("open", ""))
	summary := Append(Element(atom.Summary),
		Element(atom.Img, Attr("src", IconFolderTree), Attr("alt", ""), Class("tree-icon")),
		Text(folder.Name),
	)
	details.AppendChild(summary)

	ul := Element(atom.Ul)
	for _, doc := range store.ResolveFiles(folder) {
		link := Append(Element(atom.A, Attr("href", "#"), Attr(attrTargetID, doc.ID), Attr(attrTargetKind, KindFile)),
			Element(atom.Img, Attr("src", IconDocument), Attr("alt", ""), Class("tree-icon")),
			Text(doc.Title),
		)
		ul.AppendChild(Append(Element(atom.Li, Class("tree-file")), link))
	}
	for i := range folder.Subfolders {
		treeNode(ul, &folder.Subfolders[i], store)
	}

	details.AppendChild(ul)
	li.AppendChild(details)
	parent.AppendChild(li)
}

// FolderIcons renders the explorer's right panel: one icon per direct
// subfolder, then one per resolvable file of the same folder.
func FolderIcons(folder *docstore.Folder, store *docstore.Store) *html.Node {
	grid := Element(atom.Div, Class("explorer-icons"))
	for i := range folder.Subfolders {
		grid.AppendChild(FolderIcon(&folder.Subfolders[i], "explorer-icon"))
	}
	for _, doc := range store.ResolveFiles(folder) {
		grid.AppendChild(DocumentIcon(doc, "explorer-icon"))
	}
	return grid
}

// DesktopIcons renders one icon per top-level folder.
func DesktopIcons(store *docstore.Store) *html.Node {
	icons := Element(atom.Div, Class("desktop-icons"))
	for i := range store.Folders {
		icons.AppendChild(FolderIcon(&store.Folders[i], "desktop-icon"))
	}
	return icons
}

// FolderIcon renders a double-clickable folder icon.
func FolderIcon(f *docstore.Folder, classes ...string) *html.Node {
	return icon(f.ID, KindFolder, IconFolder, f.Name, classes)
}

// DocumentIcon renders a double-clickable document icon.
func DocumentIcon(d *docstore.Document, classes ...string) *html.Node {
	return icon(d.ID, KindFile, IconDocument, d.Title, classes)
}

func icon(id, kind, img, title string, classes []string) *html.Node {
	names := append([]string{"icon", kind}, classes...)
	return Append(Element(atom.Div, Class(names...), Attr(attrTargetID, id), Attr(attrTargetKind, kind)),
		Element(atom.Img, Attr("src", img), Attr("alt", title)),
		TextElement(atom.Span, title, Class("limited-text")),
	)
}

// ExplorerBody assembles both explorer panels.
func ExplorerBody(folder *docstore.Folder, store *docstore.Store) *html.Node {
	header := Append(Element(atom.Div, Class("folder-section--header")),
		TextElement(atom.Span, "Folders"),
		Element(atom.Img, Attr("src", IconPanelClose), Attr("alt", "")),
	)
	content := Append(Element(atom.Div, Class("folder-section--content")), FolderTree(folder, store))
	folders := Append(Element(atom.Div, Class("folders-section")), header, content)
	right := Append(Element(atom.Div, Class("content-section")), FolderIcons(folder, store))
	return Append(Element(atom.Div, Class("window-body", "explorer")), folders, right)
}

// ViewerToolbarLabels are the fixed, inert toolbar buttons of a viewer.
var ViewerToolbarLabels = []string{"File", "Edit", "View", "Help"}

// ViewerBody assembles the viewer toolbar and the rendered document.
func ViewerBody(doc *docstore.Document) (*html.Node, error) {
	content, err := Document(doc)
	if err != nil {
		return nil, err
	}
	toolbar := Element(atom.Div, Class("toolbar"))
	for _, label := range ViewerToolbarLabels {
		toolbar.AppendChild(TextElement(atom.Button, label, Class("button")))
	}
	return Append(Element(atom.Div, Class("window-body")), toolbar, content), nil
}
