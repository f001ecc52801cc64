package docstore

import "encoding/json"

// Document is a single viewable record in the store.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
}

// Section is one block of a document. Every field is optional. An empty
// list is kept distinct from a missing one.
type Section struct {
	Heading    string      `json:"heading,omitempty"`
	Content    string      `json:"content,omitempty"`
	List       []string    `json:"list,omitzero"`
	CodeBlocks []CodeBlock `json:"codeBlocks,omitempty"`
}

// CodeBlock is a preformatted snippet inside a section.
type CodeBlock struct {
	Code string `json:"code"`
}

// Folder is a node of the folder tree. Files holds document ids.
type Folder struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Files      []string `json:"files"`
	Subfolders []Folder `json:"subfolders,omitempty"`
}

// Store is the full read-only snapshot: the folder tree and the document
// collection. Older payloads name the collection "docs"; both are accepted.
type Store struct {
	Folders []Folder   `json:"folders"`
	Files   []Document `json:"files"`
}

func (s *Store) UnmarshalJSON(data []byte) error {
	var raw struct {
		Folders []Folder   `json:"folders"`
		Files   []Document `json:"files"`
		Docs    []Document `json:"docs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Folders = raw.Folders
	s.Files = raw.Files
	if s.Files == nil {
		s.Files = raw.Docs
	}
	return nil
}
