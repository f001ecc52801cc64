package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unicode"

	"github.com/dgallion1/docdesk/internal/docstore"
	"golang.org/x/sync/errgroup"
)

// Importer builds a store from a directory tree. Each directory below the
// root becomes a folder, nested directories become subfolders, and every
// supported file becomes a document listed in its directory's folder.
// Files directly in the root go to a folder named after the root.
type Importer struct {
	Log *slog.Logger
	// Concurrency bounds parallel parsing. Zero uses GOMAXPROCS.
	Concurrency int
	// PDFFallbackPdftotext enables the pdftotext fallback for PDFs.
	PDFFallbackPdftotext bool
}

type importJob struct {
	path string
	id   string
}

// Import scans root and parses every supported file. The first parse
// failure cancels the remaining work and is returned.
func (im *Importer) Import(ctx context.Context, root string) (*docstore.Store, error) {
	log := im.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sc := &dirScanner{folderIDs: idSet{}, docIDs: idSet{}, log: log}
	top, err := sc.scan(root, "")
	if err != nil {
		return nil, err
	}

	store := &docstore.Store{Folders: top.Subfolders}
	if len(top.Files) > 0 {
		name := filepath.Base(filepath.Clean(root))
		top.ID = sc.folderIDs.claim(slug(name))
		top.Name = name
		top.Subfolders = nil
		store.Folders = append([]docstore.Folder{top}, store.Folders...)
	}
	if store.Folders == nil {
		store.Folders = []docstore.Folder{}
	}

	docs, err := im.parseAll(ctx, sc.jobs)
	if err != nil {
		return nil, err
	}
	store.Files = docs

	log.Info("import complete", "root", root, "folders", len(sc.folderIDs), "documents", len(docs))
	return store, nil
}

func (im *Importer) parseAll(ctx context.Context, jobs []importJob) ([]docstore.Document, error) {
	limit := im.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	docs := make([]docstore.Document, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := im.parseFile(job.path)
			if err != nil {
				return fmt.Errorf("import %s: %w", job.path, err)
			}
			doc.ID = job.id
			docs[i] = *doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (im *Importer) parseFile(path string) (*docstore.Document, error) {
	p, err := ForFile(path)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*PDFParser); ok {
		pp.FallbackPdftotext = im.PDFFallbackPdftotext
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(f, filepath.Base(path))
}

type dirScanner struct {
	folderIDs idSet
	docIDs    idSet
	jobs      []importJob
	log       *slog.Logger
}

// scan walks dir in name order. rel is dir relative to the import root.
func (sc *dirScanner) scan(dir, rel string) (docstore.Folder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return docstore.Folder{}, fmt.Errorf("scan %s: %w", dir, err)
	}

	folder := docstore.Folder{Name: filepath.Base(dir), Files: []string{}}
	if rel != "" {
		folder.ID = sc.folderIDs.claim(slug(rel))
	}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		childRel := filepath.Join(rel, name)

		if e.IsDir() {
			sub, err := sc.scan(path, childRel)
			if err != nil {
				return docstore.Folder{}, err
			}
			folder.Subfolders = append(folder.Subfolders, sub)
			continue
		}
		if !e.Type().IsRegular() || !IsSupportedExtension(name) {
			sc.log.Debug("skipping file", "path", path)
			continue
		}
		id := sc.docIDs.claim(slug(strings.TrimSuffix(childRel, filepath.Ext(childRel))))
		folder.Files = append(folder.Files, id)
		sc.jobs = append(sc.jobs, importJob{path: path, id: id})
	}
	return folder, nil
}

// idSet hands out unique ids, suffixing repeats with -2, -3 and so on.
type idSet map[string]bool

func (s idSet) claim(base string) string {
	id := base
	for n := 2; s[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	s[id] = true
	return id
}

// slug lowercases s and collapses every run of other characters than
// letters and digits to a single dash.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "doc"
	}
	return b.String()
}
