package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/docdesk/internal/config"
	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStore = `{
  "folders": [
    {"id": "f1", "name": "Guides", "files": ["d1"], "subfolders": [{"id": "f2", "name": "Archive", "files": []}]}
  ],
  "files": [
    {"id": "d1", "title": "Getting Started", "description": "First steps.",
     "sections": [{"heading": "Install", "content": "Run it.", "codeBlocks": [{"code": "make"}]}]}
  ]
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.PublicDir = ""
	return cfg
}

// openLibrary writes body to a temp file and opens it.
func openLibrary(t *testing.T, body string) (*docstore.Library, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	lib, err := docstore.Open(path, discardLogger())
	require.NoError(t, err)
	return lib, path
}

func newTestServer(t *testing.T, source Source, cfg config.Config) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(source, discardLogger(), cfg))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	ts := newTestServer(t, lib, testConfig(t))

	resp, body := get(t, ts.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestListDocs_ETag(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	ts := newTestServer(t, lib, testConfig(t))

	resp, body := get(t, ts.URL+"/api/docs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	store, err := docstore.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	require.Len(t, store.Files, 1)
	assert.Equal(t, "Getting Started", store.Files[0].Title)

	resp, body = get(t, ts.URL+"/api/docs", http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Empty(t, body)

	resp, _ = get(t, ts.URL+"/api/docs", http.Header{"If-None-Match": {`"stale"`}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDocs_ETagChangesOnReload(t *testing.T) {
	lib, path := openLibrary(t, testStore)
	ts := newTestServer(t, lib, testConfig(t))

	resp, _ := get(t, ts.URL+"/api/docs", nil)
	before := resp.Header.Get("ETag")

	updated := bytes.Replace([]byte(testStore), []byte("Getting Started"), []byte("Getting Going"), 1)
	require.NoError(t, os.WriteFile(path, updated, 0o644))
	require.NoError(t, lib.Reload())

	resp, body := get(t, ts.URL+"/api/docs", http.Header{"If-None-Match": {before}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEqual(t, before, resp.Header.Get("ETag"))
	assert.Contains(t, string(body), "Getting Going")
}

func TestGetDoc(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	ts := newTestServer(t, lib, testConfig(t))

	resp, body := get(t, ts.URL+"/api/docs/d1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc docstore.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "d1", doc.ID)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "make", doc.Sections[0].CodeBlocks[0].Code)
}

func TestGetDoc_NotFoundBody(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	ts := newTestServer(t, lib, testConfig(t))

	resp, body := get(t, ts.URL+"/api/docs/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"error":"Document not found"}`, string(body))
}

// failingSource stands in for an unreachable remote store.
type failingSource struct{}

func (failingSource) Snapshot(ctx context.Context) (*docstore.Store, error) {
	return nil, &docstore.FetchError{Op: "list documents", Err: errors.New("connection refused")}
}

func (failingSource) Document(ctx context.Context, id string) (*docstore.Document, error) {
	return nil, &docstore.FetchError{Op: "get document", Status: http.StatusInternalServerError}
}

func TestRemoteFailures(t *testing.T) {
	ts := newTestServer(t, failingSource{}, testConfig(t))

	resp, _ := get(t, ts.URL+"/api/docs", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	resp, _ = get(t, ts.URL+"/api/docs/d1", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestListDocs_ThroughClient(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	upstream := newTestServer(t, lib, testConfig(t))

	client := docstore.NewClient(upstream.URL, 0)
	defer client.Close()
	ts := newTestServer(t, client, testConfig(t))

	resp, body := get(t, ts.URL+"/api/docs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, lib.Current().ETag, resp.Header.Get("ETag"))
	assert.Equal(t, string(lib.Current().Raw), string(body))

	resp, body = get(t, ts.URL+"/api/docs/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"error":"Document not found"}`, string(body))
}

func TestStaticFiles(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<title>desk</title>"), 0o644))
	cfg := testConfig(t)
	cfg.PublicDir = dir
	ts := newTestServer(t, lib, cfg)

	resp, body := get(t, ts.URL+"/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "desk")

	resp, _ = get(t, ts.URL+"/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func upload(t *testing.T, url, field string, files map[string]string, fields map[string]string) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	resp, err := http.Post(url, mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestConvert(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	cfg := testConfig(t)
	cfg.MaxUploadBytes = 1024
	ts := newTestServer(t, lib, cfg)

	resp, body := upload(t, ts.URL+"/api/convert", "file",
		map[string]string{"notes.md": "# Notes\n\nHello.\n\n## Part\n\n- x\n"},
		map[string]string{"doc_id": "notes"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var doc docstore.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Equal(t, "notes", doc.ID)
	assert.Equal(t, "Notes", doc.Title)
	assert.Equal(t, "Hello.", doc.Description)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []string{"x"}, doc.Sections[0].List)

	resp, body = upload(t, ts.URL+"/api/convert", "file", map[string]string{"plain.txt": "hi"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Len(t, doc.ID, 16)

	resp, _ = upload(t, ts.URL+"/api/convert", "file", map[string]string{"tool.exe": "MZ"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	big := string(bytes.Repeat([]byte("a"), 2048))
	resp, _ = upload(t, ts.URL+"/api/convert", "file", map[string]string{"big.txt": big}, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, _ = upload(t, ts.URL+"/api/convert", "other", map[string]string{"a.txt": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBatchConvert(t *testing.T) {
	lib, _ := openLibrary(t, testStore)
	ts := newTestServer(t, lib, testConfig(t))

	resp, body := upload(t, ts.URL+"/api/convert/batch", "files", map[string]string{
		"a.md":  "# A",
		"b.exe": "MZ",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Documents []struct {
			Filename string             `json:"filename"`
			Document *docstore.Document `json:"document"`
			Error    string             `json:"error"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Documents, 2)
	for _, d := range out.Documents {
		switch d.Filename {
		case "a.md":
			require.NotNil(t, d.Document)
			assert.Equal(t, "A", d.Document.Title)
		case "b.exe":
			assert.Contains(t, d.Error, "unsupported")
		default:
			t.Errorf("unexpected filename %q", d.Filename)
		}
	}

	resp, _ = upload(t, ts.URL+"/api/convert/batch", "files", nil, map[string]string{"x": "y"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"notes.md":         "notes.md",
		"../../etc/passwd": "passwd",
		`..\..\win.txt`:    "____win.txt",
		"":                 "unnamed",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestEtagMatches(t *testing.T) {
	assert.True(t, etagMatches(`"abc"`, `"abc"`))
	assert.True(t, etagMatches(`"x", W/"abc"`, `"abc"`))
	assert.True(t, etagMatches(`*`, `"abc"`))
	assert.False(t, etagMatches(``, `"abc"`))
	assert.False(t, etagMatches(`"abd"`, `"abc"`))
}
