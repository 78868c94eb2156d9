package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/cli/utils"
)

var testDocument = map[string]any{
	"id":              "d1",
	"title":           "Quarterly report",
	"author":          "Ann",
	"uploader_id":     "u1",
	"folder_id":       "f1",
	"is_private":      false,
	"file_size_bytes": 1024,
	"download_count":  2,
	"tags":            nil,
	"created_at":      "2024-05-01T10:00:00Z",
	"updated_at":      "2024-05-02T10:00:00Z",
}

func TestListDocuments(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, ok([]any{testDocument}))

	docs, err := fb.context(testToken).ListDocuments("")
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "Quarterly report", docs[0].Title)
	require.NotNil(t, docs[0].FolderID)
	assert.Equal(t, "f1", *docs[0].FolderID)
	assert.Nil(t, docs[0].Tags)

	assert.Equal(t, http.MethodGet, fb.last.Method)
	assert.Equal(t, "/documents", fb.last.Path)
	assert.Empty(t, fb.last.Query)
	assert.Equal(t, "Bearer "+testToken, fb.last.Auth)
}

func TestListDocumentsInFolder(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, ok([]any{}))

	docs, err := fb.context(testToken).ListDocuments("f1")
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, "folderId=f1", fb.last.Query)
}

func TestGetDocument(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, ok(testDocument))

	doc, err := fb.context(testToken).GetDocument("d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, int64(1024), doc.FileSizeBytes)
	assert.Equal(t, "/documents/d1", fb.last.Path)
}

func TestGetDocumentNotFound(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusNotFound, failure(http.StatusNotFound, "Document not found"))

	_, err := fb.context(testToken).GetDocument("missing")
	require.Error(t, err)
	assert.True(t, utils.IsStatus(err, http.StatusNotFound))
}

func TestDownloadDocument(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, ok(map[string]any{"url": "https://files.example.com/d1.pdf"}))

	download, err := fb.context(testToken).DownloadDocument("d1")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/d1.pdf", download.URL)
	assert.Equal(t, "/documents/d1/download", fb.last.Path)
}

func TestDeleteDocument(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, map[string]any{"success": true})

	envelope, err := fb.context(testToken).DeleteDocument("d1")
	require.NoError(t, err)
	assert.True(t, envelope.Success)
	assert.Equal(t, http.MethodDelete, fb.last.Method)
	assert.Equal(t, "/documents/d1", fb.last.Path)
}

func TestRegeneratePDF(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, map[string]any{"success": true})

	_, err := fb.context(testToken).RegeneratePDF("d1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, fb.last.Method)
	assert.Equal(t, "/documents/d1/regenerate", fb.last.Path)
	assert.Empty(t, fb.last.Body)
}

func TestChangeVisibility(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, map[string]any{"success": true})

	_, err := fb.context(testToken).ChangeVisibility("d1", true)
	require.NoError(t, err)
	assert.Equal(t, "/documents/d1/visibility", fb.last.Path)
	assert.Equal(t, map[string]any{"isPrivate": true}, jsonBody(t, fb.last.Body))
}

func TestMoveDocument(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, map[string]any{"success": true})

	folder := "f2"
	_, err := fb.context(testToken).MoveDocument("d1", &folder)
	require.NoError(t, err)
	assert.Equal(t, "/documents/d1/move", fb.last.Path)
	assert.Equal(t, map[string]any{"folderId": "f2"}, jsonBody(t, fb.last.Body))

	_, err = fb.context(testToken).MoveDocument("d1", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"folderId": nil}, jsonBody(t, fb.last.Body))
}

func TestEmptySuccessBody(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusNoContent, nil)

	envelope, err := fb.context(testToken).DeleteDocument("d1")
	require.NoError(t, err)
	assert.True(t, envelope.Success)
}

func TestFetchFile(t *testing.T) {
	var gotAuth string
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("%PDF-1.7"))
	}))
	defer files.Close()

	ctx := InitContext(files.URL, testToken, nil)

	var buf bytes.Buffer
	n, err := ctx.FetchFile("/files/d1.pdf", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.Equal(t, "%PDF-1.7", buf.String())
	assert.Equal(t, "Bearer "+testToken, gotAuth)

	// Links on other hosts don't receive the token
	ctx.Server = "http://api.example.com"
	buf.Reset()
	_, err = ctx.FetchFile(files.URL+"/files/d1.pdf", &buf)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestFetchFileEmptyLink(t *testing.T) {
	ctx := InitContext("http://localhost:4000", "", nil)
	_, err := ctx.FetchFile("", &bytes.Buffer{})
	assert.Error(t, err)
}
