package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadForm struct {
	fileName string
	content  string
	fields   map[string]string
}

func uploadServer(t *testing.T, form *uploadForm) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			data, _ := io.ReadAll(file)
			form.fileName = header.Filename
			form.content = string(data)
		}

		form.fields = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			form.fields[key] = values[0]
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"d9","title":"notes.pdf"}}`))
	}))

	t.Cleanup(server.Close)
	return server
}

func TestUploadDocument(t *testing.T) {
	var form uploadForm
	server := uploadServer(t, &form)
	ctx := InitContext(server.URL, testToken, nil)

	public := true
	doc, err := ctx.UploadDocument("notes.pdf", strings.NewReader("content"), "f1", &public)
	require.NoError(t, err)

	assert.Equal(t, "d9", doc.ID)
	assert.Equal(t, "notes.pdf", form.fileName)
	assert.Equal(t, "content", form.content)
	assert.Equal(t, map[string]string{"folderId": "f1", "isPublic": "true"}, form.fields)
}

func TestUploadDocumentOptionalFields(t *testing.T) {
	var form uploadForm
	server := uploadServer(t, &form)
	ctx := InitContext(server.URL, testToken, nil)

	_, err := ctx.UploadDocument("notes.pdf", strings.NewReader("content"), "", nil)
	require.NoError(t, err)
	assert.Empty(t, form.fields)

	private := false
	_, err = ctx.UploadDocument("notes.pdf", strings.NewReader("content"), "", &private)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"isPublic": "false"}, form.fields)
}

func TestUploadDocumentMissingName(t *testing.T) {
	ctx := InitContext("http://localhost:4000", testToken, nil)
	_, err := ctx.UploadDocument("", strings.NewReader("content"), "", nil)
	assert.Error(t, err)
}
