package upload

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/cli/api"
	"docvault/cli/requests"
)

func TestVisibility(t *testing.T) {
	isPublic, err := Visibility(false, false)
	require.NoError(t, err)
	assert.Nil(t, isPublic)

	isPublic, err = Visibility(true, false)
	require.NoError(t, err)
	require.NotNil(t, isPublic)
	assert.True(t, *isPublic)

	isPublic, err = Visibility(false, true)
	require.NoError(t, err)
	require.NotNil(t, isPublic)
	assert.False(t, *isPublic)

	_, err = Visibility(true, true)
	assert.ErrorIs(t, err, errBothVisibilities)
}

func TestUploadFile(t *testing.T) {
	fields := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload", r.URL.Path)

		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		assert.NoError(t, err)

		reader := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			assert.NoError(t, err)

			value, _ := io.ReadAll(part)
			if part.FormName() == "file" {
				fields["filename"] = part.FileName()
			}
			fields[part.FormName()] = string(value)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"d1","title":"notes.txt"}}`))
	}))
	t.Cleanup(server.Close)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/notes.txt", []byte("hello"), 0o644))

	isPublic := true
	ctx := api.InitContext(server.URL, "token", requests.NewClient())
	doc, err := UploadFile(ctx, fs, "/docs/notes.txt", "f1", &isPublic)
	require.NoError(t, err)

	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, "hello", fields["file"])
	assert.Equal(t, "notes.txt", fields["filename"])
	assert.Equal(t, "f1", fields["folderId"])
	assert.Equal(t, "true", fields["isPublic"])
}

func TestUploadFileRejectsMissingAndDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/docs", 0o755))
	ctx := api.InitContext("http://127.0.0.1:0", "token", requests.NewClient())

	_, err := UploadFile(ctx, fs, "/missing.txt", "", nil)
	assert.Error(t, err)

	_, err = UploadFile(ctx, fs, "/docs", "", nil)
	assert.ErrorContains(t, err, "is a directory")
}
