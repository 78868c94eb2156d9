package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/shared"
)

var testFolder = map[string]any{
	"id":          "f1",
	"name":        "Reports",
	"description": "Finance reports",
	"owner_id":    "u1",
	"is_public":   true,
	"created_at":  "2024-05-01T10:00:00Z",
	"updated_at":  "2024-05-01T10:00:00Z",
}

func TestListFolders(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, ok([]any{testFolder}))

	folders, err := fb.context(testToken).ListFolders()
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Reports", folders[0].Name)
	require.NotNil(t, folders[0].Description)
	assert.Equal(t, "Finance reports", *folders[0].Description)
	assert.Equal(t, "/folders", fb.last.Path)
}

func TestGetFolder(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, ok(testFolder))

	folder, err := fb.context(testToken).GetFolder("f1")
	require.NoError(t, err)
	assert.True(t, folder.IsPublic)
	assert.Equal(t, "/folders/f1", fb.last.Path)
}

func TestCreateFolder(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusCreated, ok(testFolder))

	folder, err := fb.context(testToken).CreateFolder(shared.NewFolder{
		Name:     "Reports",
		IsPublic: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", folder.ID)

	assert.Equal(t, http.MethodPost, fb.last.Method)
	assert.Equal(t, "/folders", fb.last.Path)
	assert.Equal(t,
		map[string]any{"name": "Reports", "isPublic": true},
		jsonBody(t, fb.last.Body))
}

func TestCreateFolderValidation(t *testing.T) {
	fb := newFakeBackend(t)

	_, err := fb.context(testToken).CreateFolder(shared.NewFolder{})
	assert.Error(t, err)
	assert.Empty(t, fb.last.Method)
}

func TestUpdateFolder(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusOK, map[string]any{"success": true})

	name := "Archive"
	_, err := fb.context(testToken).UpdateFolder("f1", shared.ModifyFolder{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, fb.last.Method)
	assert.Equal(t, "/folders/f1", fb.last.Path)
	assert.Equal(t, map[string]any{"name": "Archive"}, jsonBody(t, fb.last.Body))
}

func TestDeleteFolder(t *testing.T) {
	fb := newFakeBackend(t)
	fb.respond(http.StatusForbidden, failure(http.StatusForbidden, "Not the folder owner"))

	_, err := fb.context(testToken).DeleteFolder("f1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not the folder owner")
	assert.Equal(t, http.MethodDelete, fb.last.Method)
}
