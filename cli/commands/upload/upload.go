package upload

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"docvault/cli/api"
	"docvault/shared"
)

var errBothVisibilities = errors.New("only one of --public or --private can be set")

// Visibility returns nil when neither flag is set, leaving the choice to the
// server.
func Visibility(public, private bool) (*bool, error) {
	if public && private {
		return nil, errBothVisibilities
	} else if public {
		isPublic := true
		return &isPublic, nil
	} else if private {
		isPublic := false
		return &isPublic, nil
	}

	return nil, nil
}

// UploadFile streams the file at path to the server as a new document.
func UploadFile(
	ctx *api.Context,
	fs afero.Fs,
	path string,
	folderID string,
	isPublic *bool,
) (shared.Document, error) {
	stat, err := fs.Stat(path)
	if err != nil {
		return shared.Document{}, err
	} else if stat.IsDir() {
		return shared.Document{}, fmt.Errorf("%s is a directory", path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return shared.Document{}, err
	}

	defer f.Close()

	return ctx.UploadDocument(filepath.Base(path), f, folderID, isPublic)
}
