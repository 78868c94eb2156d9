package api

import (
	"docvault/shared"
	"docvault/shared/endpoints"
)

func (ctx *Context) ListFolders() ([]shared.Folder, error) {
	url := endpoints.Folders.Format(ctx.Server)
	resp, err := ctx.get(url)
	if err != nil {
		return nil, err
	}

	return unwrap[[]shared.Folder](resp)
}

func (ctx *Context) GetFolder(id string) (shared.Folder, error) {
	url := endpoints.Folder.Format(ctx.Server, id)
	resp, err := ctx.get(url)
	if err != nil {
		return shared.Folder{}, err
	}

	return unwrap[shared.Folder](resp)
}

// CreateFolder creates a new folder and returns it as stored by the server.
func (ctx *Context) CreateFolder(newFolder shared.NewFolder) (shared.Folder, error) {
	if err := newFolder.Validate(); err != nil {
		return shared.Folder{}, err
	}

	url := endpoints.Folders.Format(ctx.Server)
	resp, err := ctx.postJSON(url, newFolder)
	if err != nil {
		return shared.Folder{}, err
	}

	return unwrap[shared.Folder](resp)
}

// UpdateFolder changes the fields set in mod, leaving nil fields untouched.
func (ctx *Context) UpdateFolder(id string, mod shared.ModifyFolder) (shared.Envelope, error) {
	if err := mod.Validate(); err != nil {
		return shared.Envelope{}, err
	}

	url := endpoints.Folder.Format(ctx.Server, id)
	resp, err := ctx.putJSON(url, mod)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

func (ctx *Context) DeleteFolder(id string) (shared.Envelope, error) {
	url := endpoints.Folder.Format(ctx.Server, id)
	resp, err := ctx.delete(url)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}
