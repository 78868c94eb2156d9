package api

import (
	"errors"
	"io"
	"net/http"

	"docvault/cli/utils"
	"docvault/shared"
	"docvault/shared/endpoints"
)

// ListDocuments returns the documents visible to the user. If folderID is
// non-empty, only documents in that folder are returned.
func (ctx *Context) ListDocuments(folderID string) ([]shared.Document, error) {
	url := endpoints.WithQuery(
		endpoints.Documents.Format(ctx.Server),
		map[string]string{"folderId": folderID})

	resp, err := ctx.get(url)
	if err != nil {
		return nil, err
	}

	return unwrap[[]shared.Document](resp)
}

func (ctx *Context) GetDocument(id string) (shared.Document, error) {
	url := endpoints.Document.Format(ctx.Server, id)
	resp, err := ctx.get(url)
	if err != nil {
		return shared.Document{}, err
	}

	return unwrap[shared.Document](resp)
}

// DownloadDocument requests a download link for a document. The server counts
// this as a download.
func (ctx *Context) DownloadDocument(id string) (shared.DownloadResponse, error) {
	url := endpoints.DocumentDownload.Format(ctx.Server, id)
	resp, err := ctx.get(url)
	if err != nil {
		return shared.DownloadResponse{}, err
	}

	return unwrap[shared.DownloadResponse](resp)
}

func (ctx *Context) DeleteDocument(id string) (shared.Envelope, error) {
	url := endpoints.Document.Format(ctx.Server, id)
	resp, err := ctx.delete(url)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

// RegeneratePDF asks the server to rebuild the stored PDF for a document.
func (ctx *Context) RegeneratePDF(id string) (shared.Envelope, error) {
	url := endpoints.DocumentRegenerate.Format(ctx.Server, id)
	resp, err := ctx.postJSON(url, nil)
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

func (ctx *Context) ChangeVisibility(id string, isPrivate bool) (shared.Envelope, error) {
	url := endpoints.DocumentVisibility.Format(ctx.Server, id)
	resp, err := ctx.postJSON(url, shared.ChangeVisibility{IsPrivate: isPrivate})
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

// MoveDocument moves a document into folderID, or out of its folder when
// folderID is nil.
func (ctx *Context) MoveDocument(id string, folderID *string) (shared.Envelope, error) {
	url := endpoints.DocumentMove.Format(ctx.Server, id)
	resp, err := ctx.postJSON(url, shared.MoveDocument{FolderID: folderID})
	if err != nil {
		return shared.Envelope{}, err
	}

	return decodeRaw(resp)
}

// FetchFile copies the content behind a download link into w, returning the
// number of bytes written. The auth token is only sent when the link points
// at the API server.
func (ctx *Context) FetchFile(link string, w io.Writer) (int64, error) {
	if len(link) == 0 {
		return 0, errors.New("empty download link")
	}

	link = resolveLink(ctx.Server, link)
	token := ""
	if isSameHost(ctx.Server, link) {
		token = ctx.Token
	}

	resp, err := ctx.Client.FetchRequest(token, link)
	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, utils.ParseHTTPError(resp)
	}

	return io.Copy(w, resp.Body)
}
