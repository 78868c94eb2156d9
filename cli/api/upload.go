package api

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"docvault/shared"
	"docvault/shared/constants"
	"docvault/shared/endpoints"
)

// UploadDocument uploads the contents of file as a new document named name.
// folderID is only sent when non-empty, and isPublic only when non-nil.
func (ctx *Context) UploadDocument(
	name string,
	file io.Reader,
	folderID string,
	isPublic *bool,
) (shared.Document, error) {
	if len(name) == 0 {
		return shared.Document{}, errors.New("missing file name")
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeUploadForm(form, name, file, folderID, isPublic))
	}()

	url := endpoints.Upload.Format(ctx.Server)
	resp, err := ctx.Client.PostMultipart(ctx.Token, url, form.FormDataContentType(), pr)

	// Unblocks the writer if the request ended before reading the whole body
	_ = pr.Close()

	if err != nil {
		return shared.Document{}, err
	}

	return unwrap[shared.Document](resp)
}

func writeUploadForm(
	form *multipart.Writer,
	name string,
	file io.Reader,
	folderID string,
	isPublic *bool,
) error {
	part, err := form.CreateFormFile(constants.UploadFileField, name)
	if err != nil {
		return err
	}

	if _, err = io.Copy(part, file); err != nil {
		return err
	}

	if len(folderID) > 0 {
		err = form.WriteField(constants.UploadFolderField, folderID)
		if err != nil {
			return err
		}
	}

	if isPublic != nil {
		err = form.WriteField(constants.UploadPublicField, strconv.FormatBool(*isPublic))
		if err != nil {
			return err
		}
	}

	return form.Close()
}
