package documents

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"docvault/cli/api"
	"docvault/cli/styles"
	"docvault/cli/utils"
	"docvault/shared"
)

const (
	visibilityPublic  = "public"
	visibilityPrivate = "private"
	rootFolder        = "root"
)

var errMissingID = errors.New("missing document id")

// CreateDocumentRows builds table rows for docs. folderNames maps folder IDs
// to display names; unknown IDs are shown as-is.
func CreateDocumentRows(docs []shared.Document, folderNames map[string]string) []table.Row {
	var rows []table.Row
	for _, doc := range docs {
		folder := "-"
		if doc.FolderID != nil {
			folder = *doc.FolderID
			if name, ok := folderNames[folder]; ok {
				folder = name
			}
		}

		visibility := visibilityPublic
		if doc.IsPrivate {
			visibility = visibilityPrivate
		}

		rows = append(rows, table.Row{
			doc.Title,
			utils.ReadableFileSize(doc.FileSizeBytes),
			visibility,
			folder,
			fmt.Sprintf("%d", doc.DownloadCount),
			doc.UpdatedAt.Format("2006-01-02 15:04"),
			doc.ID,
		})
	}

	return rows
}

// ListDocuments returns the documents in folderID (all when empty) along with
// folder display names. Folder names are optional: if they cannot be loaded,
// rows show raw folder IDs.
func ListDocuments(
	ctx *api.Context,
	logger hclog.Logger,
	folderID string,
) ([]shared.Document, map[string]string, error) {
	docs, err := ctx.ListDocuments(folderID)
	if err != nil {
		return nil, nil, err
	}

	folders, err := ctx.ListFolders()
	if err != nil {
		logger.Warn("unable to load folder names", "error", err)
		return docs, map[string]string{}, nil
	}

	return docs, FolderNames(folders), nil
}

func FolderNames(folders []shared.Folder) map[string]string {
	names := make(map[string]string, len(folders))
	for _, folder := range folders {
		names[folder.ID] = folder.Name
	}

	return names
}

// RenderDocument formats a document's details for the terminal.
func RenderDocument(doc shared.Document) string {
	var b strings.Builder
	b.WriteString(styles.BoldStyle.Render(doc.Title) + "\n")
	b.WriteString(styles.Field("ID", styles.IDStyle.Render(doc.ID)))
	b.WriteString(styles.Field("Author", doc.Author))
	b.WriteString(styles.Field("Size", utils.ReadableFileSize(doc.FileSizeBytes)))
	if doc.IsPrivate {
		b.WriteString(styles.Field("Visibility", styles.PrivateStyle.Render(visibilityPrivate)))
	} else {
		b.WriteString(styles.Field("Visibility", styles.PublicStyle.Render(visibilityPublic)))
	}
	if doc.FolderID != nil {
		b.WriteString(styles.Field("Folder", styles.DirStyle.Render(*doc.FolderID)))
	}
	if doc.Tags != nil && len(*doc.Tags) > 0 {
		b.WriteString(styles.Field("Tags", *doc.Tags))
	}
	b.WriteString(styles.Field("Downloads", fmt.Sprintf("%d", doc.DownloadCount)))
	b.WriteString(styles.Field("Created", doc.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString(styles.Field("Updated", doc.UpdatedAt.Format("2006-01-02 15:04")))

	return b.String()
}

// FileName returns the local file name used when downloading doc.
func FileName(doc shared.Document) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(doc.Title))

	if len(name) == 0 {
		name = doc.ID
	}

	if filepath.Ext(name) == "" {
		name += ".pdf"
	}

	return name
}

// ParseVisibility maps "public" or "private" to the isPrivate flag.
func ParseVisibility(value string) (bool, error) {
	switch strings.ToLower(value) {
	case visibilityPrivate:
		return true, nil
	case visibilityPublic:
		return false, nil
	}

	return false, fmt.Errorf("visibility must be '%s' or '%s'",
		visibilityPublic, visibilityPrivate)
}

// ParseFolderTarget returns nil for the root folder, which moves a document
// out of any folder.
func ParseFolderTarget(value string) *string {
	if len(value) == 0 || value == rootFolder {
		return nil
	}

	return &value
}

// Download fetches the document's download link and writes the file to out.
// If out is empty or an existing directory, the file is named after the
// document title. It returns the written path, the byte count and the link.
func Download(
	ctx *api.Context,
	fs afero.Fs,
	id string,
	out string,
) (string, int64, string, error) {
	if len(id) == 0 {
		return "", 0, "", errMissingID
	}

	link, err := ctx.DownloadDocument(id)
	if err != nil {
		return "", 0, "", err
	}

	if len(out) == 0 || isDir(fs, out) {
		doc, err := ctx.GetDocument(id)
		if err != nil {
			return "", 0, link.URL, err
		}
		out = filepath.Join(out, FileName(doc))
	}

	f, err := fs.Create(out)
	if err != nil {
		return "", 0, link.URL, err
	}

	n, err := ctx.FetchFile(link.URL, f)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		_ = fs.Remove(out)
		return "", 0, link.URL, err
	}

	return out, n, link.URL, nil
}

func isDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}

func Delete(ctx *api.Context, id string) error {
	envelope, err := ctx.DeleteDocument(id)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}

func Regenerate(ctx *api.Context, id string) error {
	envelope, err := ctx.RegeneratePDF(id)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}

func SetVisibility(ctx *api.Context, id string, isPrivate bool) error {
	envelope, err := ctx.ChangeVisibility(id, isPrivate)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}

// Move puts the document in folderID, or at the root when folderID is nil.
func Move(ctx *api.Context, id string, folderID *string) error {
	envelope, err := ctx.MoveDocument(id, folderID)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}
