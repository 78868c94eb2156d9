package folders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"docvault/cli/api"
	"docvault/cli/styles"
	"docvault/shared"
)

var errNoChanges = errors.New("nothing to update (use --name, --description, --public or --private)")

func CreateFolderRows(folders []shared.Folder) []table.Row {
	var rows []table.Row
	for _, folder := range folders {
		visibility := "private"
		if folder.IsPublic {
			visibility = "public"
		}

		description := ""
		if folder.Description != nil {
			description = *folder.Description
		}

		rows = append(rows, table.Row{
			folder.Name,
			visibility,
			description,
			folder.UpdatedAt.Format("2006-01-02 15:04"),
			folder.ID,
		})
	}

	return rows
}

// RenderFolder formats a folder and the documents inside it.
func RenderFolder(folder shared.Folder, docs []shared.Document) string {
	var b strings.Builder
	b.WriteString(styles.DirStyle.Render(folder.Name+"/") + "\n")
	b.WriteString(styles.Field("ID", styles.IDStyle.Render(folder.ID)))
	if folder.Description != nil && len(*folder.Description) > 0 {
		b.WriteString(styles.Field("About", *folder.Description))
	}
	if folder.IsPublic {
		b.WriteString(styles.Field("Visibility", styles.PublicStyle.Render("public")))
	} else {
		b.WriteString(styles.Field("Visibility", styles.PrivateStyle.Render("private")))
	}
	b.WriteString(styles.Field("Documents", fmt.Sprintf("%d", len(docs))))
	for _, doc := range docs {
		b.WriteString(fmt.Sprintf("  %s  %s\n", doc.Title, styles.IDStyle.Render(doc.ID)))
	}

	return b.String()
}

// Modification builds an update from command flags. Only flags that were
// given are included, so omitted fields stay unchanged on the server.
func Modification(
	name, description *string,
	isPublic *bool,
) (shared.ModifyFolder, error) {
	if name == nil && description == nil && isPublic == nil {
		return shared.ModifyFolder{}, errNoChanges
	}

	mod := shared.ModifyFolder{
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
	}

	return mod, mod.Validate()
}

func Update(ctx *api.Context, id string, mod shared.ModifyFolder) error {
	envelope, err := ctx.UpdateFolder(id, mod)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}

func Delete(ctx *api.Context, id string) error {
	envelope, err := ctx.DeleteFolder(id)
	if err != nil {
		return err
	}

	return api.EnvelopeError(envelope)
}
