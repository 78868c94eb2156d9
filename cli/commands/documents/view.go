package documents

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/mdp/qrterminal/v3"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"docvault/cli/globals"
	"docvault/cli/styles"
	"docvault/cli/utils"
	"docvault/shared"
)

const Usage = `Usage: docvault documents <subcommand> [args]

  list [--folder id]                     List your documents
  get <id>                               Show a document's details
  download <id> [-o path] [--copy] [--qr] [--open]
                                         Download a document
  delete <id> [--yes]                    Delete a document
  regenerate <id>                        Rebuild a document's PDF
  visibility <id> <public|private>       Change who can see a document
  move <id> <folder id|root>             Move a document into a folder`

// valuedFlags take the following arg as their value.
var valuedFlags = []string{"folder", "output"}

func ShowDocumentsModel(args []string) {
	positional := utils.Positional(args, valuedFlags...)
	subcommand := "list"
	if len(positional) > 0 {
		subcommand = positional[0]
		positional = positional[1:]
	}

	var id string
	if len(positional) > 0 {
		id = positional[0]
	}

	switch subcommand {
	case "list":
		showList(args)
	case "get":
		showDocument(id)
	case "download":
		showDownload(id, args)
	case "delete":
		showDelete(id, args)
	case "regenerate":
		runAction("Regenerating PDF...", "PDF regenerated", func() error {
			return Regenerate(globals.API, id)
		}, id)
	case "visibility":
		showVisibility(id, positional)
	case "move":
		showMove(id, positional)
	default:
		styles.PrintErrStr(fmt.Sprintf("-- Invalid subcommand '%s'", subcommand))
		fmt.Println(Usage)
		os.Exit(1)
	}
}

func showList(args []string) {
	var folderID string
	utils.StrFlag(&folderID, "folder", "", args)

	var docs []shared.Document
	var folderNames map[string]string
	var err error
	utils.RunWithSpinner("Loading documents...", func() {
		docs, folderNames, err = ListDocuments(globals.API, globals.Logger, folderID)
	})
	utils.HandleCLIError("error listing documents", err)

	if len(docs) == 0 {
		fmt.Println("No documents found")
		return
	}

	rows := CreateDocumentRows(docs, folderNames)
	fmt.Println(renderTable(rows))
}

func renderTable(rows []table.Row) string {
	maxTitleLen := 15
	maxFolderLen := 6
	maxIDLen := 2
	for _, row := range rows {
		maxTitleLen = max(len(row[0]), maxTitleLen)
		maxFolderLen = max(len(row[3]), maxFolderLen)
		maxIDLen = max(len(row[6]), maxIDLen)
	}

	columns := []table.Column{
		{Title: "Title", Width: maxTitleLen},
		{Title: "Size", Width: 10},
		{Title: "Visibility", Width: 10},
		{Title: "Folder", Width: maxFolderLen},
		{Title: "Downloads", Width: 9},
		{Title: "Updated", Width: 16},
		{Title: "ID", Width: maxIDLen},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles.TableStyles()),
	)

	return styles.TableStyle.Render(t.View())
}

func showDocument(id string) {
	requireID(id)

	var doc shared.Document
	var err error
	utils.RunWithSpinner("Loading document...", func() {
		doc, err = globals.API.GetDocument(id)
	})
	utils.HandleCLIError("error loading document", err)

	fmt.Print(RenderDocument(doc))
}

func showDownload(id string, args []string) {
	requireID(id)

	var out string
	utils.StrFlag(&out, "output", "", args)

	var path, link string
	var n int64
	var err error
	utils.RunWithSpinner("Downloading...", func() {
		path, n, link, err = Download(globals.API, afero.NewOsFs(), id, out)
	})
	utils.HandleCLIError("error downloading document", err)

	styles.PrintSuccessStr(fmt.Sprintf("Downloaded %s (%s)", path, utils.ReadableFileSize(n)))

	if utils.HasFlag("copy", args) {
		if err := clipboard.WriteAll(link); err != nil {
			styles.PrintErrStr(fmt.Sprintf("Unable to copy link: %v", err))
		} else {
			fmt.Println("Link copied to clipboard")
		}
	}

	if utils.HasFlag("qr", args) {
		qrterminal.GenerateHalfBlock(link, qrterminal.L, os.Stdout)
	}

	if utils.HasFlag("open", args) {
		if err := browser.OpenURL(link); err != nil {
			styles.PrintErrStr(fmt.Sprintf("Unable to open link: %v", err))
		}
	}
}

func showDelete(id string, args []string) {
	requireID(id)

	if !utils.HasFlag("yes", args) {
		if !utils.IsInteractive() {
			utils.HandleCLIError("error deleting document",
				errors.New("refusing to delete without --yes"))
		}

		confirmed := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete document %s?", id)).
				Description("This cannot be undone").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		)).WithTheme(styles.DestructiveTheme()).Run()
		utils.HandleCLIError("", err)

		if !confirmed {
			return
		}
	}

	runAction("Deleting document...", "Document deleted", func() error {
		return Delete(globals.API, id)
	}, id)
}

func showVisibility(id string, positional []string) {
	requireID(id)
	if len(positional) < 2 {
		utils.HandleCLIError("error changing visibility",
			errors.New("missing visibility (public or private)"))
	}

	isPrivate, err := ParseVisibility(positional[1])
	utils.HandleCLIError("error changing visibility", err)

	runAction("Updating visibility...", "Visibility updated", func() error {
		return SetVisibility(globals.API, id, isPrivate)
	}, id)
}

func showMove(id string, positional []string) {
	requireID(id)
	if len(positional) < 2 {
		utils.HandleCLIError("error moving document",
			fmt.Errorf("missing target folder (a folder id or '%s')", rootFolder))
	}

	folderID := ParseFolderTarget(positional[1])
	runAction("Moving document...", "Document moved", func() error {
		return Move(globals.API, id, folderID)
	}, id)
}

func runAction(title, success string, action func() error, id string) {
	requireID(id)

	var err error
	utils.RunWithSpinner(title, func() {
		err = action()
	})
	utils.HandleCLIError("error updating document", err)

	styles.PrintSuccessStr(success)
}

func requireID(id string) {
	if len(id) == 0 {
		styles.PrintErrStr(errMissingID.Error())
		fmt.Println(Usage)
		os.Exit(1)
	}
}
