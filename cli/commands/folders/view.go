package folders

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"

	"docvault/cli/commands/upload"
	"docvault/cli/globals"
	"docvault/cli/styles"
	"docvault/cli/utils"
	"docvault/shared"
)

const Usage = `Usage: docvault folders <subcommand> [args]

  list                                   List your folders
  get <id>                               Show a folder's details
  create [name] [--description text] [--public]
                                         Create a folder
  update <id> [--name name] [--description text] [--public|--private]
                                         Update a folder
  delete <id> [--yes]                    Delete a folder`

var valuedFlags = []string{"name", "description"}

func ShowFoldersModel(args []string) {
	positional := utils.Positional(args, valuedFlags...)
	subcommand := "list"
	if len(positional) > 0 {
		subcommand = positional[0]
		positional = positional[1:]
	}

	var arg string
	if len(positional) > 0 {
		arg = positional[0]
	}

	switch subcommand {
	case "list":
		showList()
	case "get":
		showFolder(requireArg(arg, "folder id"))
	case "create":
		showCreate(arg, args)
	case "update":
		showUpdate(requireArg(arg, "folder id"), args)
	case "delete":
		showDelete(requireArg(arg, "folder id"), args)
	default:
		styles.PrintErrStr(fmt.Sprintf("-- Invalid subcommand '%s'", subcommand))
		fmt.Println(Usage)
		os.Exit(1)
	}
}

func showList() {
	var folders []shared.Folder
	var err error
	utils.RunWithSpinner("Loading folders...", func() {
		folders, err = globals.API.ListFolders()
	})
	utils.HandleCLIError("error listing folders", err)

	if len(folders) == 0 {
		fmt.Println("No folders found")
		return
	}

	rows := CreateFolderRows(folders)
	maxNameLen := 15
	maxDescLen := 11
	maxIDLen := 2
	for _, row := range rows {
		maxNameLen = max(len(row[0]), maxNameLen)
		maxDescLen = max(len(row[2]), maxDescLen)
		maxIDLen = max(len(row[4]), maxIDLen)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: maxNameLen},
			{Title: "Visibility", Width: 10},
			{Title: "Description", Width: maxDescLen},
			{Title: "Updated", Width: 16},
			{Title: "ID", Width: maxIDLen},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(styles.TableStyles()),
	)

	fmt.Println(styles.TableStyle.Render(t.View()))
}

func showFolder(id string) {
	var folder shared.Folder
	var docs []shared.Document
	var err error
	utils.RunWithSpinner("Loading folder...", func() {
		folder, err = globals.API.GetFolder(id)
		if err == nil {
			docs, err = globals.API.ListDocuments(id)
		}
	})
	utils.HandleCLIError("error loading folder", err)

	fmt.Print(RenderFolder(folder, docs))
}

func showCreate(name string, args []string) {
	var description string
	utils.StrFlag(&description, "description", "", args)
	isPublic := utils.HasFlag("public", args)

	if len(name) == 0 {
		if !utils.IsInteractive() {
			utils.HandleCLIError("error creating folder", errors.New("missing folder name"))
		}

		err := huh.NewForm(huh.NewGroup(
			huh.NewNote().Title(utils.GenerateTitle("New Folder")),
			huh.NewInput().Title("Name").Value(&name).
				Validate(func(s string) error {
					return shared.NewFolder{Name: s}.Validate()
				}),
			huh.NewInput().Title("Description").Value(&description),
			huh.NewConfirm().Title("Public?").
				Affirmative("Yes").
				Negative("No").
				Value(&isPublic),
		)).WithTheme(styles.Theme).WithShowHelp(true).Run()
		utils.HandleCLIError("", err)
	}

	var folder shared.Folder
	var err error
	utils.RunWithSpinner("Creating folder...", func() {
		folder, err = globals.API.CreateFolder(shared.NewFolder{
			Name:        name,
			Description: description,
			IsPublic:    isPublic,
		})
	})
	utils.HandleCLIError("error creating folder", err)

	styles.PrintSuccessStr(fmt.Sprintf("Created folder '%s' (%s)", folder.Name, folder.ID))
}

func showUpdate(id string, args []string) {
	var name, description *string
	if utils.HasFlag("name", args) {
		var value string
		utils.StrFlag(&value, "name", "", args)
		name = &value
	}

	if utils.HasFlag("description", args) {
		var value string
		utils.StrFlag(&value, "description", "", args)
		description = &value
	}

	isPublic, err := upload.Visibility(utils.HasFlag("public", args), utils.HasFlag("private", args))
	utils.HandleCLIError("error updating folder", err)

	mod, err := Modification(name, description, isPublic)
	utils.HandleCLIError("error updating folder", err)

	utils.RunWithSpinner("Updating folder...", func() {
		err = Update(globals.API, id, mod)
	})
	utils.HandleCLIError("error updating folder", err)

	styles.PrintSuccessStr("Folder updated")
}

func showDelete(id string, args []string) {
	if !utils.HasFlag("yes", args) {
		if !utils.IsInteractive() {
			utils.HandleCLIError("error deleting folder",
				errors.New("refusing to delete without --yes"))
		}

		confirmed := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete folder %s?", id)).
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

	var err error
	utils.RunWithSpinner("Deleting folder...", func() {
		err = Delete(globals.API, id)
	})
	utils.HandleCLIError("error deleting folder", err)

	styles.PrintSuccessStr("Folder deleted")
}

func requireArg(arg, name string) string {
	if len(arg) == 0 {
		styles.PrintErrStr("missing " + name)
		fmt.Println(Usage)
		os.Exit(1)
	}

	return arg
}
