package upload

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"

	"docvault/cli/globals"
	"docvault/cli/styles"
	"docvault/cli/utils"
	"docvault/shared"
)

const Usage = "Usage: docvault upload <path> [--folder id] [--public|--private]"

func ShowUploadModel(args []string) {
	var folderID string
	var public, private bool
	utils.StrFlag(&folderID, "folder", "", args)
	public = utils.HasFlag("public", args)
	private = utils.HasFlag("private", args)

	isPublic, err := Visibility(public, private)
	utils.HandleCLIError("error uploading file", err)

	var path string
	if positional := utils.Positional(args, "folder"); len(positional) > 0 {
		path = positional[0]
	} else if utils.IsInteractive() {
		path, err = pickFile()
		utils.HandleCLIError("error selecting file", err)
	} else {
		styles.PrintErrStr("-- Missing file path")
		fmt.Println(Usage)
		return
	}

	var doc shared.Document
	utils.RunWithSpinner(fmt.Sprintf("Uploading %s...", path), func() {
		doc, err = UploadFile(globals.API, afero.NewOsFs(), path, folderID, isPublic)
	})
	utils.HandleCLIError("error uploading file", err)

	styles.PrintSuccessStr(fmt.Sprintf("Uploaded '%s' (%s)",
		doc.Title, utils.ReadableFileSize(doc.FileSizeBytes)))
	fmt.Printf("Document ID: %s\n", doc.ID)
}

func pickFile() (string, error) {
	var path string
	err := huh.NewForm(huh.NewGroup(
		huh.NewNote().Title(utils.GenerateTitle("Upload")),
		huh.NewFilePicker().
			Title("Select a file to upload").
			CurrentDirectory(".").
			Value(&path),
	)).WithTheme(styles.Theme).WithShowHelp(true).Run()
	if err != nil {
		return "", err
	} else if len(path) == 0 {
		return "", errors.New("no file selected")
	}

	return path, nil
}
