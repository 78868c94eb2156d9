package auth

import (
	"github.com/charmbracelet/huh"

	"docvault/cli/commands/auth/login"
	"docvault/cli/commands/auth/register"
	"docvault/cli/commands/auth/verify"
	"docvault/cli/styles"
	"docvault/cli/utils"
)

const (
	LoginAction    = "Log In"
	RegisterAction = "Register"
	VerifyAction   = "Verify Code"
	CancelAction   = "Cancel"
)

// ShowLandingModel is shown when docvault runs without a command and the
// user is not logged in.
func ShowLandingModel(args []string) {
	if !utils.IsInteractive() {
		styles.PrintErrStr("You are not logged in. " +
			"Use the 'login' or 'register' commands to continue.")
		return
	}

	var action string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(utils.GenerateTitle("Welcome")).
				Description("Store, organize and share your documents"),
			huh.NewSelect[string]().
				Options(huh.NewOptions(
					LoginAction,
					RegisterAction,
					VerifyAction,
					CancelAction)...,
				).Value(&action),
		),
	).WithTheme(styles.Theme).WithShowHelp(true).Run()
	utils.HandleCLIError("", err)

	switch action {
	case LoginAction:
		login.ShowLoginModel(args)
	case RegisterAction:
		register.ShowRegisterModel(args)
	case VerifyAction:
		verify.ShowVerifyModel(args)
	}
}
