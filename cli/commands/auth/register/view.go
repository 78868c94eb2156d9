package register

import (
	"errors"

	"github.com/charmbracelet/huh"

	"docvault/cli/commands/auth/verify"
	"docvault/cli/globals"
	"docvault/cli/styles"
	"docvault/cli/utils"
)

func ShowRegisterModel(args []string) {
	var email, password, otp string
	utils.StrFlag(&email, "email", "", args)
	utils.StrFlag(&password, "password", "", args)
	utils.StrFlag(&otp, "otp", "", args)

	if len(email) > 0 && len(password) > 0 {
		err := submit(email, password)
		utils.HandleCLIError("error creating account", err)
	} else if !utils.IsInteractive() {
		utils.HandleCLIError("error creating account",
			errors.New("missing --email or --password (run in a terminal to be prompted)"))
	} else {
		err := showForm(&email, &password)
		utils.HandleCLIError("error creating account", err)
	}

	styles.PrintSuccessStr("Account created, check your email for a verification code")
	err := verify.PromptAndVerify(email, otp)
	utils.HandleCLIError("error verifying code", err)
}

func showForm(email, password *string) error {
	var runFunc func(errMsgs ...string) error
	runFunc = func(errMsgs ...string) error {
		title := huh.NewNote().Title(utils.GenerateTitle("Register"))
		if len(errMsgs) > 0 {
			title.Description(styles.ErrStyle.Render(errMsgs[0]))
		}

		err := huh.NewForm(
			huh.NewGroup(
				title,
				huh.NewInput().Title("Email").Value(email),
				huh.NewInput().Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(password),
				huh.NewInput().Title("Confirm Password").
					EchoMode(huh.EchoModePassword).
					Validate(func(s string) error {
						if s != *password {
							return errors.New("passwords do not match")
						}

						return nil
					}),
				huh.NewConfirm().Affirmative("Create Account").Negative(""),
			),
		).WithTheme(styles.Theme).WithShowHelp(true).Run()
		if err != nil {
			return err
		}

		err = submit(*email, *password)
		if err != nil {
			return runFunc(err.Error())
		}

		return nil
	}

	return runFunc()
}

func submit(email, password string) error {
	var registerErr error
	utils.RunWithSpinner("Creating account...", func() {
		registerErr = Register(globals.API, email, password)
	})

	return registerErr
}
