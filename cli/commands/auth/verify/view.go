package verify

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"docvault/cli/globals"
	"docvault/cli/styles"
	"docvault/cli/utils"
)

var errMissingFlags = errors.New("missing --email or --otp (run in a terminal to be prompted)")

const resendOption = "Send a new code"
const enterOption = "Enter code"

// ShowVerifyModel prompts for the one-time code sent to email and logs the
// user in. Values passed as flags skip the matching prompts.
func ShowVerifyModel(args []string) {
	var email, otp string
	utils.StrFlag(&email, "email", "", args)
	utils.StrFlag(&otp, "otp", "", args)

	err := PromptAndVerify(email, otp)
	utils.HandleCLIError("error verifying code", err)
}

// ShowRequestOTPModel sends a new one-time code to the given email.
func ShowRequestOTPModel(args []string) {
	var email string
	utils.StrFlag(&email, "email", "", args)

	if len(email) == 0 {
		if !utils.IsInteractive() {
			utils.HandleCLIError("error requesting code", errors.New("missing --email"))
		}

		err := huh.NewForm(huh.NewGroup(
			huh.NewNote().Title(utils.GenerateTitle("Request Code")),
			huh.NewInput().Title("Email").Value(&email),
		)).WithTheme(styles.Theme).Run()
		utils.HandleCLIError("", err)
	}

	err := Resend(globals.API, email)
	utils.HandleCLIError("error requesting code", err)
	styles.PrintSuccessStr(fmt.Sprintf("A new code was sent to %s", email))
}

// PromptAndVerify collects any missing values, then verifies the code. Bad
// codes re-prompt with the server's error when running interactively.
func PromptAndVerify(email, otp string) error {
	if len(email) > 0 && len(otp) > 0 {
		return runVerify(email, otp)
	} else if !utils.IsInteractive() {
		return errMissingFlags
	}

	var runFunc func(errMsgs ...string) error
	runFunc = func(errMsgs ...string) error {
		action := enterOption
		title := huh.NewNote().Title(utils.GenerateTitle("Verify")).
			Description("Enter the code sent to your email")
		if len(errMsgs) > 0 {
			title.Description(styles.ErrStyle.Render(errMsgs[0]))
		}

		err := huh.NewForm(
			huh.NewGroup(
				title,
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Code").Value(&otp),
				huh.NewSelect[string]().Options(
					huh.NewOptions(enterOption, resendOption)...).
					Value(&action),
			),
		).WithTheme(styles.Theme).WithShowHelp(true).Run()
		if err != nil {
			return err
		}

		if action == resendOption {
			err = Resend(globals.API, email)
			if err != nil {
				return runFunc(err.Error())
			}

			otp = ""
			return runFunc(fmt.Sprintf("A new code was sent to %s", email))
		}

		err = runVerify(email, otp)
		if err != nil {
			return runFunc(err.Error())
		}

		return nil
	}

	return runFunc()
}

func runVerify(email, otp string) error {
	var verifyErr error
	var userEmail string
	utils.RunWithSpinner("Verifying...", func() {
		resp, err := Verify(globals.API, globals.Config, email, otp)
		verifyErr = err
		userEmail = resp.User.Email
	})

	if verifyErr != nil {
		return verifyErr
	}

	styles.PrintSuccessStr(fmt.Sprintf("Logged in as %s", userEmail))
	return nil
}
