package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"docvault/cli/commands/auth"
	"docvault/cli/commands/auth/login"
	"docvault/cli/commands/auth/logout"
	"docvault/cli/commands/auth/register"
	"docvault/cli/commands/auth/verify"
	"docvault/cli/commands/dashboard"
	"docvault/cli/commands/documents"
	"docvault/cli/commands/folders"
	"docvault/cli/commands/upload"
	"docvault/cli/globals"
	"docvault/cli/router"
	"docvault/cli/styles"
	"docvault/cli/utils"
	"docvault/shared/constants"
)

type Command string

const (
	Landing    Command = Command(router.Landing)
	Register   Command = Command(router.Register)
	Login      Command = Command(router.Login)
	VerifyOTP  Command = Command(router.VerifyOTP)
	Verify     Command = "verify"
	RequestOTP Command = "request-otp"
	Logout     Command = "logout"
	Dashboard  Command = Command(router.Dashboard)
	Documents  Command = Command(router.Documents)
	Upload     Command = Command(router.Upload)
	Folders    Command = Command(router.Folders)
	Help       Command = "help"
	Version    Command = "version"
)

var CommandMap = map[Command][]func(args []string){
	Landing:    {auth.ShowLandingModel},
	Register:   {register.ShowRegisterModel},
	Login:      {login.ShowLoginModel},
	VerifyOTP:  {verify.ShowVerifyModel},
	Verify:     {verify.ShowVerifyModel},
	RequestOTP: {verify.ShowRequestOTPModel},
	Logout:     {logout.ShowLogoutModel},
	Dashboard:  {dashboard.ShowDashboardModel},
	Documents:  {documents.ShowDocumentsModel},
	Upload:     {upload.ShowUploadModel},
	Folders:    {folders.ShowFoldersModel},
}

// routeAliases maps commands that are not routes onto the route whose guard
// applies to them.
var routeAliases = map[Command]router.Name{
	Verify:     router.VerifyOTP,
	RequestOTP: router.VerifyOTP,
	Logout:     router.Landing,
}

// valuedFlags are flags that take a value, across all commands.
var valuedFlags = []string{
	"email", "password", "otp", "folder", "output", "name", "description",
}

var AuthHelp = []string{
	fmt.Sprintf("%s    | Create a new docvault account", Register),
	fmt.Sprintf("%s       | Log into your docvault account", Login),
	fmt.Sprintf("%s  | Enter the code emailed to you after login or register\n"+
		"               - Example: docvault verify-otp --email me@example.com --otp 123456", VerifyOTP),
	fmt.Sprintf("%s | Send a new login code", RequestOTP),
	fmt.Sprintf("%s      | Log out of your docvault account", Logout),
}

var ActionHelp = []string{
	fmt.Sprintf("%s   | Summary of your documents and folders", Dashboard),
	fmt.Sprintf("%s   | List and manage documents\n"+
		"               - Example: docvault documents list --folder <id>\n"+
		"               - Example: docvault documents download <id> --copy", Documents),
	fmt.Sprintf("%s      | Upload a file as a new document\n"+
		"               - Example: docvault upload path/to/file.pdf --private", Upload),
	fmt.Sprintf("%s     | List and manage folders\n"+
		"               - Example: docvault folders create 'Tax returns'", Folders),
}

var HelpMsg = `
Usage: docvault <command> [args]
`

var CommandHelpStr = `
  %s`

func printHelp() {
	helpMsg := HelpMsg + `
Auth Commands:`
	for _, msg := range AuthHelp {
		helpMsg += fmt.Sprintf(CommandHelpStr, msg)
	}

	helpMsg += `

Action Commands:`
	for _, msg := range ActionHelp {
		helpMsg += fmt.Sprintf(CommandHelpStr, msg)
	}

	fmt.Println(helpMsg)
	fmt.Println()
}

// Entrypoint is the main entrypoint to the CLI
func Entrypoint(args []string) {
	hasToken := len(globals.API.Token) > 0

	var command Command
	var commandArgs []string
	if len(args) < 2 {
		command = defaultCommand(hasToken, globals.Config.DefaultView)
	} else {
		command = Command(args[1])
		commandArgs = args[2:]
	}

	switch command {
	case Help, "-h", "--help":
		printHelp()
		return
	case Version, "--version":
		fmt.Println(constants.VERSION)
		return
	}

	if _, ok := CommandMap[command]; !ok {
		styles.PrintErrStr(fmt.Sprintf("-- Invalid command '%s'", command))
		printHelp()
		os.Exit(1)
	}

	target, targetArgs := navigate(command, commandArgs, hasToken)
	globals.Logger.Debug("dispatching", "command", target)

	if utils.IsInteractive() {
		// Can't log to stderr while a form owns the terminal
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			utils.HandleCLIError("error opening debug log", err)
		}

		defer f.Close()
		globals.SetLogOutput(f)
	}

	for _, viewFunction := range CommandMap[target] {
		viewFunction(targetArgs)
	}

	// Continue to the requested command once the login redirect succeeds
	if target == Login && command != Login && len(globals.API.Token) > 0 {
		for _, viewFunction := range CommandMap[command] {
			viewFunction(commandArgs)
		}
	}
}

// defaultCommand picks the command run without arguments. Logged-in users get
// their configured default view, or the dashboard when none is set.
func defaultCommand(hasToken bool, defaultView string) Command {
	if !hasToken {
		return Landing
	} else if len(defaultView) > 0 {
		return Command(defaultView)
	}

	return Dashboard
}

// navigate runs the route guard for command and returns the command that
// should actually run, along with its args.
func navigate(command Command, args []string, hasToken bool) (Command, []string) {
	route, ok := resolveRoute(command, args)
	if !ok {
		return command, args
	}

	decision := router.Guard(route, hasToken)
	if decision.Action == router.Proceed {
		return command, args
	}

	globals.Logger.Debug("redirecting", "from", route.Name, "to", decision.To)
	switch decision.To {
	case router.Login:
		if !utils.IsInteractive() {
			styles.PrintErrStr("You are not logged in. " +
				"Use the 'login' or 'register' commands to continue.")
			os.Exit(1)
		}
		return Login, nil
	case router.Dashboard:
		styles.PrintSuccessStr("You are already logged in")
		return Dashboard, nil
	}

	return Command(decision.To), nil
}

func resolveRoute(command Command, args []string) (*router.Route, bool) {
	routes := router.Default()
	if name, ok := routeAliases[command]; ok {
		return routes.Lookup(name)
	}

	segments := []string{string(command)}
	if positional := utils.Positional(args, valuedFlags...); len(positional) > 0 {
		segments = append(segments, positional[0])
	}

	return routes.Resolve(segments...)
}
