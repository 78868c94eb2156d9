package logout

import (
	"fmt"

	"docvault/cli/api"
	"docvault/cli/config"
	"docvault/cli/globals"
	"docvault/cli/utils"
)

// LogOut forgets the stored token and user. The API has no server-side
// session to invalidate.
func LogOut(ctx *api.Context, cfg *config.Config) error {
	ctx.Token = ""
	return cfg.Reset()
}

func ShowLogoutModel(_ []string) {
	err := LogOut(globals.API, globals.Config)
	utils.HandleCLIError("error logging out", err)

	fmt.Println("You are logged out")
}
