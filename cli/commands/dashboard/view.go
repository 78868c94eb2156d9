package dashboard

import (
	"fmt"
	"strings"

	"docvault/cli/globals"
	"docvault/cli/styles"
	"docvault/cli/utils"
)

func ShowDashboardModel(_ []string) {
	user, err := globals.Config.ReadUser()
	if err != nil {
		globals.Logger.Warn("unable to read cached user", "error", err)
	}

	var summary Summary
	utils.RunWithSpinner("Loading dashboard...", func() {
		summary, err = FetchSummary(globals.API, user)
	})
	utils.HandleCLIError("error loading dashboard", err)

	fmt.Println(Render(summary))
}

// Render formats a summary for the terminal.
func Render(summary Summary) string {
	var b strings.Builder

	b.WriteString(utils.GenerateTitle("Dashboard") + "\n\n")
	if summary.User != nil {
		b.WriteString(fmt.Sprintf("Signed in as %s (%s)\n\n",
			styles.BoldStyle.Render(summary.User.Email), summary.User.Role))
	}

	b.WriteString(fmt.Sprintf("Documents: %d (%d private)\n",
		summary.DocumentCount, summary.PrivateCount))
	b.WriteString(fmt.Sprintf("Folders:   %d\n", summary.FolderCount))
	b.WriteString(fmt.Sprintf("Storage:   %s\n", utils.ReadableFileSize(summary.TotalSizeBytes)))
	b.WriteString(fmt.Sprintf("Downloads: %d\n", summary.TotalDownloads))

	if len(summary.Recent) > 0 {
		b.WriteString("\n" + styles.BoldStyle.Render("Recently updated") + "\n")
		for _, doc := range summary.Recent {
			b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
				doc.UpdatedAt.Format("2006-01-02 15:04"),
				doc.Title,
				styles.HelpStyle.Render(doc.ID)))
		}
	}

	return b.String()
}
