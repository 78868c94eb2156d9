package dashboard

import (
	"sort"

	"docvault/cli/api"
	"docvault/shared"
)

const recentLimit = 5

type Summary struct {
	User           *shared.User
	DocumentCount  int
	PrivateCount   int
	FolderCount    int
	TotalSizeBytes int64
	TotalDownloads int
	Recent         []shared.Document
}

// Summarize totals the user's documents and folders. Recent holds the most
// recently updated documents, newest first.
func Summarize(user *shared.User, docs []shared.Document, folders []shared.Folder) Summary {
	summary := Summary{
		User:          user,
		DocumentCount: len(docs),
		FolderCount:   len(folders),
	}

	for _, doc := range docs {
		summary.TotalSizeBytes += doc.FileSizeBytes
		summary.TotalDownloads += doc.DownloadCount
		if doc.IsPrivate {
			summary.PrivateCount++
		}
	}

	recent := make([]shared.Document, len(docs))
	copy(recent, docs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt.After(recent[j].UpdatedAt)
	})

	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	summary.Recent = recent
	return summary
}

// FetchSummary loads everything the dashboard shows.
func FetchSummary(ctx *api.Context, user *shared.User) (Summary, error) {
	docs, err := ctx.ListDocuments("")
	if err != nil {
		return Summary{}, err
	}

	folders, err := ctx.ListFolders()
	if err != nil {
		return Summary{}, err
	}

	return Summarize(user, docs, folders), nil
}
