package router

// Default returns the route table for the docvault CLI.
func Default() *Router {
	return New(
		&Route{Name: Landing, Path: "/"},
		&Route{Name: Login, Path: "/login"},
		&Route{Name: Register, Path: "/register"},
		&Route{Name: VerifyOTP, Path: "/verify-otp"},
		&Route{
			Name: Dashboard,
			Path: "/dashboard",
			Meta: Meta{RequiresAuth: true},
		},
		&Route{
			Name: Documents,
			Path: "/documents",
			Meta: Meta{RequiresAuth: true},
			Children: []*Route{
				{Name: "documents-list", Path: "list"},
				{Name: "documents-get", Path: "get"},
				{Name: "documents-download", Path: "download"},
				{Name: "documents-delete", Path: "delete"},
				{Name: "documents-regenerate", Path: "regenerate"},
				{Name: "documents-visibility", Path: "visibility"},
				{Name: "documents-move", Path: "move"},
			},
		},
		&Route{
			Name: Upload,
			Path: "/upload",
			Meta: Meta{RequiresAuth: true},
		},
		&Route{
			Name: Folders,
			Path: "/folders",
			Meta: Meta{RequiresAuth: true},
			Children: []*Route{
				{Name: "folders-list", Path: "list"},
				{Name: "folders-get", Path: "get"},
				{Name: "folders-create", Path: "create"},
				{Name: "folders-update", Path: "update"},
				{Name: "folders-delete", Path: "delete"},
			},
		},
	)
}
