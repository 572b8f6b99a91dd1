package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// IDPath is the path of a single resource in a route group.
	IDPath = "/:id"

	// APIPrefix is the mount point of every JSON route.
	APIPrefix = "/api"

	// ErrNilDepsFatalLogMsg is used if the router or one of the dependencies is nil.
	ErrNilDepsFatalLogMsg = "router or handler dependencies are nil"
)
