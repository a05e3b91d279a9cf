package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Catalog errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrCatalogNotReady = errors.New("room catalog not loaded")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
