package domain

import "go.trai.ch/zerr"

var (
	// ErrInventoryFailed is returned when the top-level application inventory cannot be listed.
	ErrInventoryFailed = zerr.New("failed to list deployed applications")

	// ErrTargetFailed is returned when the platform CLI cannot target an org or space.
	ErrTargetFailed = zerr.New("failed to target org or space")

	// ErrListingFailed is returned when a nested org, space or app listing fails.
	ErrListingFailed = zerr.New("failed to list platform resources")

	// ErrProjectSearchFailed is returned when the project search request fails.
	ErrProjectSearchFailed = zerr.New("failed to search projects")

	// ErrProjectLookupFailed is returned when a single project cannot be looked up.
	ErrProjectLookupFailed = zerr.New("failed to look up project")

	// ErrFileListFailed is returned when the dependency files of a project cannot be listed.
	ErrFileListFailed = zerr.New("failed to list dependency files")

	// ErrFileFetchFailed is returned when a single dependency file cannot be fetched.
	ErrFileFetchFailed = zerr.New("failed to fetch dependency file")

	// ErrAPIRequestFailed is returned when a source-control API request cannot be performed.
	ErrAPIRequestFailed = zerr.New("failed to make source-control API request")

	// ErrAPIParseFailed is returned when a source-control API response cannot be decoded.
	ErrAPIParseFailed = zerr.New("failed to parse source-control API response")

	// ErrCloneFailed is returned when a project checkout cannot be cloned or updated.
	ErrCloneFailed = zerr.New("failed to clone or update project checkout")

	// ErrUnusableProjectRef is returned when a project reference has neither id nor path.
	ErrUnusableProjectRef = zerr.New("project reference has no id or path")

	// ErrAppStoreReadFailed is returned when the application record store cannot be read.
	ErrAppStoreReadFailed = zerr.New("failed to read application records")

	// ErrAppStoreUnmarshalFailed is returned when the application record store cannot be decoded.
	ErrAppStoreUnmarshalFailed = zerr.New("failed to unmarshal application records")

	// ErrAppStoreWriteFailed is returned when the application record store cannot be written.
	ErrAppStoreWriteFailed = zerr.New("failed to write application records")

	// ErrDependencyStoreReadFailed is returned when the dependency store cannot be read.
	ErrDependencyStoreReadFailed = zerr.New("failed to read dependency sets")

	// ErrDependencyStoreUnmarshalFailed is returned when the dependency store cannot be decoded.
	ErrDependencyStoreUnmarshalFailed = zerr.New("failed to unmarshal dependency sets")

	// ErrDependencyStoreWriteFailed is returned when the dependency store cannot be written.
	ErrDependencyStoreWriteFailed = zerr.New("failed to write dependency sets")

	// ErrStoreMarshalFailed is returned when a store cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal store")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidStrategy is returned when the resolver strategy is unknown.
	ErrInvalidStrategy = zerr.New("invalid resolver strategy, expected 'search' or 'prompt'")

	// ErrInvalidFetchMode is returned when the fetcher mode is unknown.
	ErrInvalidFetchMode = zerr.New("invalid fetcher mode, expected 'api' or 'clone'")

	// ErrInvalidTimeout is returned when the configured HTTP timeout cannot be parsed.
	ErrInvalidTimeout = zerr.New("invalid gitlab timeout")

	// ErrPromptFailed is returned when the operator prompt cannot be read.
	ErrPromptFailed = zerr.New("failed to read operator input")

	// ErrSyncFailed is returned when a sync run aborts.
	ErrSyncFailed = zerr.New("sync failed")

	// ErrUnknownApplication is returned when a fetch is requested for an app with no record.
	ErrUnknownApplication = zerr.New("application has no project record")
)
