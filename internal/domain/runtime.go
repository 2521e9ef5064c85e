package domain

// RuntimeConfig is the deployment configuration exposed to clients
type RuntimeConfig struct {
	FolderDeleteMode FolderDeleteMode `json:"FOLDER_DELETE_MODE"`
}

// DefaultRuntimeConfig returns the configuration used when none is available
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{FolderDeleteMode: DefaultFolderDeleteMode}
}
