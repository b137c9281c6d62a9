// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a declined confirmation.
	Success = 0

	// UserError indicates a user error (bad args, unknown task number, blank title).
	UserError = 1

	// ConfigError indicates an unreadable config file or an unusable backend selection.
	ConfigError = 2

	// StorageError indicates the storage backend failed to open, read or write.
	StorageError = 3
)
