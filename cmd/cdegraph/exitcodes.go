package main

// Exit codes shared by all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (malformed config file)
	ExitDataError   = 3 // Data error (missing file, malformed table, empty dataset)
)
