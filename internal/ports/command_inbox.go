package ports

import "context"

// CommandInbox is the command file external tools write into.
type CommandInbox interface {
	Exists(ctx context.Context) (bool, error)
	// Create makes an empty command file, creating parent directories as needed.
	Create(ctx context.Context) error
	Read(ctx context.Context) (string, error)
	// Claim takes ownership of content observed by Read and returns the text to
	// dispatch. Implementations may move the file aside to narrow the window in
	// which concurrent writers are lost.
	Claim(ctx context.Context, observed string) (string, error)
	// Clear releases the claimed command, leaving an empty command file behind.
	Clear(ctx context.Context) error
}

type CommandDispatcher interface {
	ProcessCommand(ctx context.Context, raw string) error
}
