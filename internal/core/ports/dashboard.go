package ports

import "context"

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// Dashboard shows the stages of a running build interactively.
type Dashboard interface {
	// Open starts the view. The returned context is canceled when the user
	// quits the view. Closing the returned Telemetry stops the view and waits
	// for it to exit.
	Open(ctx context.Context) (context.Context, Telemetry, error)
}
