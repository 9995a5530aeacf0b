// Package fallback holds the remote-vs-demo branch used by every service.
// Reads degrade to the static dataset, writes refuse outright, and neither
// decision is repeated per method anywhere else in the codebase.
package fallback

import (
	"context"

	"github.com/rs/zerolog/log"

	"dost/shared/failure"
)

// Read resolves a remote read when the backend is configured, degrading to
// the static demo set when it is not, or when the remote call fails. The
// returned bool reports whether the fallback set was served. Read never
// returns an error: a broken backend looks like demo mode, not an outage.
func Read[T any](ctx context.Context, configured bool, remote func(context.Context) (T, error), static func() T) (T, bool) {
	if !configured {
		return static(), true
	}

	result, err := remote(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("remote read failed, serving fallback data")

		return static(), true
	}

	return result, false
}

// Write runs a remote mutation. Without a configured backend every mutation
// is rejected with the demo-mode failure; a failing remote call is wrapped so
// the transport layer can map it to a status code.
func Write(ctx context.Context, configured bool, remote func(context.Context) error) error {
	if !configured {
		return failure.DemoModeError
	}

	if err := remote(ctx); err != nil {
		return failure.WriteFailed(err) //nolint:wrapcheck
	}

	return nil
}

// WriteResult is Write for mutations that return the created or updated
// entity.
func WriteResult[T any](ctx context.Context, configured bool, remote func(context.Context) (T, error)) (T, error) {
	var zero T

	if !configured {
		return zero, failure.DemoModeError
	}

	result, err := remote(ctx)
	if err != nil {
		return zero, failure.WriteFailed(err) //nolint:wrapcheck
	}

	return result, nil
}
