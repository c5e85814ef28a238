package application

import (
	"context"
	"errors"
	"log"

	"teetime/internal/domain"
)

// maxAttempts bounds retries of a unit of work that lost a lock or
// serialization race.
const maxAttempts = 3

func withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if !errors.Is(err, domain.ErrConcurrentConflict) || ctx.Err() != nil {
			return err
		}
		log.Printf("⚠️ %s: concurrent conflict (attempt %d/%d): %v", op, attempt, maxAttempts, err)
	}
	return err
}
