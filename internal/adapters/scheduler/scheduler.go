// Package scheduler keeps the rolling window materialized in the background.
package scheduler

import (
	"context"
	"log"
	"time"

	"teetime/internal/ports/input"
)

// Run generates the rolling window once, then every interval until ctx is done.
func Run(ctx context.Context, calendar input.CalendarUseCase, interval time.Duration, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	generate(ctx, calendar, now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			generate(ctx, calendar, now())
		}
	}
}

func generate(ctx context.Context, calendar input.CalendarUseCase, now time.Time) {
	created, err := calendar.GenerateRollingWindow(ctx, now)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("❌ Scheduled generation failed: %v", err)
		}
		return
	}
	if created > 0 {
		log.Printf("📅 Generated %d event(s) for the rolling window", created)
	}
}
