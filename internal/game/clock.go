package game

import (
	"context"
	"fmt"
	"time"
)

// RunClock ticks s once per interval until the game finishes or ctx is
// done. It returns nil when the game finished and ctx.Err() otherwise.
func RunClock(ctx context.Context, s *Session, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: clock interval must be positive, got %v", ErrInvalidConfig, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if st := s.Tick(); st.Phase == PhaseFinished {
				return nil
			}
		}
	}
}
