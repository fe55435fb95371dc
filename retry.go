package url2pdf

import (
	"context"
	"os"
	"time"
)

// Convert runs the full retry loop for one target and finalizes its
// Result. Attempts are strictly sequential and numbered from 1; every
// failure class is retried until the attempt budget is exhausted (the
// budget bounds the cost of permanent failures too). Work lands in a
// .part file renamed onto outPath only after a verified success, so a
// canceled or failed attempt never leaves a corrupt artifact behind.
func (s *Service) Convert(ctx context.Context, target Target, outPath string) Result {
	result := Result{Target: target}
	partPath := outPath + ".part"

	for attempt := 1; attempt <= s.cfg.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
		outcome := s.runAttempt(attemptCtx, target, partPath, attempt)
		cancel()

		result.Attempts = append(result.Attempts, outcome)

		if outcome.Succeeded() {
			if err := os.Rename(partPath, outPath); err != nil {
				result.Err = err
				return result
			}
			result.OutputPath = outPath
			result.Err = nil
			return result
		}

		_ = os.Remove(partPath)
		result.Err = outcome.Err

		if attempt < s.cfg.maxAttempts {
			if err := sleepContext(ctx, s.cfg.retryDelay); err != nil {
				result.Err = err
				return result
			}
		}
	}

	return result
}

// sleepContext waits for the retry delay unless the run is canceled
// first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
