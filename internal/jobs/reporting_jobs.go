package jobs

import (
	"context"
	"errors"
	"time"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
)

const digestClientLimit = 5

// DailyEarningsDigest logs yesterday's best-earning profession and top
// paying clients for operators.
func (jr *JobRunner) DailyEarningsDigest() {
	jr.runWithRecovery("DailyEarningsDigest", jr.dailyEarningsDigest)
}

func (jr *JobRunner) dailyEarningsDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.Add(-24 * time.Hour)

	profession, err := jr.reports.BestProfession(ctx, start, end)
	switch {
	case errors.Is(err, domain.ErrNoData):
		logger.Info("Earnings digest: no paid jobs yesterday", "start", start, "end", end)
		return
	case err != nil:
		logger.Error("Earnings digest: best profession failed", "error", err)
		return
	}

	clients, err := jr.reports.BestClients(ctx, start, end, digestClientLimit)
	if err != nil {
		logger.Error("Earnings digest: best clients failed", "error", err)
		return
	}

	logger.Info("Earnings digest", "start", start, "end", end, "bestProfession", profession)
	for i, c := range clients {
		logger.Info("Earnings digest top client", "rank", i+1, "clientID", c.ID,
			"fullName", c.FullName, "paidCents", c.PaidCents)
	}
}
