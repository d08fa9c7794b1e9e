package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/repository"
)

// DefaultBestClientsLimit applies when the caller does not supply one.
const DefaultBestClientsLimit = 2

type reportingService struct {
	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
}

func NewReportingService(jobRepo repository.JobRepository, profileRepo repository.ProfileRepository) ReportingService {
	return &reportingService{jobRepo: jobRepo, profileRepo: profileRepo}
}

// normalizeWindow fills the inclusive reporting window defaults: the Unix
// epoch and now.
func normalizeWindow(start, end time.Time) (time.Time, time.Time) {
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}
	return start, end
}

func (s *reportingService) BestProfession(ctx context.Context, start, end time.Time) (string, error) {
	start, end = normalizeWindow(start, end)
	if end.Before(start) {
		return "", fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}

	rows, err := s.jobRepo.PaidInWindow(ctx, start, end)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", domain.ErrNoData
	}

	contractorIDs := uniqueIDs(rows, func(r domain.PaidJobRow) int64 { return r.ContractorID })
	contractors, err := s.profileRepo.GetByIDs(ctx, contractorIDs)
	if err != nil {
		return "", err
	}
	professionByID := make(map[int64]string, len(contractors))
	for _, p := range contractors {
		professionByID[p.ID] = p.Profession
	}

	totals := make(map[string]int64)
	for _, r := range rows {
		profession, ok := professionByID[r.ContractorID]
		if !ok {
			continue
		}
		totals[profession] += r.PriceCents
	}
	if len(totals) == 0 {
		return "", domain.ErrNoData
	}

	// Ties resolve to the lexicographically smallest profession so the
	// result is reproducible.
	var best string
	var bestTotal int64
	first := true
	for profession, total := range totals {
		if first || total > bestTotal || (total == bestTotal && profession < best) {
			best, bestTotal, first = profession, total, false
		}
	}
	return best, nil
}

func (s *reportingService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.BestClient, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer", domain.ErrValidation)
	}
	start, end = normalizeWindow(start, end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", domain.ErrValidation)
	}

	rows, err := s.jobRepo.PaidInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]int64)
	for _, r := range rows {
		totals[r.ClientID] += r.PriceCents
	}

	ranked := make([]domain.BestClient, 0, len(totals))
	for clientID, paid := range totals {
		ranked = append(ranked, domain.BestClient{ID: clientID, PaidCents: paid})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PaidCents != ranked[j].PaidCents {
			return ranked[i].PaidCents > ranked[j].PaidCents
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		return []domain.BestClient{}, nil
	}

	clientIDs := make([]int64, len(ranked))
	for i, c := range ranked {
		clientIDs[i] = c.ID
	}
	clients, err := s.profileRepo.GetByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[int64]string, len(clients))
	for _, p := range clients {
		nameByID[p.ID] = p.FullName()
	}
	for i := range ranked {
		ranked[i].FullName = nameByID[ranked[i].ID]
	}
	return ranked, nil
}

func uniqueIDs(rows []domain.PaidJobRow, key func(domain.PaidJobRow) int64) []int64 {
	seen := make(map[int64]struct{}, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		id := key(r)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
