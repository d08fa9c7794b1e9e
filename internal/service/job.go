package service

import (
	"context"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/repository"
)

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) ListUnpaidJobs(ctx context.Context, actor *domain.Profile) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindUnpaidForParty(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.ErrNotFound
	}
	return jobs, nil
}
