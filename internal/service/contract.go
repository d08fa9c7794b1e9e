package service

import (
	"context"
	"fmt"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/repository"
)

type contractService struct {
	contractRepo repository.ContractRepository
}

func NewContractService(contractRepo repository.ContractRepository) ContractService {
	return &contractService{contractRepo: contractRepo}
}

func (s *contractService) GetContract(ctx context.Context, actor *domain.Profile, id int64) (*domain.Contract, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: contract id must be positive", domain.ErrValidation)
	}
	return s.contractRepo.GetByIDForParty(ctx, id, actor.ID)
}

func (s *contractService) ListContracts(ctx context.Context, actor *domain.Profile) ([]domain.Contract, error) {
	return s.contractRepo.ListActiveByParty(ctx, actor.ID)
}
