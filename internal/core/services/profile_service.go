package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type profileService struct {
	profileRepo portsrepo.ProfileReader
}

func NewProfileService(profileRepo portsrepo.ProfileReader) portssvc.ProfileReaderSvc {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if profiles == nil {
		return []domain.Profile{}, nil
	}
	return profiles, nil
}
