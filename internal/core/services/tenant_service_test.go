package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTenantRepository
	service  portssvc.TenantSvc
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTenantRepository)
	suite.service = services.NewTenantService(suite.mockRepo)
}

func (suite *TenantServiceTestSuite) TestExistingMembership() {
	ctx := context.Background()
	membership := &domain.TenantUser{TenantID: "t1", UserID: "u1"}
	suite.mockRepo.On("FindMembershipByUserID", ctx, "u1").Return(membership, nil).Once()

	got, err := suite.service.GetOrCreateMembership(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(membership, got)
	suite.mockRepo.AssertNotCalled(suite.T(), "JoinDefaultTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestJoinsDefaultTenant() {
	ctx := context.Background()
	membership := &domain.TenantUser{TenantID: "default", UserID: "u1"}
	suite.mockRepo.On("FindMembershipByUserID", ctx, "u1").Return(nil, apperrors.NewNotFoundError("no membership")).Once()
	suite.mockRepo.On("JoinDefaultTenant", ctx, "u1").Return(nil).Once()
	suite.mockRepo.On("FindMembershipByUserID", ctx, "u1").Return(membership, nil).Once()

	got, err := suite.service.GetOrCreateMembership(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal("default", got.TenantID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestNoDefaultTenant() {
	ctx := context.Background()
	suite.mockRepo.On("FindMembershipByUserID", ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("JoinDefaultTenant", ctx, "u1").Return(apperrors.NewNotFoundError("no default tenant")).Once()

	_, err := suite.service.GetOrCreateMembership(ctx, "u1")

	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)
}

func (suite *TenantServiceTestSuite) TestLookupError() {
	ctx := context.Background()
	dbErr := errors.New("db down")
	suite.mockRepo.On("FindMembershipByUserID", ctx, "u1").Return(nil, dbErr).Once()

	_, err := suite.service.GetOrCreateMembership(ctx, "u1")

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrTenantUnavailable)
}

func (suite *TenantServiceTestSuite) TestEmptyUser() {
	_, err := suite.service.GetOrCreateMembership(context.Background(), "")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
