package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_TrimsName() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Food" && c.TenantID == "t1" && c.CategoryID != ""
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, "t1", "  Food ")

	suite.Require().NoError(err)
	suite.Equal("Food", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidName() {
	for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
		_, err := suite.service.CreateCategory(context.Background(), "t1", name)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("SaveCategory", ctx, mock.Anything).Return(apperrors.NewConflictError("category already exists")).Once()

	_, err := suite.service.CreateCategory(ctx, "t1", "Food")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CategoryServiceTestSuite) TestRenameCategory_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("RenameCategory", ctx, "t1", "c1", "Groceries").Return(nil, apperrors.NewNotFoundError("category not found")).Once()

	_, err := suite.service.RenameCategory(ctx, "t1", "c1", "Groceries")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestListCategories_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx, "t1").Return(nil, nil).Once()

	categories, err := suite.service.ListCategories(ctx, "t1")

	suite.Require().NoError(err)
	suite.NotNil(categories)
}

func (suite *CategoryServiceTestSuite) TestCreateSubcategory() {
	ctx := context.Background()
	suite.mockRepo.On("SaveSubcategory", ctx, mock.MatchedBy(func(s domain.Subcategory) bool {
		return s.CategoryID == "c1" && s.Name == "Restaurants"
	})).Return(nil).Once()

	sub, err := suite.service.CreateSubcategory(ctx, "t1", "c1", "Restaurants")

	suite.Require().NoError(err)
	suite.Equal("c1", sub.CategoryID)

	_, err = suite.service.CreateSubcategory(ctx, "t1", "", "Restaurants")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CategoryServiceTestSuite) TestRequiresTenant() {
	_, err := suite.service.ListSubcategories(context.Background(), "")
	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)

	_, err = suite.service.RenameSubcategory(context.Background(), "", "s1", "x")
	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func TestPaymentMethodService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPaymentMethodRepository)
	svc := services.NewPaymentMethodService(repo)

	repo.On("SavePaymentMethod", ctx, mock.MatchedBy(func(p domain.PaymentMethod) bool {
		return p.Name == "Visa" && p.IsActive
	})).Return(nil).Once()
	method, err := svc.CreatePaymentMethod(ctx, "t1", " Visa")
	require.NoError(t, err)
	assert.True(t, method.IsActive)

	repo.On("ListActivePaymentMethods", ctx, "t1").Return([]domain.PaymentMethod{*method}, nil).Once()
	methods, err := svc.ListPaymentMethods(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, methods, 1)

	repo.On("RenamePaymentMethod", ctx, "t1", method.PaymentMethodID, "Cash").
		Return(&domain.PaymentMethod{PaymentMethodID: method.PaymentMethodID, Name: "Cash", IsActive: true}, nil).Once()
	renamed, err := svc.RenamePaymentMethod(ctx, "t1", method.PaymentMethodID, "Cash")
	require.NoError(t, err)
	assert.Equal(t, "Cash", renamed.Name)

	_, err = svc.CreatePaymentMethod(ctx, "", "Visa")
	assert.ErrorIs(t, err, apperrors.ErrTenantUnavailable)
	repo.AssertExpectations(t)
}

func TestCurrencyService_ListCurrencies(t *testing.T) {
	svc := services.NewCurrencyService()

	currencies := svc.ListCurrencies(context.Background())
	require.Len(t, currencies, len(domain.SupportedCurrencies))
	assert.Equal(t, domain.USD, currencies[0].CurrencyCode)

	currencies[0].Name = "changed"
	assert.Equal(t, "US Dollar", svc.ListCurrencies(context.Background())[0].Name)
}
