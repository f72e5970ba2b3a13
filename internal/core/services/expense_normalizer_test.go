package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseNormalizerTestSuite struct {
	suite.Suite
	mockResolver *MockRateResolver
	normalizer   portssvc.ExpenseNormalizerSvc
}

func (suite *ExpenseNormalizerTestSuite) SetupTest() {
	suite.mockResolver = &MockRateResolver{refs: dual}
	suite.normalizer = services.NewExpenseNormalizer(suite.mockResolver)
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_ARSExpense() {
	ctx := context.Background()
	suite.mockResolver.On("Resolve", ctx, "ARS").
		Return(domain.RateSet{domain.USD: dec("0.0012"), domain.ARS: decimal.NewFromInt(1)}, nil).Once()

	amounts, err := suite.normalizer.ComputeAmounts(ctx, dec("50"), "ARS")

	suite.Require().NoError(err)
	suite.True(dec("0.0012").Equal(amounts.FxRateToUSD))
	suite.Equal("0.06", amounts.AmountUSD.StringFixed(2))
	suite.Require().NotNil(amounts.AmountARS)
	suite.True(dec("50").Equal(*amounts.AmountARS))
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_RoundsHalfAwayFromZero() {
	tests := []struct {
		amount, rate, want string
	}{
		{amount: "33335", rate: "0.001", want: "33.34"},
		{amount: "100.05", rate: "0.5", want: "50.03"},
		{amount: "10", rate: "0.3333", want: "3.33"},
	}

	for _, tt := range tests {
		suite.SetupTest()
		ctx := context.Background()
		suite.mockResolver.On("Resolve", ctx, "CLP").
			Return(domain.RateSet{domain.USD: dec(tt.rate), domain.ARS: dec("1")}, nil).Once()

		amounts, err := suite.normalizer.ComputeAmounts(ctx, dec(tt.amount), "CLP")

		suite.Require().NoError(err)
		suite.Equal(tt.want, amounts.AmountUSD.StringFixed(2), "%s * %s", tt.amount, tt.rate)
	}
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_SingleReferenceLeavesARSEmpty() {
	ctx := context.Background()
	suite.mockResolver.On("Resolve", ctx, "USD").Return(domain.RateSet{domain.USD: decimal.NewFromInt(1)}, nil).Once()

	amounts, err := suite.normalizer.ComputeAmounts(ctx, dec("12.50"), "USD")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1).Equal(amounts.FxRateToUSD))
	suite.Equal("12.50", amounts.AmountUSD.StringFixed(2))
	suite.Nil(amounts.AmountARS)
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_IsIdempotent() {
	ctx := context.Background()
	suite.mockResolver.On("Resolve", ctx, "ARS").
		Return(domain.RateSet{domain.USD: dec("0.0011"), domain.ARS: decimal.NewFromInt(1)}, nil).Twice()

	first, err := suite.normalizer.ComputeAmounts(ctx, dec("100"), "ARS")
	suite.Require().NoError(err)
	second, err := suite.normalizer.ComputeAmounts(ctx, dec("100"), "ARS")
	suite.Require().NoError(err)

	suite.True(first.AmountUSD.Equal(second.AmountUSD))
	suite.True(first.FxRateToUSD.Equal(second.FxRateToUSD))
	suite.True(first.AmountARS.Equal(*second.AmountARS))
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_RejectsNonPositive() {
	for _, amount := range []string{"0", "-5"} {
		_, err := suite.normalizer.ComputeAmounts(context.Background(), dec(amount), "USD")
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.mockResolver.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything)
}

// The stored row must reproduce amount_usd from its own columns, which are
// NUMERIC(20,4) for the amount and NUMERIC(20,10) for the rate.
func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_MatchesStoredScales() {
	inverted := decimal.NewFromInt(1).Div(decimal.NewFromInt(16300))
	tests := []struct {
		name   string
		amount decimal.Decimal
		rate   decimal.Decimal
	}{
		{name: "inverted provider rate", amount: decimal.NewFromInt(2000000000), rate: inverted},
		{name: "four place amount", amount: dec("10.0049"), rate: decimal.NewFromInt(1)},
		{name: "long rate", amount: dec("123.4567"), rate: dec("0.00123456789012345")},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			suite.mockResolver.On("Resolve", ctx, "ARS").
				Return(domain.RateSet{domain.USD: tt.rate, domain.ARS: decimal.NewFromInt(1)}, nil).Once()

			amounts, err := suite.normalizer.ComputeAmounts(ctx, tt.amount, "ARS")
			suite.Require().NoError(err)

			storedAmount := tt.amount.Round(domain.AmountPlaces)
			storedRate := amounts.FxRateToUSD.Round(domain.RatePlaces)
			suite.True(storedRate.Equal(amounts.FxRateToUSD), "rate %s exceeds stored scale", amounts.FxRateToUSD)
			suite.Equal(storedAmount.Mul(storedRate).Round(2).StringFixed(2), amounts.AmountUSD.StringFixed(2))
		})
	}
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_RejectsAmountBeyondStoredScale() {
	for _, amount := range []string{"10.00499", "0.00001"} {
		_, err := suite.normalizer.ComputeAmounts(context.Background(), dec(amount), "USD")
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.mockResolver.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything)
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_RateBelowStoredScale() {
	ctx := context.Background()
	suite.mockResolver.On("Resolve", ctx, "VND").
		Return(domain.RateSet{domain.USD: dec("0.00000000001"), domain.ARS: decimal.NewFromInt(1)}, nil).Once()

	_, err := suite.normalizer.ComputeAmounts(ctx, dec("10"), "VND")

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *ExpenseNormalizerTestSuite) TestComputeAmounts_RateUnavailable() {
	ctx := context.Background()
	suite.mockResolver.On("Resolve", ctx, "EUR").Return(nil, apperrors.NewRateUnavailableError("down", nil)).Once()

	_, err := suite.normalizer.ComputeAmounts(ctx, dec("10"), "EUR")

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func TestExpenseNormalizer(t *testing.T) {
	suite.Run(t, new(ExpenseNormalizerTestSuite))
}
