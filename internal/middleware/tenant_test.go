package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTenantSvc struct {
	mock.Mock
}

func (m *MockTenantSvc) GetOrCreateMembership(ctx context.Context, userID string) (*domain.TenantUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantUser), args.Error(1)
}

func newTenantRouter(svc *MockTenantSvc, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(withUserID(c.Request.Context(), userID))
		}
		c.Next()
	})
	r.Use(TenantMiddleware(svc))
	r.GET("/tenant", func(c *gin.Context) {
		tenantID, _ := GetTenantIDFromContext(c)
		c.String(http.StatusOK, tenantID)
	})
	return r
}

func TestTenantMiddleware_ResolvesTenant(t *testing.T) {
	svc := new(MockTenantSvc)
	svc.On("GetOrCreateMembership", mock.Anything, "user-1").
		Return(&domain.TenantUser{TenantID: "tenant-1", UserID: "user-1"}, nil).Once()

	w := httptest.NewRecorder()
	newTenantRouter(svc, "user-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenant", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant-1", w.Body.String())
	svc.AssertExpectations(t)
}

func TestTenantMiddleware_NoDefaultTenant(t *testing.T) {
	svc := new(MockTenantSvc)
	svc.On("GetOrCreateMembership", mock.Anything, "user-1").Return(nil, apperrors.ErrTenantUnavailable).Once()

	w := httptest.NewRecorder()
	newTenantRouter(svc, "user-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenant", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrTenantUnavailable.Error())
}

func TestTenantMiddleware_RequiresUser(t *testing.T) {
	svc := new(MockTenantSvc)

	w := httptest.NewRecorder()
	newTenantRouter(svc, "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenant", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "GetOrCreateMembership", mock.Anything, mock.Anything)
}
