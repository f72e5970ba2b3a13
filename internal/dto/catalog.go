package dto

import "github.com/SscSPs/expense_tracker/internal/core/domain"

// NameRequest is the body of every create or rename call on named catalog entries.
type NameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// SubcategoryResponse defines the data returned for a subcategory.
type SubcategoryResponse struct {
	SubcategoryID string `json:"subcategoryID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	PaymentMethodID string `json:"paymentMethodID"`
	Name            string `json:"name"`
	IsActive        bool   `json:"isActive"`
}

// ProfileResponse defines the data returned for a user profile.
type ProfileResponse struct {
	UserID      string  `json:"userID"`
	DisplayName *string `json:"displayName"`
}

// TenantResponse is the caller's tenant membership.
type TenantResponse struct {
	TenantID string `json:"tenantID"`
	UserID   string `json:"userID"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
}

func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}

func ToSubcategoryResponse(s *domain.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{SubcategoryID: s.SubcategoryID, CategoryID: s.CategoryID, Name: s.Name}
}

func ToListSubcategoryResponse(subcategories []domain.Subcategory) []SubcategoryResponse {
	out := make([]SubcategoryResponse, len(subcategories))
	for i := range subcategories {
		out[i] = ToSubcategoryResponse(&subcategories[i])
	}
	return out
}

func ToPaymentMethodResponse(p *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{PaymentMethodID: p.PaymentMethodID, Name: p.Name, IsActive: p.IsActive}
}

func ToListPaymentMethodResponse(methods []domain.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		out[i] = ToPaymentMethodResponse(&methods[i])
	}
	return out
}

func ToListProfileResponse(profiles []domain.Profile) []ProfileResponse {
	out := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = ProfileResponse{UserID: p.UserID, DisplayName: p.DisplayName}
	}
	return out
}
