package domain

// Tenant is an isolated group of users sharing categories and expenses.
type Tenant struct {
	TenantID  string `json:"tenantID"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"` // New users join the default tenant
}

// TenantUser represents the membership of a user in a tenant.
type TenantUser struct {
	TenantID string `json:"tenantID"`
	UserID   string `json:"userID"`
}
