package domain

// Category groups expenses inside a tenant.
type Category struct {
	CategoryID string `json:"categoryID"`
	TenantID   string `json:"tenantID"`
	Name       string `json:"name"`
}

// Subcategory refines a category.
type Subcategory struct {
	SubcategoryID string `json:"subcategoryID"`
	TenantID      string `json:"tenantID"`
	CategoryID    string `json:"categoryID"`
	Name          string `json:"name"`
}
