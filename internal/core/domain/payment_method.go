package domain

// PaymentMethod is how an expense was paid (card, cash, ...).
type PaymentMethod struct {
	PaymentMethodID string `json:"paymentMethodID"`
	TenantID        string `json:"tenantID"`
	Name            string `json:"name"`
	IsActive        bool   `json:"isActive"`
}
