package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}
