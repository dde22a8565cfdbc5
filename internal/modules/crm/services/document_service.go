package services

import (
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	sharedvalidator "github.com/savannacrm/kenya-ai-crm-be/internal/shared/validator"
)

// DocumentService exposes tenant-scoped listing over any registered kind.
type DocumentService struct {
	registry *models.Registry
	docs     repositories.DocumentRepo
}

func NewDocumentService(registry *models.Registry, docs repositories.DocumentRepo) *DocumentService {
	return &DocumentService{registry: registry, docs: docs}
}

// ListByTenant returns documents filtered strictly by tenant_id, at most
// limit (capped at 50), in store-native order with no further shaping.
func (s *DocumentService) ListByTenant(kind, tenantID string, limit int) ([]map[string]interface{}, error) {
	if !s.registry.Has(kind) {
		return nil, &models.ValidationError{
			Kind:   kind,
			Errors: []sharedvalidator.FieldError{{Message: "unknown entity kind"}},
		}
	}
	if tenantID == "" {
		return nil, &models.ValidationError{
			Kind:   kind,
			Errors: []sharedvalidator.FieldError{{Field: "tenant_id", Message: "tenant_id is required"}},
		}
	}

	if limit <= 0 || limit > repositories.DefaultLimit {
		limit = repositories.DefaultLimit
	}
	return s.docs.ListByTenant(kind, tenantID, limit)
}
