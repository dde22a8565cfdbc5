package services

import (
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
)

// AIJobService queues AI job records for an external runner. Jobs are
// inserted in "queued" state and never mutated here; execution and status
// transitions belong to the inference backend.
type AIJobService struct {
	registry *models.Registry
	docs     repositories.DocumentRepo
}

func NewAIJobService(registry *models.Registry, docs repositories.DocumentRepo) *AIJobService {
	return &AIJobService{registry: registry, docs: docs}
}

// Queue inserts one queued AI job record and returns its generated id.
func (s *AIJobService) Queue(tenantID, jobType string, input map[string]interface{}) (string, error) {
	job := models.NewAIJob()
	job.TenantID = tenantID
	job.JobType = jobType
	if input != nil {
		job.Input = input
	}

	if verr := s.registry.ValidateRecord(models.KindAIJob, job); verr != nil {
		return "", verr
	}

	return s.docs.Insert(models.KindAIJob, job)
}
