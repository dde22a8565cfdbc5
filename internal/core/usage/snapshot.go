package usage

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/services"
	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"
)

// Snapshotter periodically appends per-tenant document counts to the event
// log. Snapshots are plain event log inserts, so the append-only lifecycle
// of the store holds.
type Snapshotter struct {
	cron   *cron.Cron
	docs   repositories.DocumentRepo
	events *services.EventService
	kinds  []string
}

func NewSnapshotter(docs repositories.DocumentRepo, events *services.EventService, kinds []string) *Snapshotter {
	return &Snapshotter{
		cron:   cron.New(),
		docs:   docs,
		events: events,
		kinds:  kinds,
	}
}

// Start schedules snapshots with the given cron expression.
func (s *Snapshotter) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return fmt.Errorf("failed to schedule usage snapshot: %w", err)
	}
	s.cron.Start()
	utils.LogInfo("⏰ Usage snapshotter started", map[string]interface{}{"schedule": schedule})
	return nil
}

func (s *Snapshotter) Stop() {
	s.cron.Stop()
	utils.LogInfo("⏰ Usage snapshotter stopped", nil)
}

// Run takes one snapshot across all collections.
func (s *Snapshotter) Run() {
	if !s.docs.Available() {
		utils.LogWarn("usage snapshot skipped, document store unavailable", nil)
		return
	}

	perTenant := map[string]map[string]interface{}{}
	for _, kind := range s.kinds {
		counts, err := s.docs.CountByTenant(kind)
		if err != nil {
			utils.LogWarn("usage count failed", map[string]interface{}{
				"collection": kind,
				"error":      err.Error(),
			})
			continue
		}
		for _, c := range counts {
			if c.TenantID == "" {
				continue
			}
			if perTenant[c.TenantID] == nil {
				perTenant[c.TenantID] = map[string]interface{}{}
			}
			perTenant[c.TenantID][kind] = c.Count
		}
	}

	for tenantID, data := range perTenant {
		if _, err := s.events.Append(tenantID, "usage_snapshot", nil, data); err != nil {
			utils.LogWarn("usage snapshot append failed", map[string]interface{}{
				"tenant_id": tenantID,
				"error":     err.Error(),
			})
		}
	}
}
