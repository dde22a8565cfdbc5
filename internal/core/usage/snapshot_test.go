package usage

import (
	"fmt"
	"testing"

	"github.com/savannacrm/kenya-ai-crm-be/internal/core/events"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/services"
)

type fakeDocumentRepo struct {
	available bool
	inserted  []interface{}
	counts    map[string][]repositories.TenantCount
}

func (f *fakeDocumentRepo) Available() bool { return f.available }

func (f *fakeDocumentRepo) Insert(collection string, record interface{}) (string, error) {
	if !f.available {
		return "", repositories.ErrStoreUnavailable
	}
	f.inserted = append(f.inserted, record)
	return fmt.Sprintf("%s-%d", collection, len(f.inserted)), nil
}

func (f *fakeDocumentRepo) ListByTenant(collection, tenantID string, limit int) ([]map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) Collections(limit int) ([]string, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) CountByTenant(collection string) ([]repositories.TenantCount, error) {
	if !f.available {
		return nil, repositories.ErrStoreUnavailable
	}
	return f.counts[collection], nil
}

func newSnapshotter(repo *fakeDocumentRepo, kinds []string) *Snapshotter {
	registry := models.NewRegistry()
	evs := services.NewEventService(registry, repo, events.NewFallback())
	return NewSnapshotter(repo, evs, kinds)
}

func TestRunAppendsOneSnapshotPerTenant(t *testing.T) {
	repo := &fakeDocumentRepo{
		available: true,
		counts: map[string][]repositories.TenantCount{
			models.KindLead: {
				{TenantID: "t1", Count: 3},
				{TenantID: "t2", Count: 1},
			},
			models.KindProposal: {
				{TenantID: "t1", Count: 2},
			},
		},
	}
	s := newSnapshotter(repo, []string{models.KindLead, models.KindProposal})

	s.Run()

	if len(repo.inserted) != 2 {
		t.Fatalf("expected 2 snapshot records, got %d", len(repo.inserted))
	}

	byTenant := map[string]*models.EventLog{}
	for _, rec := range repo.inserted {
		ev, ok := rec.(*models.EventLog)
		if !ok {
			t.Fatalf("expected *models.EventLog, got %T", rec)
		}
		if ev.Type != "usage_snapshot" {
			t.Fatalf("expected usage_snapshot event, got %q", ev.Type)
		}
		byTenant[ev.TenantID] = ev
	}

	t1 := byTenant["t1"]
	if t1 == nil {
		t.Fatal("expected snapshot for t1")
	}
	if t1.Data[models.KindLead] != int64(3) || t1.Data[models.KindProposal] != int64(2) {
		t.Fatalf("unexpected t1 data: %v", t1.Data)
	}

	t2 := byTenant["t2"]
	if t2 == nil {
		t.Fatal("expected snapshot for t2")
	}
	if t2.Data[models.KindLead] != int64(1) {
		t.Fatalf("unexpected t2 data: %v", t2.Data)
	}
	if _, ok := t2.Data[models.KindProposal]; ok {
		t.Fatal("t2 has no proposals, kind must be absent")
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	repo := &fakeDocumentRepo{available: true}
	s := newSnapshotter(repo, nil)

	if err := s.Start("not a schedule"); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestRunSkipsWhenStoreUnavailable(t *testing.T) {
	repo := &fakeDocumentRepo{available: false}
	s := newSnapshotter(repo, []string{models.KindLead})

	s.Run()

	if len(repo.inserted) != 0 {
		t.Fatalf("expected no snapshots on degraded store, got %d", len(repo.inserted))
	}
}

func TestRunIgnoresBlankTenant(t *testing.T) {
	repo := &fakeDocumentRepo{
		available: true,
		counts: map[string][]repositories.TenantCount{
			models.KindTenant: {
				{TenantID: "", Count: 5},
				{TenantID: "t1", Count: 1},
			},
		},
	}
	s := newSnapshotter(repo, []string{models.KindTenant})

	s.Run()

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 snapshot record, got %d", len(repo.inserted))
	}
	if repo.inserted[0].(*models.EventLog).TenantID != "t1" {
		t.Fatal("blank tenant rows must be skipped")
	}
}
