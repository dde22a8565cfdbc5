package services

import (
	"errors"
	"testing"

	"github.com/savannacrm/kenya-ai-crm-be/internal/core/events"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/models"
	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
)

func newLeadService(repo *fakeDocumentRepo) *LeadService {
	registry := models.NewRegistry()
	jobs := NewAIJobService(registry, repo)
	evs := NewEventService(registry, repo, events.NewFallback())
	return NewLeadService(registry, repo, jobs, evs)
}

func TestCreateLeadForcesServerFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newLeadService(repo)

	// status, score and meta in the payload must not survive intake
	raw := []byte(`{
		"tenant_id": "t1",
		"source": "web",
		"name": "Wanjiku",
		"status": "won",
		"score": 95,
		"meta": {"ingest": "import", "priority": "high"}
	}`)

	id, err := svc.CreateLead(raw)
	if err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	if len(repo.inserted[models.KindLead]) != 1 {
		t.Fatalf("expected 1 lead insert, got %d", len(repo.inserted[models.KindLead]))
	}
	lead := repo.inserted[models.KindLead][0].(*models.Lead)
	if lead.Status != models.LeadStatusNew {
		t.Fatalf("expected forced status new, got %q", lead.Status)
	}
	if lead.Meta["ingest"] != "api" {
		t.Fatalf("expected forced meta.ingest api, got %v", lead.Meta)
	}
	if _, ok := lead.Meta["priority"]; ok {
		t.Fatal("expected caller meta to be dropped")
	}
	if lead.Score != nil {
		t.Fatal("expected caller score to be dropped")
	}
	if lead.Name == nil || *lead.Name != "Wanjiku" {
		t.Fatalf("expected name to survive, got %v", lead.Name)
	}
}

func TestCreateLeadQueuesAnalysisJobAndEvent(t *testing.T) {
	repo := newFakeRepo()
	svc := newLeadService(repo)

	id, err := svc.CreateLead([]byte(`{"tenant_id":"t1","source":"manual"}`))
	if err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}

	jobs := repo.inserted[models.KindAIJob]
	if len(jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(jobs))
	}
	job := jobs[0].(*models.AIJob)
	if job.JobType != models.AIJobLeadAnalysis {
		t.Fatalf("expected lead_analysis job, got %q", job.JobType)
	}
	if job.Status != models.AIJobStatusQueued {
		t.Fatalf("expected queued job, got %q", job.Status)
	}
	if job.Input["lead_id"] != id {
		t.Fatalf("expected job input lead_id %q, got %v", id, job.Input)
	}

	evs := repo.inserted[models.KindEventLog]
	if len(evs) != 1 {
		t.Fatalf("expected 1 event log record, got %d", len(evs))
	}
	ev := evs[0].(*models.EventLog)
	if ev.Type != "lead.created" {
		t.Fatalf("expected lead.created event, got %q", ev.Type)
	}
}

func TestCreateLeadRejectsBadPayloads(t *testing.T) {
	repo := newFakeRepo()
	svc := newLeadService(repo)

	cases := []struct {
		name string
		raw  string
	}{
		{"bad source", `{"tenant_id":"t1","source":"telegram"}`},
		{"missing tenant", `{"source":"web"}`},
		{"bad email", `{"tenant_id":"t1","source":"web","email":"nope"}`},
		{"not json", `[1,2,3`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLead([]byte(tc.raw))
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}

	if len(repo.inserted[models.KindLead]) != 0 {
		t.Fatalf("expected no inserts after rejections, got %d", len(repo.inserted[models.KindLead]))
	}
	if len(repo.inserted[models.KindAIJob]) != 0 {
		t.Fatal("expected no jobs queued after rejections")
	}
}

func TestCreateLeadStoreUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.available = false
	svc := newLeadService(repo)

	_, err := svc.CreateLead([]byte(`{"tenant_id":"t1","source":"web"}`))
	if !errors.Is(err, repositories.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestCreateLeadSurvivesJobQueueFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.insertErr[models.KindAIJob] = &repositories.StoreWriteError{Collection: models.KindAIJob, Message: "boom"}
	svc := newLeadService(repo)

	id, err := svc.CreateLead([]byte(`{"tenant_id":"t1","source":"web"}`))
	if err != nil {
		t.Fatalf("expected lead create to survive job failure, got %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}
	if len(repo.inserted[models.KindLead]) != 1 {
		t.Fatal("expected lead to be persisted")
	}
}
