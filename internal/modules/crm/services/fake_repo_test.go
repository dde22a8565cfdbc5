package services

import (
	"fmt"

	"github.com/savannacrm/kenya-ai-crm-be/internal/modules/crm/repositories"
)

// fakeDocumentRepo records inserts in memory so service behavior can be
// asserted without a live database.
type fakeDocumentRepo struct {
	available bool
	inserted  map[string][]interface{}
	insertErr map[string]error
	docs      map[string][]map[string]interface{}
	lastList  struct {
		collection string
		tenantID   string
		limit      int
	}
	counts map[string][]repositories.TenantCount
}

func newFakeRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		available: true,
		inserted:  map[string][]interface{}{},
		insertErr: map[string]error{},
		docs:      map[string][]map[string]interface{}{},
		counts:    map[string][]repositories.TenantCount{},
	}
}

func (f *fakeDocumentRepo) Available() bool { return f.available }

func (f *fakeDocumentRepo) Insert(collection string, record interface{}) (string, error) {
	if !f.available {
		return "", repositories.ErrStoreUnavailable
	}
	if err := f.insertErr[collection]; err != nil {
		return "", err
	}
	f.inserted[collection] = append(f.inserted[collection], record)
	return fmt.Sprintf("%s-%d", collection, len(f.inserted[collection])), nil
}

func (f *fakeDocumentRepo) ListByTenant(collection, tenantID string, limit int) ([]map[string]interface{}, error) {
	if !f.available {
		return nil, repositories.ErrStoreUnavailable
	}
	f.lastList.collection = collection
	f.lastList.tenantID = tenantID
	f.lastList.limit = limit
	return f.docs[collection], nil
}

func (f *fakeDocumentRepo) Collections(limit int) ([]string, error) {
	if !f.available {
		return nil, repositories.ErrStoreUnavailable
	}
	names := make([]string, 0, len(f.docs))
	for name := range f.docs {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeDocumentRepo) CountByTenant(collection string) ([]repositories.TenantCount, error) {
	if !f.available {
		return nil, repositories.ErrStoreUnavailable
	}
	return f.counts[collection], nil
}
