package repositories

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/database"
)

// DefaultLimit caps every listing result.
const DefaultLimit = 50

// documentRow is the persisted shape: one jsonb document per row, with the
// tenant filter column extracted for indexing. Rows are written once and
// never updated.
type documentRow struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key"`
	TenantID  string         `gorm:"type:text;not null;index"`
	Doc       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

// TenantCount is a per-tenant document count for one collection.
type TenantCount struct {
	TenantID string `gorm:"column:tenant_id"`
	Count    int64  `gorm:"column:count"`
}

// DocumentRepo is the generic, kind-agnostic access to the backing
// collections. Collection names are lowercased entity kinds.
type DocumentRepo interface {
	Insert(collection string, record interface{}) (string, error)
	ListByTenant(collection, tenantID string, limit int) ([]map[string]interface{}, error)
	Collections(limit int) ([]string, error)
	CountByTenant(collection string) ([]TenantCount, error)
	Available() bool
}

type documentRepo struct {
	db *database.DB
}

func NewDocumentRepo(db *database.DB) DocumentRepo {
	return &documentRepo{db: db}
}

func (r *documentRepo) Available() bool {
	return r.db.Available()
}

// Insert persists one document and returns its generated identifier.
func (r *documentRepo) Insert(collection string, record interface{}) (string, error) {
	if !r.db.Available() {
		return "", ErrStoreUnavailable
	}

	doc, err := json.Marshal(record)
	if err != nil {
		return "", &StoreWriteError{Collection: collection, Message: truncate(err.Error(), maxErrLen)}
	}

	// Extract the tenant filter column from the document itself
	var fields map[string]interface{}
	_ = json.Unmarshal(doc, &fields)
	tenantID, _ := fields["tenant_id"].(string)

	row := documentRow{
		ID:       uuid.New(),
		TenantID: tenantID,
		Doc:      datatypes.JSON(doc),
	}

	if err := r.db.GORM.Table(collection).Create(&row).Error; err != nil {
		return "", &StoreWriteError{Collection: collection, Message: truncate(err.Error(), maxErrLen)}
	}

	return row.ID.String(), nil
}

// ListByTenant returns at most limit documents for one tenant in
// store-native order. No index beyond tenant_id is declared, so no ordering
// is promised.
func (r *documentRepo) ListByTenant(collection, tenantID string, limit int) ([]map[string]interface{}, error) {
	if !r.db.Available() {
		return nil, ErrStoreUnavailable
	}
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	var rows []documentRow
	err := r.db.GORM.Table(collection).
		Where("tenant_id = ?", tenantID).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, &StoreReadError{Collection: collection, Message: truncate(err.Error(), maxErrLen)}
	}

	docs := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		doc := map[string]interface{}{}
		if err := json.Unmarshal(row.Doc, &doc); err != nil {
			continue
		}
		doc["id"] = row.ID.String()
		docs = append(docs, doc)
	}
	return docs, nil
}

// Collections lists backing collection names for diagnostics.
func (r *documentRepo) Collections(limit int) ([]string, error) {
	if !r.db.Available() {
		return nil, ErrStoreUnavailable
	}

	var names []string
	err := r.db.GORM.Raw(
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_name NOT LIKE 'schema\_%'
		 ORDER BY table_name LIMIT ?`, limit,
	).Scan(&names).Error
	if err != nil {
		return nil, &StoreReadError{Collection: "information_schema", Message: truncate(err.Error(), maxErrLen)}
	}
	return names, nil
}

// CountByTenant aggregates document counts per tenant for one collection.
// Read-only; used by the usage snapshotter.
func (r *documentRepo) CountByTenant(collection string) ([]TenantCount, error) {
	if !r.db.Available() {
		return nil, ErrStoreUnavailable
	}

	var counts []TenantCount
	err := r.db.GORM.Table(collection).
		Select("tenant_id, COUNT(*) AS count").
		Group("tenant_id").
		Scan(&counts).Error
	if err != nil {
		return nil, &StoreReadError{Collection: collection, Message: truncate(err.Error(), maxErrLen)}
	}
	return counts, nil
}
