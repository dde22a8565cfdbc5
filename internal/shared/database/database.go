package database

import (
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"
)

// DB wraps the GORM handle for the document store. GORM is nil when the
// backing store could not be reached at boot; callers must treat that as
// degraded rather than fatal.
type DB struct {
	GORM *gorm.DB
}

// Connect opens the document store connection once at process start. A
// connection failure never aborts the process: the API keeps answering
// health checks without a database and reports the degraded state instead.
// There is no automatic reconnect within a run.
func Connect(connStr, dbName string) *DB {
	if connStr == "" {
		utils.LogWarn("DATABASE_URL is empty, starting without a document store", nil)
		return &DB{}
	}

	dsn := withDatabaseName(connStr, dbName)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		utils.LogError("failed to open document store, continuing degraded", err, nil)
		return &DB{}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		utils.LogError("failed to unwrap sql.DB, continuing degraded", err, nil)
		return &DB{}
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		utils.LogError("failed to ping document store, continuing degraded", err, nil)
		return &DB{}
	}

	utils.LogInfo("✅ Document store connected", nil)
	return &DB{GORM: gormDB}
}

// Available reports whether a live connection was established at boot.
func (db *DB) Available() bool {
	return db != nil && db.GORM != nil
}

func (db *DB) Close() error {
	if !db.Available() {
		return nil
	}
	sqlDB, err := db.GORM.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withDatabaseName appends dbName when the connection URL carries no
// database path of its own.
func withDatabaseName(connStr, dbName string) string {
	if dbName == "" {
		return connStr
	}
	u, err := url.Parse(connStr)
	if err != nil {
		return connStr
	}
	if strings.Trim(u.Path, "/") != "" {
		return connStr
	}
	u.Path = "/" + dbName
	return u.String()
}
