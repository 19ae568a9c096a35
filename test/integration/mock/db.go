package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a process-wide in-memory SQLite database shared by the API server
// under test and the scenario steps. The schema is migrated once from the
// model map; ClearDB truncates every table between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the shared test database, opening and migrating it on first
// use. models maps table names to their gorm model structs.
func NewDb(name string, models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = openDb(name, models)
	})
	return sharedDb
}

func openDb(name string, models map[string]any) *Db {
	// A single shared connection keeps the in-memory database alive and
	// visible to both the server goroutine and the test goroutine.
	conn, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	conn.SetMaxOpenConns(1)

	gormDb, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := gormDb.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return &Db{
		DbConn: gormDb,
		models: models,
	}
}

// ClearDB removes every row from every registered table, including
// soft-deleted ones, and resets autoincrement counters.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel returns the gorm model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
