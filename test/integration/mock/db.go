package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db holds the shared in-memory database used by the integration suite.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The models map is keyed by table name so steps can assert row counts.
func NewDb(models map[string]any) *Db {
	if db == nil {
		dbOnce.Do(
			func() {
				db = open(models)
			},
		)
	}

	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic("failed to enable foreign keys. err: " + err.Error())
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset empties every migrated table. Transactions are deleted before income
// sources so the foreign key never blocks the wipe.
func (d *Db) Reset() error {
	order := []string{"transactions", "income_sources"}
	seen := map[string]bool{}

	for _, table := range order {
		if model, ok := d.models[table]; ok {
			seen[table] = true
			if err := d.wipe(model); err != nil {
				return err
			}
		}
	}
	for table, model := range d.models {
		if seen[table] {
			continue
		}
		if err := d.wipe(model); err != nil {
			return err
		}
	}

	return nil
}

func (d *Db) wipe(model any) error {
	err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
	if err != nil {
		return fmt.Errorf("failed to wipe table for model %T: %w", model, err)
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
