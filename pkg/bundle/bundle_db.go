package bundle

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CatalogueKind is one catalogue present in the bundle.
type CatalogueKind struct {
	Name string `gorm:"primaryKey"`
}

// CatalogueEntry is one value of a catalogue with its display label.
type CatalogueEntry struct {
	Kind         string `gorm:"primaryKey;index"`
	Label        string `gorm:"primaryKey"`
	Ordinal      int    `gorm:"index"`
	DisplayLabel string
}

// getMigrations returns the list of migrations for the bundle database.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202610180001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&CatalogueKind{},
					&CatalogueEntry{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&CatalogueEntry{},
					&CatalogueKind{},
				)
			},
		},
	}
}

// Migrate performs database migrations using gormigrate.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, getMigrations())
	return m.Migrate()
}

// CheckMigration reports whether the last known migration has been applied.
// A missing migrations table means a fresh database and is not an error.
func CheckMigration(db *gorm.DB) (bool, error) {
	var lastMigration string
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Table(gormigrate.DefaultOptions.TableName).
		Select("id").
		Order("id DESC").
		Limit(1).
		Scan(&lastMigration).Error

	if err != nil {
		return false, nil
	}

	migrations := getMigrations()
	if len(migrations) == 0 {
		return true, nil
	}

	expectedLastID := migrations[len(migrations)-1].ID
	return lastMigration == expectedLastID, nil
}
