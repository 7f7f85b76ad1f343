// Package bundle writes the title catalogues to a SQLite file so that
// display tools outside this module can look up labels and ordinals.
package bundle

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/spicery/titles/pkg/catalogue"
	"github.com/spicery/titles/pkg/render"
)

// Bundle is an open catalogue bundle.
type Bundle struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the bundle at dbPath. A nil log falls
// back to slog.Default.
func Open(dbPath string, log *slog.Logger) (*Bundle, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Bundle{db: db, logger: log}, nil
}

// Migrate performs database migrations.
func (b *Bundle) Migrate() error {
	return Migrate(b.db)
}

// CheckMigration checks if the database schema is up to date.
func (b *Bundle) CheckMigration() (bool, error) {
	return CheckMigration(b.db)
}

// WriteCatalogues stores every catalogue, replacing rows that already
// exist. Display labels come from options.
func (b *Bundle) WriteCatalogues(options *render.PrintOptions) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		for _, kind := range catalogue.Kinds() {
			descriptor, err := catalogue.Describe(kind)
			if err != nil {
				return err
			}
			if err := b.writeDescriptor(tx, descriptor, options); err != nil {
				return fmt.Errorf("failed to write %s catalogue: %w", kind, err)
			}
			b.logger.Debug("wrote catalogue",
				slog.String("kind", string(kind)),
				slog.Int("entries", len(descriptor.Entries)))
		}
		return nil
	})
}

func (b *Bundle) writeDescriptor(tx *gorm.DB, descriptor catalogue.Descriptor, options *render.PrintOptions) error {
	kindRow := CatalogueKind{Name: string(descriptor.Kind)}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&kindRow).Error; err != nil {
		return err
	}
	for _, entry := range descriptor.Entries {
		row := CatalogueEntry{
			Kind:         string(descriptor.Kind),
			Label:        entry.Label,
			Ordinal:      entry.Ordinal,
			DisplayLabel: options.DisplayLabel(entry.Label),
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Entries returns the stored entries of kind in ordinal order.
func (b *Bundle) Entries(kind catalogue.Kind) ([]CatalogueEntry, error) {
	var entries []CatalogueEntry
	err := b.db.Where("kind = ?", string(kind)).Order("ordinal").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read %s entries: %w", kind, err)
	}
	return entries, nil
}

// Close releases the underlying connection.
func (b *Bundle) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
