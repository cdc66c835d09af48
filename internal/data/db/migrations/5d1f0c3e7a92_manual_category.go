package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// manuals.category_id as added by this revision; only used to name the
// column for the migrator.
type categorizedManual struct {
	ID         int `gorm:"primaryKey"`
	CategoryID int `gorm:"column:category_id"`
}

func (categorizedManual) TableName() string { return "manuals" }

// manuals as it stood before this revision, built under a scratch name while
// sqlite rebuilds the table.
type uncategorizedManual struct {
	ID      int          `gorm:"primaryKey;index:ix_manuals_id"`
	Title   string       `gorm:"column:title;size:200;not null"`
	FileURL string       `gorm:"column:file_url;not null"`
	GroupID int          `gorm:"column:group_id;not null"`
	Group   initialGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (uncategorizedManual) TableName() string { return "manuals__rebuild" }

func addManualCategory() *Revision {
	return &Revision{
		ID:      "5d1f0c3e7a92",
		Parent:  "ac9cd4f97c8d",
		Message: "add manual category",
		Up: func(tx *gorm.DB) error {
			stmts := []string{
				`ALTER TABLE manuals ADD COLUMN category_id INTEGER REFERENCES categories(id) ON DELETE CASCADE`,
				`UPDATE manuals SET category_id = (SELECT groups.category_id FROM groups WHERE groups.id = manuals.group_id)`,
			}
			// sqlite cannot tighten a column in place; the application
			// always writes it.
			if tx.Dialector.Name() == "postgres" {
				stmts = append(stmts, `ALTER TABLE manuals ALTER COLUMN category_id SET NOT NULL`)
			}
			stmts = append(stmts, `CREATE INDEX ix_manuals_category_id ON manuals (category_id)`)
			return execAll(tx, stmts...)
		},
		Down: func(tx *gorm.DB) error {
			if err := tx.Exec(`DROP INDEX IF EXISTS ix_manuals_category_id`).Error; err != nil {
				return err
			}
			var err error
			if tx.Dialector.Name() == "sqlite" {
				err = rebuildManualsWithoutCategory(tx)
			} else {
				err = tx.Migrator().DropColumn(&categorizedManual{}, "CategoryID")
			}
			if err != nil {
				return err
			}
			if tx.Migrator().HasColumn(&categorizedManual{}, "CategoryID") {
				return fmt.Errorf("manuals.category_id still present after drop")
			}
			return nil
		},
	}
}

// rebuildManualsWithoutCategory copies manuals into a table without
// category_id. sqlite refuses DROP COLUMN on a column carrying a foreign key.
// No table references manuals, so it can be dropped with foreign keys on.
func rebuildManualsWithoutCategory(tx *gorm.DB) error {
	if err := tx.Exec(`DROP INDEX IF EXISTS ix_manuals_id`).Error; err != nil {
		return err
	}
	if err := tx.Migrator().CreateTable(&uncategorizedManual{}); err != nil {
		return err
	}
	return execAll(tx,
		`INSERT INTO manuals__rebuild (id, title, file_url, group_id) SELECT id, title, file_url, group_id FROM manuals`,
		`DROP TABLE manuals`,
		`ALTER TABLE manuals__rebuild RENAME TO manuals`,
	)
}

func execAll(tx *gorm.DB, stmts ...string) error {
	for _, s := range stmts {
		if err := tx.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}
