package migrations

import "gorm.io/gorm"

func addManualCover() *Revision {
	return &Revision{
		ID:      "2ce5e439764d",
		Parent:  "b0296817b493",
		Message: "add manual cover",
		Up:      addCoverColumn,
		Down:    dropCoverColumn,
	}
}

// Existing rows get an empty cover; sqlite cannot add a NOT NULL column
// without a default.
func addCoverColumn(tx *gorm.DB) error {
	return tx.Exec(`ALTER TABLE manuals ADD COLUMN cover_image_url VARCHAR NOT NULL DEFAULT ''`).Error
}

func dropCoverColumn(tx *gorm.DB) error {
	return tx.Exec(`ALTER TABLE manuals DROP COLUMN cover_image_url`).Error
}
