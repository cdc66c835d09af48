package migrations

// All returns the schema history of the service. Order is irrelevant; the
// runner links revisions by parent.
func All() []*Revision {
	return []*Revision{
		initialMigration(),
		addManualCover(),
		removeManualCover(),
		addManualCategory(),
		createSpeedTables(),
	}
}
