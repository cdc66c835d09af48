package migrations

func removeManualCover() *Revision {
	return &Revision{
		ID:      "ac9cd4f97c8d",
		Parent:  "2ce5e439764d",
		Message: "remove cover",
		Up:      dropCoverColumn,
		Down:    addCoverColumn,
	}
}
