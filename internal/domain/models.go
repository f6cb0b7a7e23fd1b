package domain

// Course represents a course record in the catalog
type Course struct {
	ID            int64 // 0 until the record has been persisted
	Title         string
	Category      string
	DurationHours int
}

// Persisted reports whether the course carries a server-assigned identity
func (c Course) Persisted() bool {
	return c.ID > 0
}

// CourseDraft is the user-entered shape of a course before creation
type CourseDraft struct {
	Title         string
	Category      string
	DurationHours int
}

// Course converts the draft into an unpersisted course
func (d CourseDraft) Course() Course {
	return Course{
		Title:         d.Title,
		Category:      d.Category,
		DurationHours: d.DurationHours,
	}
}
