package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventCatalogFailed    EventType = "CatalogFailed"
	EventCourseCreated    EventType = "CourseCreated"
	EventSubmissionFailed EventType = "SubmissionFailed"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when a list fetch is committed to the catalog
type CatalogLoadedEvent struct {
	Query string
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogFailedEvent is emitted when the newest list fetch fails
type CatalogFailedEvent struct {
	Query string
	Err   error
}

func (e CatalogFailedEvent) Type() EventType { return EventCatalogFailed }

// CourseCreatedEvent is emitted when the remote catalog accepts a new course
type CourseCreatedEvent struct {
	Course Course
}

func (e CourseCreatedEvent) Type() EventType { return EventCourseCreated }

// SubmissionFailedEvent is emitted when a create request is rejected
type SubmissionFailedEvent struct {
	Draft CourseDraft
	Err   error
}

func (e SubmissionFailedEvent) Type() EventType { return EventSubmissionFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
