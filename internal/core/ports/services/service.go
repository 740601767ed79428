package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account      AccountSvcFacade
	CostCenter   CostCenterSvcFacade
	JournalEntry JournalEntrySvcFacade
	Draft        DraftSvcFacade
}

// EventTracker records product analytics events. Implementations must not block.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
