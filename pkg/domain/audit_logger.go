package domain

// AuditLogger records mutations. Services depend on this interface, not on a store.
type AuditLogger interface {
	Log(action string, actor string, metadata map[string]any) error
}

// AuditRepository persists the audit trail.
type AuditRepository interface {
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
}

// NopAuditLogger discards every event.
type NopAuditLogger struct{}

func (NopAuditLogger) Log(string, string, map[string]any) error { return nil }
