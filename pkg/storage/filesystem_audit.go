package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

// FileAuditStore appends audit events as JSON lines under the workspace directory.
type FileAuditStore struct {
	ws *Workspace
	mu sync.Mutex
}

func NewFileAuditStore(ws *Workspace) *FileAuditStore {
	return &FileAuditStore{ws: ws}
}

func (s *FileAuditStore) RecordEvent(event domain.Event) error {
	path, err := s.ws.ResolvePath(EventsFile)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ws.Initialize(); err != nil {
		return err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

func (s *FileAuditStore) LoadEvents() ([]domain.Event, error) {
	path, err := s.ws.ResolvePath(EventsFile)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Event{}, nil
		}
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	events := []domain.Event{}
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var e domain.Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, e)
	}

	return events, nil
}

var _ domain.AuditRepository = (*FileAuditStore)(nil)
