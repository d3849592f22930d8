package store

import (
	"sort"
	"time"

	"github.com/medconnect/backend/internal/models"
)

func (s *Store) GetEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events
}

func (s *Store) GetEvent(id int) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	return event, ok
}

func (s *Store) CreateEvent(event models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextEventID
	s.nextEventID++
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.events[event.ID] = event
	return event
}

func (s *Store) GetEventTypes() []models.EventType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	eventTypes := make([]models.EventType, 0, len(s.eventTypes))
	for _, eventType := range s.eventTypes {
		eventTypes = append(eventTypes, eventType)
	}
	sort.Slice(eventTypes, func(i, j int) bool { return eventTypes[i].ID < eventTypes[j].ID })
	return eventTypes
}

func (s *Store) GetEventType(id int) (models.EventType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	eventType, ok := s.eventTypes[id]
	return eventType, ok
}

func (s *Store) CreateEventType(eventType models.EventType) models.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()

	eventType.ID = s.nextEventTypeID
	s.nextEventTypeID++
	s.eventTypes[eventType.ID] = eventType
	return eventType
}
