package store

import (
	"sort"
	"time"

	"github.com/medconnect/backend/internal/models"
)

// CreateConnection always creates the request as pending.
func (s *Store) CreateConnection(userID, connectedUserID int) models.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()

	connection := models.Connection{
		ID:              s.nextConnectionID,
		UserID:          userID,
		ConnectedUserID: connectedUserID,
		Status:          models.ConnectionStatusPending,
		CreatedAt:       time.Now(),
	}
	s.nextConnectionID++
	s.connections[connection.ID] = connection
	return connection
}

// GetConnectionRequests returns the users behind pending requests that
// target userID.
func (s *Store) GetConnectionRequests(userID int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0)
	for _, connection := range s.connections {
		if connection.ConnectedUserID != userID || connection.Status != models.ConnectionStatusPending {
			continue
		}
		if user, ok := s.users[connection.UserID]; ok {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// AcceptConnection moves a pending request to accepted. Only the recipient
// may accept; settled or unknown requests report ErrConnectionNotFound.
func (s *Store) AcceptConnection(id, recipientID int) (models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	connection, ok := s.connections[id]
	if !ok || connection.Status != models.ConnectionStatusPending {
		return models.Connection{}, ErrConnectionNotFound
	}
	if connection.ConnectedUserID != recipientID {
		return models.Connection{}, ErrNotRecipient
	}

	connection.Status = models.ConnectionStatusAccepted
	s.connections[id] = connection
	return connection, nil
}

// IgnoreConnection removes a pending request, recipient-gated like accept.
func (s *Store) IgnoreConnection(id, recipientID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	connection, ok := s.connections[id]
	if !ok || connection.Status != models.ConnectionStatusPending {
		return ErrConnectionNotFound
	}
	if connection.ConnectedUserID != recipientID {
		return ErrNotRecipient
	}

	delete(s.connections, id)
	return nil
}
