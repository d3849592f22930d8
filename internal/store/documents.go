package store

import (
	"sort"
	"strings"
	"time"

	"github.com/medconnect/backend/internal/models"
)

// GetDocuments filters by sharing relationship or file type, then by a
// filename substring. "shared-by-me" keeps documents the viewer owns that
// have at least one grant; "shared-with-me" keeps documents granted to the
// viewer; any other non-"all" filter is matched against the file type,
// case-insensitively.
func (s *Store) GetDocuments(filter, searchTerm string, viewerID int) []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	documents := make([]models.Document, 0, len(s.documents))
	for _, document := range s.documents {
		documents = append(documents, document)
	}
	sort.Slice(documents, func(i, j int) bool { return documents[i].ID < documents[j].ID })

	switch {
	case filter == "shared-by-me":
		sharedIDs := make(map[int]struct{})
		for _, share := range s.documentShares {
			if document, ok := s.documents[share.DocumentID]; ok && document.OwnerID == viewerID {
				sharedIDs[share.DocumentID] = struct{}{}
			}
		}
		documents = filterDocuments(documents, func(d models.Document) bool {
			_, ok := sharedIDs[d.ID]
			return ok
		})
	case filter == "shared-with-me":
		sharedIDs := make(map[int]struct{})
		for _, share := range s.documentShares {
			if share.UserID == viewerID {
				sharedIDs[share.DocumentID] = struct{}{}
			}
		}
		documents = filterDocuments(documents, func(d models.Document) bool {
			_, ok := sharedIDs[d.ID]
			return ok
		})
	case filter != "" && filter != "all":
		documents = filterDocuments(documents, func(d models.Document) bool {
			return strings.EqualFold(string(d.FileType), filter)
		})
	}

	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		documents = filterDocuments(documents, func(d models.Document) bool {
			return strings.Contains(strings.ToLower(d.Filename), term)
		})
	}

	return documents
}

func filterDocuments(documents []models.Document, keep func(models.Document) bool) []models.Document {
	filtered := documents[:0:0]
	for _, document := range documents {
		if keep(document) {
			filtered = append(filtered, document)
		}
	}
	return filtered
}

func (s *Store) GetDocument(id int) (models.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	document, ok := s.documents[id]
	return document, ok
}

func (s *Store) CreateDocument(document models.Document) models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	document.ID = s.nextDocumentID
	s.nextDocumentID++
	now := time.Now()
	if document.CreatedAt.IsZero() {
		document.CreatedAt = now
	}
	if document.UpdatedAt.IsZero() {
		document.UpdatedAt = now
	}
	s.documents[document.ID] = document
	return document
}

// ShareDocument grants the document to each user, skipping pairs that
// already hold a grant.
func (s *Store) ShareDocument(documentID int, userIDs []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, userID := range userIDs {
		alreadyShared := false
		for _, share := range s.documentShares {
			if share.DocumentID == documentID && share.UserID == userID {
				alreadyShared = true
				break
			}
		}
		if alreadyShared {
			continue
		}

		share := models.DocumentSharing{
			ID:         s.nextDocumentShareID,
			DocumentID: documentID,
			UserID:     userID,
			CreatedAt:  time.Now(),
		}
		s.nextDocumentShareID++
		s.documentShares[share.ID] = share
	}
}

func (s *Store) GetDocumentSharedUsers(documentID int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, share := range s.documentShares {
		if share.DocumentID != documentID {
			continue
		}
		if user, ok := s.users[share.UserID]; ok {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
