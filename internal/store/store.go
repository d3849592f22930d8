package store

import (
	"errors"
	"sync"

	"github.com/medconnect/backend/internal/models"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrNotRecipient       = errors.New("only the recipient can act on a connection request")
)

// Store is the sole source of truth for all entities. Each entity type has
// its own map and an independent monotonic id counter, so ids are unique
// within a type but collide across types; no code compares ids across types.
//
// Fiber runs handlers concurrently, so every method takes the store lock.
// All list methods return id-ordered copies, never aliases of stored values.
type Store struct {
	mu sync.RWMutex

	users          map[int]models.User
	profiles       map[int]models.Profile
	posts          map[int]models.Post
	categories     map[int]models.Category
	documents      map[int]models.Document
	events         map[int]models.Event
	eventTypes     map[int]models.EventType
	documentShares map[int]models.DocumentSharing
	participants   map[int]models.PostParticipant
	savedPosts     map[int]models.SavedPost
	connections    map[int]models.Connection
	stats          map[int]models.Stat

	nextUserID          int
	nextProfileID       int
	nextPostID          int
	nextCategoryID      int
	nextDocumentID      int
	nextEventID         int
	nextEventTypeID     int
	nextDocumentShareID int
	nextParticipantID   int
	nextSavedPostID     int
	nextConnectionID    int
	nextStatID          int
}

// New returns an empty store. Call Seed to load the demo dataset.
func New() *Store {
	return &Store{
		users:          make(map[int]models.User),
		profiles:       make(map[int]models.Profile),
		posts:          make(map[int]models.Post),
		categories:     make(map[int]models.Category),
		documents:      make(map[int]models.Document),
		events:         make(map[int]models.Event),
		eventTypes:     make(map[int]models.EventType),
		documentShares: make(map[int]models.DocumentSharing),
		participants:   make(map[int]models.PostParticipant),
		savedPosts:     make(map[int]models.SavedPost),
		connections:    make(map[int]models.Connection),
		stats:          make(map[int]models.Stat),

		nextUserID:          1,
		nextProfileID:       1,
		nextPostID:          1,
		nextCategoryID:      1,
		nextDocumentID:      1,
		nextEventID:         1,
		nextEventTypeID:     1,
		nextDocumentShareID: 1,
		nextParticipantID:   1,
		nextSavedPostID:     1,
		nextConnectionID:    1,
		nextStatID:          1,
	}
}
