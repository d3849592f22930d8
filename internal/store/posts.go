package store

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/medconnect/backend/internal/models"
)

// GetPosts applies filters in a fixed order, each independently optional:
// the "saved" filter restricts to posts the viewer bookmarked, categoryID
// (unless "all") restricts by category, and searchTerm substring-matches
// title or content case-insensitively. An unparsable categoryID matches
// nothing.
func (s *Store) GetPosts(filter, searchTerm, categoryID string, viewerID int) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	if filter == "saved" {
		savedIDs := make(map[int]struct{})
		for _, saved := range s.savedPosts {
			if saved.UserID == viewerID {
				savedIDs[saved.PostID] = struct{}{}
			}
		}
		posts = filterPosts(posts, func(p models.Post) bool {
			_, ok := savedIDs[p.ID]
			return ok
		})
	}

	if categoryID != "" && categoryID != "all" {
		id, err := strconv.Atoi(categoryID)
		posts = filterPosts(posts, func(p models.Post) bool {
			return err == nil && p.CategoryID == id
		})
	}

	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		posts = filterPosts(posts, func(p models.Post) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Content), term)
		})
	}

	return posts
}

func filterPosts(posts []models.Post, keep func(models.Post) bool) []models.Post {
	filtered := posts[:0:0]
	for _, post := range posts {
		if keep(post) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func (s *Store) GetPost(id int) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	return post, ok
}

func (s *Store) CreatePost(post models.Post) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.nextPostID
	s.nextPostID++
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = now
	}
	s.posts[post.ID] = post
	return post
}

// SavePost toggles the bookmark relation: saving inserts when absent,
// unsaving deletes when present, anything else is a no-op. At most one
// SavedPost record exists per (post, user) pair.
func (s *Store) SavePost(postID, userID int, saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existingID := 0
	for id, record := range s.savedPosts {
		if record.PostID == postID && record.UserID == userID {
			existingID = id
			break
		}
	}

	switch {
	case saved && existingID == 0:
		record := models.SavedPost{ID: s.nextSavedPostID, PostID: postID, UserID: userID}
		s.nextSavedPostID++
		s.savedPosts[record.ID] = record
	case !saved && existingID != 0:
		delete(s.savedPosts, existingID)
	}
}

func (s *Store) IsPostSaved(postID, userID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.savedPosts {
		if record.PostID == postID && record.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Store) GetPostParticipants(postID int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, participant := range s.participants {
		if participant.PostID != postID {
			continue
		}
		if user, ok := s.users[participant.UserID]; ok {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Store) AddPostParticipant(postID, userID int) models.PostParticipant {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant := models.PostParticipant{ID: s.nextParticipantID, PostID: postID, UserID: userID}
	s.nextParticipantID++
	s.participants[participant.ID] = participant
	return participant
}

func (s *Store) GetCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

func (s *Store) GetCategory(id int) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	return category, ok
}

func (s *Store) CreateCategory(category models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[category.ID] = category
	return category
}
