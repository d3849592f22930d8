package store

import (
	"sort"
	"strings"

	"github.com/medconnect/backend/internal/models"
	"github.com/medconnect/backend/pkg/utils"
)

func (s *Store) GetUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Store) GetUsersBySpecialty(specialty string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, user := range s.users {
		if user.Specialty == specialty {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUserByUsername(username)
}

func (s *Store) findUserByUsername(username string) (models.User, bool) {
	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// CreateUser hashes the plaintext password before storing and returns the
// stored record, hash included; the hash never serializes to clients.
// Username uniqueness is checked under the write lock.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.findUserByUsername(user.Username); taken {
		return models.User{}, ErrUsernameTaken
	}

	user.ID = s.nextUserID
	s.nextUserID++
	user.Password = hash
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) VerifyPassword(password, hash string) bool {
	return utils.CheckPassword(password, hash)
}

// GetUserColleagues returns every other user flagged as connected.
func (s *Store) GetUserColleagues(userID int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, user := range s.users {
		if user.ID != userID && user.IsConnected {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// GetUserSuggestions returns every other user not yet connected.
func (s *Store) GetUserSuggestions(userID int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []models.User
	for _, user := range s.users {
		if user.ID != userID && !user.IsConnected {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Store) GetSpecialties() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var specialties []string
	for _, user := range s.users {
		if _, ok := seen[user.Specialty]; !ok {
			seen[user.Specialty] = struct{}{}
			specialties = append(specialties, user.Specialty)
		}
	}
	sort.Strings(specialties)
	return specialties
}

// SearchUsers matches a lowercased substring against name, specialty or
// organization.
func SearchUsers(users []models.User, searchTerm string) []models.User {
	term := strings.ToLower(searchTerm)
	var matched []models.User
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), term) ||
			strings.Contains(strings.ToLower(user.Specialty), term) ||
			strings.Contains(strings.ToLower(user.Organization), term) {
			matched = append(matched, user)
		}
	}
	return matched
}
