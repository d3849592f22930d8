package store

import (
	"sort"

	"github.com/medconnect/backend/internal/models"
)

func (s *Store) GetProfile(userID int) (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findProfile(userID)
}

func (s *Store) findProfile(userID int) (models.Profile, bool) {
	for _, profile := range s.profiles {
		if profile.UserID == userID {
			return profile, true
		}
	}
	return models.Profile{}, false
}

func (s *Store) CreateProfile(profile models.Profile) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.ID = s.nextProfileID
	s.nextProfileID++
	s.profiles[profile.ID] = profile
	return profile
}

// ProfileUpdate carries the fields of a partial profile update; nil fields
// are left untouched.
type ProfileUpdate struct {
	ProfileCompletion *int
	RemainingItems    *int
	NetworkGrowth     *int
	NetworkGrowthDays *int
}

func (s *Store) UpdateProfile(userID int, update ProfileUpdate) (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.findProfile(userID)
	if !ok {
		return models.Profile{}, false
	}

	if update.ProfileCompletion != nil {
		profile.ProfileCompletion = *update.ProfileCompletion
	}
	if update.RemainingItems != nil {
		profile.RemainingItems = *update.RemainingItems
	}
	if update.NetworkGrowth != nil {
		profile.NetworkGrowth = *update.NetworkGrowth
	}
	if update.NetworkGrowthDays != nil {
		profile.NetworkGrowthDays = *update.NetworkGrowthDays
	}

	s.profiles[profile.ID] = profile
	return profile, true
}

func (s *Store) GetStats(userID int) []models.Stat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats []models.Stat
	for _, stat := range s.stats {
		if stat.UserID == userID {
			stats = append(stats, stat)
		}
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].ID < stats[j].ID })
	return stats
}

func (s *Store) CreateStat(stat models.Stat) models.Stat {
	s.mu.Lock()
	defer s.mu.Unlock()

	stat.ID = s.nextStatID
	s.nextStatID++
	s.stats[stat.ID] = stat
	return stat
}
