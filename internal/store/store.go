// Package store persists user records and their relationship sets in
// Postgres via gorm. Reads and writes are single independent round-trips; no
// multi-record transaction wraps the dual updates the service layer performs,
// so concurrent writers are last-write-wins.
package store

import (
	"context"
	"errors"

	"moodlink/backend/internal/domain"
	"moodlink/backend/internal/models"

	"gorm.io/gorm"
)

// GormStore implements the service.UserStore interface.
type GormStore struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindByID loads a user with both relationship sets. Credential material is
// dropped in the projection and never leaves this package.
func (s *GormStore) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Friends").
		Preload("FriendRequests").
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&user), nil
}

// Search returns users whose username contains the query, case-insensitively.
func (s *GormStore) Search(ctx context.Context, query string) ([]domain.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("username ILIKE ?", "%"+query+"%").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *toDomain(&users[i]))
	}
	return out, nil
}

// Save replaces the stored friends and friendRequests sets of a single record
// with the ones on the given projection. Other fields are untouched.
func (s *GormStore) Save(ctx context.Context, user *domain.User) error {
	model := models.User{Model: gorm.Model{ID: user.ID}}

	friends := refsFromIDs(user.FriendIDs)
	if err := s.db.WithContext(ctx).Model(&model).Association("Friends").Replace(friends); err != nil {
		return err
	}

	requests := refsFromIDs(user.FriendRequestIDs)
	return s.db.WithContext(ctx).Model(&model).Association("FriendRequests").Replace(requests)
}

// Summaries resolves a set of user IDs to id/username pairs in the store's
// natural return order.
func (s *GormStore) Summaries(ctx context.Context, ids []uint) ([]domain.Summary, error) {
	if len(ids) == 0 {
		return []domain.Summary{}, nil
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Select("id", "username").
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Summary, 0, len(users))
	for _, u := range users {
		out = append(out, domain.Summary{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

// Candidates returns every user outside the excluded set with their friends
// loaded, for recommendation ranking.
func (s *GormStore) Candidates(ctx context.Context, exclude []uint) ([]domain.User, error) {
	var users []models.User
	query := s.db.WithContext(ctx).Preload("Friends")
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *toDomain(&users[i]))
	}
	return out, nil
}

func toDomain(u *models.User) *domain.User {
	friendIDs := make([]uint, 0, len(u.Friends))
	for _, f := range u.Friends {
		friendIDs = append(friendIDs, f.ID)
	}
	requestIDs := make([]uint, 0, len(u.FriendRequests))
	for _, r := range u.FriendRequests {
		requestIDs = append(requestIDs, r.ID)
	}
	return &domain.User{
		ID:               u.ID,
		Username:         u.Username,
		Mood:             u.Mood,
		Interests:        u.Interests,
		FriendIDs:        friendIDs,
		FriendRequestIDs: requestIDs,
	}
}

func refsFromIDs(ids []uint) []*models.User {
	refs := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, &models.User{Model: gorm.Model{ID: id}})
	}
	return refs
}
