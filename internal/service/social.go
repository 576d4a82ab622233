package service

import (
	"context"
	"sort"

	"moodlink/backend/internal/domain"
)

// maxRecommendations caps the number of friend suggestions returned.
const maxRecommendations = 5

// UserStore is the persistence surface the social operations need. Every call
// is an independent round-trip to the store; Save replaces the friends and
// friendRequests sets of a single record. The store offers no cross-record
// atomicity, so operations that save two records have a failure window between
// the two writes.
type UserStore interface {
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Summaries(ctx context.Context, ids []uint) ([]domain.Summary, error)
	Candidates(ctx context.Context, exclude []uint) ([]domain.User, error)
}

// Social implements the profile, search and friendship operations.
type Social struct {
	Store UserStore
}

func NewSocial(store UserStore) *Social {
	return &Social{Store: store}
}

// Profile returns the caller's own profile.
func (s *Social) Profile(ctx context.Context, userID uint) (domain.Profile, error) {
	user, err := s.Store.FindByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Username:  user.Username,
		Mood:      user.Mood,
		Interests: user.Interests,
	}, nil
}

// Search returns all users whose username matches the query case-insensitively
// as a substring.
func (s *Social) Search(ctx context.Context, query string) ([]domain.User, error) {
	return s.Store.Search(ctx, query)
}

// SendFriendRequest records a pending request from sender on the target's
// record. Only the target record is written. A request that is already pending
// fails with ErrDuplicateRequest; being friends already does not block a new
// request.
func (s *Social) SendFriendRequest(ctx context.Context, senderID, targetID uint) error {
	if _, err := s.Store.FindByID(ctx, senderID); err != nil {
		return err
	}

	target, err := s.Store.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if containsID(target.FriendRequestIDs, senderID) {
		return domain.ErrDuplicateRequest
	}

	target.FriendRequestIDs = append(target.FriendRequestIDs, senderID)
	return s.Store.Save(ctx, target)
}

// AcceptFriendRequest resolves a pending request into a symmetric friendship.
// The accepter's record is saved first, then the requester's; a failure after
// the first save leaves an asymmetric friendship behind.
func (s *Social) AcceptFriendRequest(ctx context.Context, accepterID, requesterID uint) error {
	accepter, err := s.Store.FindByID(ctx, accepterID)
	if err != nil {
		return err
	}

	requester, err := s.Store.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}

	if !containsID(accepter.FriendRequestIDs, requesterID) {
		return domain.ErrNoSuchRequest
	}

	accepter.FriendRequestIDs = removeID(accepter.FriendRequestIDs, requesterID)
	accepter.FriendIDs = append(accepter.FriendIDs, requesterID)
	requester.FriendIDs = append(requester.FriendIDs, accepterID)

	if err := s.Store.Save(ctx, accepter); err != nil {
		return err
	}
	return s.Store.Save(ctx, requester)
}

// RejectFriendRequest drops a pending request. The requester's record is not
// touched.
func (s *Social) RejectFriendRequest(ctx context.Context, rejecterID, requesterID uint) error {
	rejecter, err := s.Store.FindByID(ctx, rejecterID)
	if err != nil {
		return err
	}

	if !containsID(rejecter.FriendRequestIDs, requesterID) {
		return domain.ErrNoSuchRequest
	}

	rejecter.FriendRequestIDs = removeID(rejecter.FriendRequestIDs, requesterID)
	return s.Store.Save(ctx, rejecter)
}

// Unfriend removes each user from the other's friends set. Removing a
// non-friend is a silent no-op; both records are still saved.
func (s *Social) Unfriend(ctx context.Context, userID, friendID uint) error {
	user, err := s.Store.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	friend, err := s.Store.FindByID(ctx, friendID)
	if err != nil {
		return err
	}

	user.FriendIDs = removeID(user.FriendIDs, friendID)
	friend.FriendIDs = removeID(friend.FriendIDs, userID)

	if err := s.Store.Save(ctx, user); err != nil {
		return err
	}
	return s.Store.Save(ctx, friend)
}

// Friends resolves the user's friends set to display summaries.
func (s *Social) Friends(ctx context.Context, userID uint) ([]domain.Summary, error) {
	user, err := s.Store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Store.Summaries(ctx, user.FriendIDs)
}

// FriendRequests resolves the user's pending inbound requests to display
// summaries.
func (s *Social) FriendRequests(ctx context.Context, userID uint) ([]domain.Summary, error) {
	user, err := s.Store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Store.Summaries(ctx, user.FriendRequestIDs)
}

// Recommendations ranks every user who is neither the caller nor already a
// friend by the number of friends shared with the caller and returns the top
// candidates. Ties keep the store's return order.
func (s *Social) Recommendations(ctx context.Context, userID uint) ([]domain.Recommendation, error) {
	user, err := s.Store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := make([]uint, 0, len(user.FriendIDs)+1)
	exclude = append(exclude, user.ID)
	exclude = append(exclude, user.FriendIDs...)

	candidates, err := s.Store.Candidates(ctx, exclude)
	if err != nil {
		return nil, err
	}

	friendSet := make(map[uint]struct{}, len(user.FriendIDs))
	for _, id := range user.FriendIDs {
		friendSet[id] = struct{}{}
	}

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		mutual := 0
		for _, id := range cand.FriendIDs {
			if _, ok := friendSet[id]; ok {
				mutual++
			}
		}
		recs = append(recs, domain.Recommendation{
			Username:           cand.Username,
			MutualFriendsCount: mutual,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MutualFriendsCount > recs[j].MutualFriendsCount
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []uint, id uint) []uint {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
