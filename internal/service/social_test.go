package service

import (
	"context"
	"testing"

	"moodlink/backend/internal/domain"

	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory UserStore with a deterministic return order.
type fakeStore struct {
	users map[uint]*domain.User
	order []uint
}

func newFakeStore(users ...*domain.User) *fakeStore {
	s := &fakeStore{users: make(map[uint]*domain.User)}
	for _, u := range users {
		s.users[u.ID] = u
		s.order = append(s.order, u.ID)
	}
	return s
}

func (s *fakeStore) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	cp.FriendIDs = append([]uint(nil), u.FriendIDs...)
	cp.FriendRequestIDs = append([]uint(nil), u.FriendRequestIDs...)
	return &cp, nil
}

func (s *fakeStore) Search(_ context.Context, _ string) ([]domain.User, error) {
	var out []domain.User
	for _, id := range s.order {
		out = append(out, *s.users[id])
	}
	return out, nil
}

func (s *fakeStore) Save(_ context.Context, user *domain.User) error {
	stored, ok := s.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FriendIDs = append([]uint(nil), user.FriendIDs...)
	stored.FriendRequestIDs = append([]uint(nil), user.FriendRequestIDs...)
	return nil
}

func (s *fakeStore) Summaries(_ context.Context, ids []uint) ([]domain.Summary, error) {
	var out []domain.Summary
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, domain.Summary{ID: u.ID, Username: u.Username})
		}
	}
	return out, nil
}

func (s *fakeStore) Candidates(_ context.Context, exclude []uint) ([]domain.User, error) {
	excluded := make(map[uint]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	var out []domain.User
	for _, id := range s.order {
		if _, ok := excluded[id]; ok {
			continue
		}
		out = append(out, *s.users[id])
	}
	return out, nil
}

func user(id uint, username string) *domain.User {
	return &domain.User{ID: id, Username: username}
}

func TestSendFriendRequest(t *testing.T) {
	store := newFakeStore(user(1, "alice"), user(2, "bob"))
	svc := NewSocial(store)
	ctx := context.Background()

	require.NoError(t, svc.SendFriendRequest(ctx, 1, 2))
	require.Equal(t, []uint{1}, store.users[2].FriendRequestIDs)
	require.Empty(t, store.users[1].FriendRequestIDs, "sender record must not change")
}

func TestSendFriendRequest_Duplicate(t *testing.T) {
	store := newFakeStore(user(1, "alice"), user(2, "bob"))
	svc := NewSocial(store)
	ctx := context.Background()

	require.NoError(t, svc.SendFriendRequest(ctx, 1, 2))
	err := svc.SendFriendRequest(ctx, 1, 2)
	require.ErrorIs(t, err, domain.ErrDuplicateRequest)
	require.Equal(t, []uint{1}, store.users[2].FriendRequestIDs)
}

func TestSendFriendRequest_TargetMissing(t *testing.T) {
	store := newFakeStore(user(1, "alice"))
	svc := NewSocial(store)

	err := svc.SendFriendRequest(context.Background(), 1, 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAcceptFriendRequest(t *testing.T) {
	store := newFakeStore(user(1, "alice"), user(2, "bob"))
	svc := NewSocial(store)
	ctx := context.Background()

	require.NoError(t, svc.SendFriendRequest(ctx, 1, 2))
	require.NoError(t, svc.AcceptFriendRequest(ctx, 2, 1))

	require.Equal(t, []uint{1}, store.users[2].FriendIDs)
	require.Equal(t, []uint{2}, store.users[1].FriendIDs)
	require.Empty(t, store.users[2].FriendRequestIDs)
}

func TestAcceptFriendRequest_NoSuchRequest(t *testing.T) {
	store := newFakeStore(user(1, "alice"), user(2, "bob"))
	svc := NewSocial(store)

	err := svc.AcceptFriendRequest(context.Background(), 2, 1)
	require.ErrorIs(t, err, domain.ErrNoSuchRequest)
	require.Empty(t, store.users[1].FriendIDs)
	require.Empty(t, store.users[2].FriendIDs)
}

func TestRejectFriendRequest(t *testing.T) {
	store := newFakeStore(user(1, "alice"), user(2, "bob"))
	svc := NewSocial(store)
	ctx := context.Background()

	require.NoError(t, svc.SendFriendRequest(ctx, 1, 2))
	require.NoError(t, svc.RejectFriendRequest(ctx, 2, 1))

	require.Empty(t, store.users[2].FriendRequestIDs)
	require.Empty(t, store.users[1].FriendIDs)
	require.Empty(t, store.users[2].FriendIDs)
}

func TestRejectFriendRequest_NoSuchRequest(t *testing.T) {
	store := newFakeStore(user(1, "alice"), user(2, "bob"))
	svc := NewSocial(store)

	err := svc.RejectFriendRequest(context.Background(), 2, 1)
	require.ErrorIs(t, err, domain.ErrNoSuchRequest)
}

func TestUnfriend(t *testing.T) {
	a := user(1, "alice")
	b := user(2, "bob")
	a.FriendIDs = []uint{2}
	b.FriendIDs = []uint{1}
	store := newFakeStore(a, b)
	svc := NewSocial(store)
	ctx := context.Background()

	require.NoError(t, svc.Unfriend(ctx, 1, 2))
	require.Empty(t, store.users[1].FriendIDs)
	require.Empty(t, store.users[2].FriendIDs)

	// Repeating the call is a no-op with the same post-condition.
	require.NoError(t, svc.Unfriend(ctx, 1, 2))
	require.Empty(t, store.users[1].FriendIDs)
	require.Empty(t, store.users[2].FriendIDs)
}

func TestUnfriend_FriendMissing(t *testing.T) {
	store := newFakeStore(user(1, "alice"))
	svc := NewSocial(store)

	err := svc.Unfriend(context.Background(), 1, 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFriendsAndRequests(t *testing.T) {
	a := user(1, "alice")
	a.FriendIDs = []uint{2}
	a.FriendRequestIDs = []uint{3}
	store := newFakeStore(a, user(2, "bob"), user(3, "carol"))
	svc := NewSocial(store)
	ctx := context.Background()

	friends, err := svc.Friends(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.Summary{{ID: 2, Username: "bob"}}, friends)

	requests, err := svc.FriendRequests(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []domain.Summary{{ID: 3, Username: "carol"}}, requests)
}

func TestProfile(t *testing.T) {
	a := user(1, "alice")
	a.Mood = "curious"
	a.Interests = []string{"chess", "hiking"}
	store := newFakeStore(a)
	svc := NewSocial(store)

	profile, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, domain.Profile{
		Username:  "alice",
		Mood:      "curious",
		Interests: []string{"chess", "hiking"},
	}, profile)
}

func TestProfile_RecordGone(t *testing.T) {
	store := newFakeStore()
	svc := NewSocial(store)

	_, err := svc.Profile(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommendations(t *testing.T) {
	// alice is friends with bob and carol. dave shares both, erin shares one,
	// frank shares none.
	alice := user(1, "alice")
	alice.FriendIDs = []uint{2, 3}
	bob := user(2, "bob")
	bob.FriendIDs = []uint{1}
	carol := user(3, "carol")
	carol.FriendIDs = []uint{1}
	dave := user(4, "dave")
	dave.FriendIDs = []uint{2, 3}
	erin := user(5, "erin")
	erin.FriendIDs = []uint{2}
	frank := user(6, "frank")

	store := newFakeStore(alice, bob, carol, dave, erin, frank)
	svc := NewSocial(store)

	recs, err := svc.Recommendations(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, []domain.Recommendation{
		{Username: "dave", MutualFriendsCount: 2},
		{Username: "erin", MutualFriendsCount: 1},
		{Username: "frank", MutualFriendsCount: 0},
	}, recs)
}

func TestRecommendations_ExcludesSelfAndFriends(t *testing.T) {
	alice := user(1, "alice")
	alice.FriendIDs = []uint{2}
	bob := user(2, "bob")
	bob.FriendIDs = []uint{1}
	store := newFakeStore(alice, bob, user(3, "carol"))
	svc := NewSocial(store)

	recs, err := svc.Recommendations(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	require.Equal(t, "carol", recs[0].Username)
}

func TestRecommendations_LimitedToFive(t *testing.T) {
	users := []*domain.User{user(1, "alice")}
	for i := uint(2); i <= 10; i++ {
		users = append(users, user(i, "user"))
	}
	store := newFakeStore(users...)
	svc := NewSocial(store)

	recs, err := svc.Recommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 5)
}

func TestRecommendations_SortedDescending(t *testing.T) {
	alice := user(1, "alice")
	alice.FriendIDs = []uint{2, 3, 4}
	store := newFakeStore(
		alice,
		user(2, "bob"),
		user(3, "carol"),
		user(4, "dave"),
		&domain.User{ID: 5, Username: "erin", FriendIDs: []uint{2}},
		&domain.User{ID: 6, Username: "frank", FriendIDs: []uint{2, 3, 4}},
		&domain.User{ID: 7, Username: "grace", FriendIDs: []uint{2, 3}},
	)
	svc := NewSocial(store)

	recs, err := svc.Recommendations(context.Background(), 1)
	require.NoError(t, err)

	for i := 1; i < len(recs); i++ {
		require.GreaterOrEqual(t, recs[i-1].MutualFriendsCount, recs[i].MutualFriendsCount)
	}
	require.Equal(t, "frank", recs[0].Username)
	require.Equal(t, "grace", recs[1].Username)
}
