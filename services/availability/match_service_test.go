// File: services/availability/match_service_test.go
package availability

import (
	"context"
	"testing"

	"github.com/brenonevs/prs-timemesh/models"

	"github.com/stretchr/testify/assert"
)

// fakeUserRepo resolves usernames from a fixed map.
type fakeUserRepo struct {
	names map[string]string
}

func (r *fakeUserRepo) Create(context.Context, models.User) error { return nil }
func (r *fakeUserRepo) SetTokenHash(context.Context, string, string) error { return nil }
func (r *fakeUserRepo) GetByID(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Usernames(_ context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

// fakeGroupResolver serves a fixed member list and records whether it was hit.
type fakeGroupResolver struct {
	members []string
	member  bool
	called  bool
}

func (r *fakeGroupResolver) ResolveMembers(context.Context, string, string) (bool, []string, error) {
	r.called = true
	return r.member, r.members, nil
}

func seedDay(t *testing.T, repo *fakeSlotRepo, userID, date string, slots ...models.AvailabilitySlot) {
	t.Helper()
	_, err := repo.ReplaceDaySlots(context.Background(), userID, date, slots)
	assert.NoError(t, err)
}

func TestMatchUsers(t *testing.T) {
	ctx := context.Background()
	names := map[string]string{"a": "alice", "b": "bob"}

	t.Run("Finds The Common Window", func(t *testing.T) {
		repo := newFakeSlotRepo()
		seedDay(t, repo, "a", "2026-09-01", userSlot("a", 540, 660, "Work", true))
		seedDay(t, repo, "b", "2026-09-01", userSlot("b", 600, 720, "Study", true))
		svc := &DefaultMatchService{Slots: repo, Users: &fakeUserRepo{names: names}}

		windows, err := svc.MatchUsers(ctx, []string{"a", "b"}, "2026-09-01")

		assert.NoError(t, err)
		assert.Len(t, windows, 1)
		assert.Equal(t, "10:00 - 11:00", windows[0].Label)
		assert.Equal(t, "alice", windows[0].Users[0].Username)
	})

	t.Run("Duplicate IDs Count Once", func(t *testing.T) {
		repo := newFakeSlotRepo()
		seedDay(t, repo, "a", "2026-09-01", userSlot("a", 540, 660, "Work", true))
		svc := &DefaultMatchService{Slots: repo, Users: &fakeUserRepo{names: names}}

		windows, err := svc.MatchUsers(ctx, []string{"a", "a", "a"}, "2026-09-01")

		assert.NoError(t, err)
		assert.Empty(t, windows)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		svc := &DefaultMatchService{Slots: newFakeSlotRepo(), Users: &fakeUserRepo{names: names}}

		_, err := svc.MatchUsers(ctx, []string{"a", "b"}, "tomorrow")

		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestMatchGroup(t *testing.T) {
	ctx := context.Background()
	names := map[string]string{"a": "alice", "b": "bob"}

	t.Run("Members Match Available Slots Only", func(t *testing.T) {
		repo := newFakeSlotRepo()
		seedDay(t, repo, "a", "2026-09-01", userSlot("a", 540, 660, "Work", true))
		seedDay(t, repo, "b", "2026-09-01",
			userSlot("b", 600, 720, "Study", true),
			userSlot("b", 540, 600, "Busy", false),
		)
		svc := &DefaultMatchService{
			Slots:  repo,
			Users:  &fakeUserRepo{names: names},
			Groups: &fakeGroupResolver{member: true, members: []string{"a", "b"}},
		}

		windows, err := svc.MatchGroup(ctx, "a", "g1", models.GroupMatchRequest{Date: "2026-09-01"})

		assert.NoError(t, err)
		assert.Len(t, windows, 1)
		assert.Equal(t, 600, windows[0].Start)
		assert.Equal(t, 660, windows[0].End)
	})

	t.Run("Non-Member Is Refused", func(t *testing.T) {
		svc := &DefaultMatchService{
			Slots:  newFakeSlotRepo(),
			Users:  &fakeUserRepo{names: names},
			Groups: &fakeGroupResolver{member: false},
		}

		_, err := svc.MatchGroup(ctx, "z", "g1", models.GroupMatchRequest{Date: "2026-09-01"})

		var forbidden ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("Range Spans Multiple Dates", func(t *testing.T) {
		repo := newFakeSlotRepo()
		seedDay(t, repo, "a", "2026-09-01", userSlot("a", 540, 660, "Work", true))
		seedDay(t, repo, "b", "2026-09-01", userSlot("b", 600, 720, "Study", true))
		seedDay(t, repo, "a", "2026-09-02", userSlot("a", 480, 540, "Gym", true))
		seedDay(t, repo, "b", "2026-09-02", userSlot("b", 480, 540, "Gym", true))
		svc := &DefaultMatchService{
			Slots:  repo,
			Users:  &fakeUserRepo{names: names},
			Groups: &fakeGroupResolver{member: true, members: []string{"a", "b"}},
		}

		windows, err := svc.MatchGroup(ctx, "a", "g1", models.GroupMatchRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-09-03",
		})

		assert.NoError(t, err)
		assert.Len(t, windows, 2)
		assert.Equal(t, "2026-09-01", windows[0].Date)
		assert.Equal(t, "2026-09-02", windows[1].Date)
	})

	t.Run("Range Over 31 Days Is Rejected Before Any Query", func(t *testing.T) {
		resolver := &fakeGroupResolver{member: true, members: []string{"a", "b"}}
		svc := &DefaultMatchService{
			Slots:  newFakeSlotRepo(),
			Users:  &fakeUserRepo{names: names},
			Groups: resolver,
		}

		_, err := svc.MatchGroup(ctx, "a", "g1", models.GroupMatchRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-10-02",
		})

		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.False(t, resolver.called, "validation must run before membership is resolved")
	})

	t.Run("Date And Range Are Mutually Exclusive", func(t *testing.T) {
		svc := &DefaultMatchService{
			Slots:  newFakeSlotRepo(),
			Users:  &fakeUserRepo{names: names},
			Groups: &fakeGroupResolver{member: true},
		}

		_, err := svc.MatchGroup(ctx, "a", "g1", models.GroupMatchRequest{
			Date:      "2026-09-01",
			StartDate: "2026-09-01",
			EndDate:   "2026-09-02",
		})

		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Open-Ended Range Is Rejected", func(t *testing.T) {
		svc := &DefaultMatchService{
			Slots:  newFakeSlotRepo(),
			Users:  &fakeUserRepo{names: names},
			Groups: &fakeGroupResolver{member: true},
		}

		_, err := svc.MatchGroup(ctx, "a", "g1", models.GroupMatchRequest{
			StartDate: "2026-09-01",
		})

		var verr ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Exactly 31 Days Is Allowed", func(t *testing.T) {
		svc := &DefaultMatchService{
			Slots:  newFakeSlotRepo(),
			Users:  &fakeUserRepo{names: names},
			Groups: &fakeGroupResolver{member: true, members: []string{"a", "b"}},
		}

		windows, err := svc.MatchGroup(ctx, "a", "g1", models.GroupMatchRequest{
			StartDate: "2026-09-01",
			EndDate:   "2026-10-01",
		})

		assert.NoError(t, err)
		assert.Empty(t, windows)
	})
}
