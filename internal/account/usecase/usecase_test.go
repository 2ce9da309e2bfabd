package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"laptopxplorer/internal/account"
	repo "laptopxplorer/internal/account/repository"
	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/internal/review"
	"laptopxplorer/pkg/log"
)

type fakeRepo struct {
	favs     map[string]time.Time // laptop id -> added at, single user
	profiles map[string]account.Profile
	saves    int
	now      time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		favs:     map[string]time.Time{},
		profiles: map[string]account.Profile{},
		now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) ToggleFavorite(_ context.Context, _, laptopID string) (bool, error) {
	if _, ok := f.favs[laptopID]; ok {
		delete(f.favs, laptopID)
		return false, nil
	}
	f.now = f.now.Add(time.Minute)
	f.favs[laptopID] = f.now
	return true, nil
}

func (f *fakeRepo) ListFavorites(_ context.Context, opt repo.ListFavoritesOptions) ([]account.Favorite, error) {
	out := []account.Favorite{}
	for id, at := range f.favs {
		out = append(out, account.Favorite{UserID: opt.UserID, LaptopID: id, CreatedAt: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (f *fakeRepo) CountFavorites(_ context.Context, _ string) (int, error) {
	return len(f.favs), nil
}

func (f *fakeRepo) GetProfile(_ context.Context, userID string) (account.Profile, error) {
	return f.profiles[userID], nil
}

func (f *fakeRepo) UpsertProfile(_ context.Context, opt repo.UpsertProfileOptions) (account.Profile, error) {
	f.saves++
	p := account.Profile{
		UserID: opt.UserID, Bio: opt.Bio, Location: opt.Location, Website: opt.Website,
		NewsletterSubscription: opt.NewsletterSubscription, EmailNotifications: opt.EmailNotifications,
		UpdatedAt: opt.UpdatedAt,
	}
	f.profiles[opt.UserID] = p
	return p, nil
}

func (f *fakeRepo) ListEmailOptOuts(_ context.Context, userIDs []string) ([]string, error) {
	out := []string{}
	for _, id := range userIDs {
		if p, ok := f.profiles[id]; ok && !p.EmailNotifications {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeLaptops struct{ known map[string]bool }

func (f fakeLaptops) GetByIDs(_ context.Context, ids []string) ([]laptop.Laptop, error) {
	var out []laptop.Laptop
	for _, id := range ids {
		if f.known[id] {
			out = append(out, laptop.Laptop{ID: id, Name: "Laptop " + id})
		}
	}
	return out, nil
}

type fakeReviews struct {
	limit int
	err   error
}

func (f *fakeReviews) ListByUser(_ context.Context, sc model.Scope, limit int) ([]review.Review, error) {
	f.limit = limit
	return []review.Review{{ID: "r1", UserID: sc.UserID, Score: 4}}, f.err
}

func (f *fakeReviews) Stats(_ context.Context, _ model.Scope) (review.UserStats, error) {
	return review.UserStats{Count: 3, AverageScore: 4.33}, f.err
}

func newUseCase(known ...string) (*implUseCase, *fakeRepo, *fakeReviews) {
	ids := map[string]bool{}
	for _, id := range known {
		ids[id] = true
	}
	r := newFakeRepo()
	rv := &fakeReviews{}
	return New(r, fakeLaptops{known: ids}, rv, log.NewNop()), r, rv
}

var user = model.Scope{UserID: "u1", Email: "u1@example.com", Role: model.RoleUser}

func TestToggleFavorite(t *testing.T) {
	uc, _, _ := newUseCase("a")
	ctx := context.Background()

	on, err := uc.ToggleFavorite(ctx, user, "a")
	if err != nil || !on {
		t.Fatalf("first toggle: got %v, %v", on, err)
	}
	on, err = uc.ToggleFavorite(ctx, user, "a")
	if err != nil || on {
		t.Fatalf("second toggle: got %v, %v", on, err)
	}

	if _, err := uc.ToggleFavorite(ctx, user, "missing"); !errors.Is(err, laptop.ErrLaptopNotFound) {
		t.Errorf("expected ErrLaptopNotFound, got %v", err)
	}
	if _, err := uc.ToggleFavorite(ctx, model.Scope{}, "a"); !errors.Is(err, account.ErrMissingIdentity) {
		t.Errorf("expected ErrMissingIdentity, got %v", err)
	}
}

func TestFavorites_NewestFirstSkipsDeleted(t *testing.T) {
	uc, r, _ := newUseCase("a", "b", "c")
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := uc.ToggleFavorite(ctx, user, id); err != nil {
			t.Fatal(err)
		}
	}
	// A laptop removed from the catalog after being favorited.
	r.favs["gone"] = r.now.Add(time.Hour)

	favs, err := uc.Favorites(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, f := range favs {
		got = append(got, f.Laptop.ID)
	}
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDashboard(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	uc, _, rv := newUseCase(ids...)
	ctx := context.Background()

	for _, id := range ids {
		if _, err := uc.ToggleFavorite(ctx, user, id); err != nil {
			t.Fatal(err)
		}
	}

	out, err := uc.Dashboard(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if out.FavoritesCount != 8 {
		t.Errorf("FavoritesCount = %d, want 8", out.FavoritesCount)
	}
	if len(out.RecentFavorites) != account.DashboardFavorites {
		t.Errorf("RecentFavorites = %d, want %d", len(out.RecentFavorites), account.DashboardFavorites)
	}
	if out.RecentFavorites[0].Laptop.ID != "h" {
		t.Errorf("newest favorite = %s, want h", out.RecentFavorites[0].Laptop.ID)
	}
	if out.ReviewsCount != 3 || out.AverageRating != 4.33 {
		t.Errorf("review stats = %d/%v", out.ReviewsCount, out.AverageRating)
	}
	if rv.limit != account.DashboardReviews {
		t.Errorf("reviews limit = %d, want %d", rv.limit, account.DashboardReviews)
	}

	rv.err = errors.New("boom")
	if _, err := uc.Dashboard(ctx, user); err == nil {
		t.Error("expected review failure to propagate")
	}
}

func ptr[T any](v T) *T { return &v }

func TestProfile_DefaultsWhenNeverSaved(t *testing.T) {
	uc, _, _ := newUseCase()

	p, err := uc.Profile(context.Background(), user)
	if err != nil {
		t.Fatal(err)
	}
	if p.UserID != "u1" || !p.EmailNotifications || p.NewsletterSubscription {
		t.Errorf("unexpected default profile %+v", p)
	}

	if _, err := uc.Profile(context.Background(), model.Scope{}); !errors.Is(err, account.ErrMissingIdentity) {
		t.Errorf("expected ErrMissingIdentity, got %v", err)
	}
}

func TestUpdateProfile_MergesSetFields(t *testing.T) {
	uc, r, _ := newUseCase()
	ctx := context.Background()
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	_, err := uc.UpdateProfile(ctx, user, account.UpdateProfileInput{
		Bio:      ptr("  Reviews ultrabooks.  "),
		Location: ptr("Hanoi"),
		Website:  ptr("https://example.com/me"),
	})
	if err != nil {
		t.Fatal(err)
	}

	p, err := uc.UpdateProfile(ctx, user, account.UpdateProfileInput{EmailNotifications: ptr(false)})
	if err != nil {
		t.Fatal(err)
	}
	if p.Bio != "Reviews ultrabooks." || p.Location != "Hanoi" || p.Website != "https://example.com/me" {
		t.Errorf("unset fields changed: %+v", p)
	}
	if p.EmailNotifications {
		t.Error("EmailNotifications should be off")
	}
	if !p.UpdatedAt.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("UpdatedAt = %v", p.UpdatedAt)
	}
	if r.saves != 2 {
		t.Errorf("saves = %d, want 2", r.saves)
	}
}

func TestUpdateProfile_Validation(t *testing.T) {
	long := make([]rune, account.MaxBioLength+1)
	for i := range long {
		long[i] = 'é'
	}

	tests := []struct {
		name    string
		input   account.UpdateProfileInput
		wantErr error
	}{
		{"bio too long", account.UpdateProfileInput{Bio: ptr(string(long))}, account.ErrBioTooLong},
		{"bio at limit", account.UpdateProfileInput{Bio: ptr(string(long[1:]))}, nil},
		{"location too long", account.UpdateProfileInput{Location: ptr(string(make([]byte, account.MaxLocationLength+1)))}, account.ErrLocationTooLong},
		{"website without scheme", account.UpdateProfileInput{Website: ptr("example.com")}, account.ErrInvalidWebsite},
		{"website ftp", account.UpdateProfileInput{Website: ptr("ftp://example.com")}, account.ErrInvalidWebsite},
		{"website cleared", account.UpdateProfileInput{Website: ptr("")}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, r, _ := newUseCase()
			_, err := uc.UpdateProfile(context.Background(), user, tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil && r.saves != 0 {
				t.Error("invalid profile must not be saved")
			}
		})
	}
}

func TestEmailOptOuts(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	off := model.Scope{UserID: "u2"}
	if _, err := uc.UpdateProfile(ctx, off, account.UpdateProfileInput{EmailNotifications: ptr(false)}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.UpdateProfile(ctx, user, account.UpdateProfileInput{Bio: ptr("hi")}); err != nil {
		t.Fatal(err)
	}

	got, err := uc.EmailOptOuts(ctx, []string{"u1", "u2", "u3"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got["u2"] {
		t.Errorf("got %v, want only u2", got)
	}
}
