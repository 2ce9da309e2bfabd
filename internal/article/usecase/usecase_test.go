package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptopxplorer/internal/article"
	repo "laptopxplorer/internal/article/repository"
	"laptopxplorer/internal/laptop"
	"laptopxplorer/internal/model"
	"laptopxplorer/pkg/log"
)

type fakeRepo struct {
	articles  []article.Article
	listOpts  []repo.ListArticlesOptions
	viewErr   error
	createErr error
	clock     time.Time
}

func (f *fakeRepo) CreateArticle(_ context.Context, opt repo.CreateArticleOptions) (article.Article, error) {
	if f.createErr != nil {
		return article.Article{}, f.createErr
	}
	for _, a := range f.articles {
		if a.Slug == opt.Slug {
			return article.Article{}, repo.ErrDuplicate
		}
	}
	f.clock = f.clock.Add(time.Hour)
	a := article.Article{
		ID: "id-" + opt.Slug, Title: opt.Title, Slug: opt.Slug, LaptopID: opt.LaptopID,
		AuthorName: opt.AuthorName, AuthorBio: opt.AuthorBio, Excerpt: opt.Excerpt, Content: opt.Content,
		ReadTime: opt.ReadTime, Published: opt.Published, Featured: opt.Featured,
		CreatedAt: f.clock, UpdatedAt: f.clock,
	}
	f.articles = append(f.articles, a)
	return a, nil
}

func (f *fakeRepo) GetOneArticle(_ context.Context, opt repo.GetOneArticleOptions) (article.Article, error) {
	for _, a := range f.articles {
		if a.Slug == opt.Slug && (!opt.PublishedOnly || a.Published) {
			return a, nil
		}
	}
	return article.Article{}, nil
}

func (f *fakeRepo) ListArticles(_ context.Context, opt repo.ListArticlesOptions) ([]article.Article, int, error) {
	f.listOpts = append(f.listOpts, opt)
	out := []article.Article{}
	for _, a := range f.articles {
		if opt.PublishedOnly && !a.Published || opt.FeaturedOnly && !a.Featured {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if opt.Limit > 0 {
		start := min(opt.Offset, len(out))
		out = out[start:min(start+opt.Limit, len(out))]
	}
	return out, total, nil
}

func (f *fakeRepo) IncrementViews(_ context.Context, id string) error {
	if f.viewErr != nil {
		return f.viewErr
	}
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles[i].Views++
		}
	}
	return nil
}

type fakeLaptops struct{}

func (fakeLaptops) GetBySlug(_ context.Context, slug string) (laptop.Laptop, error) {
	if slug != "apple-macbook-air-m2" {
		return laptop.Laptop{}, laptop.ErrLaptopNotFound
	}
	return laptop.Laptop{ID: "lp-air", Slug: slug}, nil
}

var (
	admin = model.Scope{UserID: "admin-1", Role: model.RoleAdmin}
	user  = model.Scope{UserID: "u1", Role: model.RoleUser}
)

func newUseCase() (*implUseCase, *fakeRepo) {
	r := &fakeRepo{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(r, fakeLaptops{}, log.NewNop()), r
}

func TestCreate(t *testing.T) {
	uc, r := newUseCase()
	ctx := context.Background()

	a, err := uc.Create(ctx, admin, article.CreateInput{
		Title:      "  MacBook Air M2 Review: The Perfect Laptop  ",
		LaptopSlug: "apple-macbook-air-m2",
		AuthorName: "Sarah Mitchell",
		Content:    "<p>" + strings.Repeat("word ", 401) + "</p>",
		Published:  true,
		Featured:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air M2 Review: The Perfect Laptop", a.Title)
	assert.Equal(t, "macbook-air-m2-review-the-perfect-laptop", a.Slug)
	assert.Equal(t, "lp-air", a.LaptopID)
	assert.Equal(t, 3, a.ReadTime)

	_, err = uc.Create(ctx, admin, article.CreateInput{Title: "Other", Slug: "MacBook Air M2 Review: The Perfect Laptop"})
	assert.ErrorIs(t, err, article.ErrDuplicateSlug)

	a, err = uc.Create(ctx, admin, article.CreateInput{Title: "Guide", Slug: "Best Laptops 2024", ReadTime: 12})
	require.NoError(t, err)
	assert.Equal(t, "best-laptops-2024", a.Slug)
	assert.Equal(t, 12, a.ReadTime)
	assert.Empty(t, a.LaptopID)
	assert.Len(t, r.articles, 2)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		sc      model.Scope
		input   article.CreateInput
		wantErr error
	}{
		{"anonymous", model.Scope{}, article.CreateInput{Title: "T"}, article.ErrMissingIdentity},
		{"not admin", user, article.CreateInput{Title: "T"}, article.ErrForbidden},
		{"blank title", admin, article.CreateInput{Title: "   "}, article.ErrInvalidTitle},
		{"long title", admin, article.CreateInput{Title: strings.Repeat("x", article.MaxTitleLength+1)}, article.ErrInvalidTitle},
		{"long excerpt", admin, article.CreateInput{Title: "T", Excerpt: strings.Repeat("x", article.MaxExcerptLength+1)}, article.ErrExcerptTooLong},
		{"negative read time", admin, article.CreateInput{Title: "T", ReadTime: -1}, article.ErrInvalidReadTime},
		{"title without letters", admin, article.CreateInput{Title: "???"}, article.ErrInvalidSlug},
		{"unknown laptop", admin, article.CreateInput{Title: "T", LaptopSlug: "nope"}, laptop.ErrLaptopNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, r := newUseCase()
			_, err := uc.Create(context.Background(), tc.sc, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, r.articles)
		})
	}
}

func seed(t *testing.T, uc *implUseCase, inputs ...article.CreateInput) {
	t.Helper()
	for _, in := range inputs {
		_, err := uc.Create(context.Background(), admin, in)
		require.NoError(t, err)
	}
}

func TestList_PublishedNewestFirst(t *testing.T) {
	uc, _ := newUseCase()
	for i := range 11 {
		seed(t, uc, article.CreateInput{Title: "Article " + string(rune('a'+i)), Published: true})
	}
	seed(t, uc, article.CreateInput{Title: "Draft"})

	out, err := uc.List(context.Background(), article.ListInput{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 11, out.TotalItems)
	assert.Equal(t, 2, out.TotalPages)
	require.Len(t, out.Articles, article.DefaultPageSize)
	assert.Equal(t, "article-k", out.Articles[0].Slug)

	out, err = uc.List(context.Background(), article.ListInput{Page: 2})
	require.NoError(t, err)
	require.Len(t, out.Articles, 2)
	assert.Equal(t, "article-a", out.Articles[1].Slug)
}

func TestList_PageIsClamped(t *testing.T) {
	uc, r := newUseCase()

	out, err := uc.List(context.Background(), article.ListInput{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.TotalPages)

	out, err = uc.List(context.Background(), article.ListInput{Page: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, article.MaxPage, out.Page)
	last := r.listOpts[len(r.listOpts)-1]
	assert.Equal(t, (article.MaxPage-1)*article.DefaultPageSize, last.Offset)
	assert.True(t, last.PublishedOnly)
}

func TestDetail(t *testing.T) {
	uc, r := newUseCase()
	ctx := context.Background()
	seed(t, uc,
		article.CreateInput{Title: "Live", Published: true},
		article.CreateInput{Title: "Draft"},
	)

	a, err := uc.Detail(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Views)

	_, err = uc.Detail(ctx, "draft")
	assert.ErrorIs(t, err, article.ErrArticleNotFound)
	_, err = uc.Detail(ctx, "missing")
	assert.ErrorIs(t, err, article.ErrArticleNotFound)

	r.viewErr = errors.New("locked")
	a, err = uc.Detail(ctx, "live")
	require.NoError(t, err, "a lost view does not fail the page")
	assert.Equal(t, int64(1), a.Views)
}

func TestFeaturedArticles(t *testing.T) {
	uc, r := newUseCase()
	ctx := context.Background()
	seed(t, uc,
		article.CreateInput{Title: "Old featured", Published: true, Featured: true, Excerpt: "old"},
		article.CreateInput{Title: "Plain", Published: true},
		article.CreateInput{Title: "Draft featured", Featured: true},
		article.CreateInput{Title: "New featured", Published: true, Featured: true, AuthorName: "Sarah", ReadTime: 8},
	)

	cards, err := uc.FeaturedArticles(ctx, 3)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, model.ArticleCard{
		Title: "New featured", Slug: "new-featured", AuthorName: "Sarah", ReadTime: 8,
		CreatedAt: r.articles[3].CreatedAt,
	}, cards[0])
	assert.Equal(t, "old-featured", cards[1].Slug)

	cards, err = uc.FeaturedArticles(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestPublished(t *testing.T) {
	uc, _ := newUseCase()
	seed(t, uc,
		article.CreateInput{Title: "One", Published: true},
		article.CreateInput{Title: "Draft"},
		article.CreateInput{Title: "Two", Published: true},
	)

	articles, err := uc.Published(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "two", articles[0].Slug)
	assert.Equal(t, "one", articles[1].Slug)
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"<p></p>", 0},
		{"<p>one</p>", 1},
		{strings.Repeat("w ", article.WordsPerMinute), 1},
		{strings.Repeat("w ", article.WordsPerMinute+1), 2},
		{"<h2>Design</h2><p>Thin<br/>light</p>", 1},
	}
	for _, tc := range tests {
		if got := estimateReadTime(tc.content); got != tc.want {
			t.Errorf("estimateReadTime(%.20q) = %d, want %d", tc.content, got, tc.want)
		}
	}
}
