package sqlstore_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "laptopxplorer/internal/article/repository"
	"laptopxplorer/internal/article/repository/sqlstore"
	laptopRepo "laptopxplorer/internal/laptop/repository"
	laptopStore "laptopxplorer/internal/laptop/repository/sqlstore"
	"laptopxplorer/internal/testutil"
	"laptopxplorer/pkg/log"
	"laptopxplorer/pkg/sqldb"
)

func setup(t *testing.T) (repo.Repository, *sqldb.DB, string) {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t)

	catalog := laptopStore.New(db, log.NewNop())
	brand, err := catalog.CreateBrand(ctx, laptopRepo.CreateBrandOptions{Name: "Apple", Slug: "apple"})
	require.NoError(t, err)
	lp, err := catalog.CreateLaptop(ctx, laptopRepo.CreateLaptopOptions{
		Name: "MacBook Air M2", Slug: "apple-macbook-air-m2", BrandID: brand.ID,
		RAMSize: 8, StorageSize: 256, DisplaySize: 13.6, Weight: 1.24,
		Price: decimal.NewFromInt(1199), InStock: true,
	})
	require.NoError(t, err)
	return sqlstore.New(db, log.NewNop()), db, lp.ID
}

func TestCreateArticle(t *testing.T) {
	r, _, laptopID := setup(t)
	ctx := context.Background()

	a, err := r.CreateArticle(ctx, repo.CreateArticleOptions{
		Title: "MacBook Air M2 Review", Slug: "macbook-air-m2-review", LaptopID: laptopID,
		AuthorName: "Sarah Mitchell", Excerpt: "Fanless and fast.", Content: "<p>Body</p>",
		ReadTime: 8, Published: true, Featured: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "MacBook Air M2", a.LaptopName)
	assert.Equal(t, "apple-macbook-air-m2", a.LaptopSlug)
	assert.True(t, a.Published)
	assert.True(t, a.Featured)
	assert.Equal(t, 8, a.ReadTime)
	assert.False(t, a.CreatedAt.IsZero())

	_, err = r.CreateArticle(ctx, repo.CreateArticleOptions{Title: "Again", Slug: "macbook-air-m2-review"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	standalone, err := r.CreateArticle(ctx, repo.CreateArticleOptions{Title: "Buying guide", Slug: "buying-guide"})
	require.NoError(t, err)
	assert.Empty(t, standalone.LaptopID)
	assert.Empty(t, standalone.LaptopName)
}

func TestGetOneArticle_PublishedOnly(t *testing.T) {
	r, _, _ := setup(t)
	ctx := context.Background()

	_, err := r.CreateArticle(ctx, repo.CreateArticleOptions{Title: "Draft", Slug: "draft"})
	require.NoError(t, err)

	a, err := r.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: "draft"})
	require.NoError(t, err)
	assert.Equal(t, "Draft", a.Title)

	a, err = r.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: "draft", PublishedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, a.ID)

	a, err = r.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: "missing"})
	require.NoError(t, err)
	assert.Empty(t, a.ID)
}

func TestListArticles(t *testing.T) {
	r, _, _ := setup(t)
	ctx := context.Background()

	for _, opt := range []repo.CreateArticleOptions{
		{Title: "One", Slug: "one", Published: true},
		{Title: "Two", Slug: "two", Published: true, Featured: true},
		{Title: "Draft", Slug: "draft", Featured: true},
		{Title: "Three", Slug: "three", Published: true},
	} {
		_, err := r.CreateArticle(ctx, opt)
		require.NoError(t, err)
	}

	all, total, err := r.ListArticles(ctx, repo.ListArticlesOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 4)

	page, total, err := r.ListArticles(ctx, repo.ListArticlesOptions{PublishedOnly: true, Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "three", page[0].Slug)
	assert.Equal(t, "two", page[1].Slug)

	featured, total, err := r.ListArticles(ctx, repo.ListArticlesOptions{PublishedOnly: true, FeaturedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, featured, 1)
	assert.Equal(t, "two", featured[0].Slug)
}

func TestIncrementViews(t *testing.T) {
	r, _, _ := setup(t)
	ctx := context.Background()

	a, err := r.CreateArticle(ctx, repo.CreateArticleOptions{Title: "Popular", Slug: "popular", Published: true})
	require.NoError(t, err)
	for range 3 {
		require.NoError(t, r.IncrementViews(ctx, a.ID))
	}

	a, err = r.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: "popular"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.Views)
}

func TestArticle_LaptopDeletedKeepsArticle(t *testing.T) {
	r, db, laptopID := setup(t)
	ctx := context.Background()

	_, err := r.CreateArticle(ctx, repo.CreateArticleOptions{Title: "Review", Slug: "review", LaptopID: laptopID, Published: true})
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, db.Rebind(`DELETE FROM laptops WHERE id = ?`), laptopID)
	require.NoError(t, err)

	a, err := r.GetOneArticle(ctx, repo.GetOneArticleOptions{Slug: "review"})
	require.NoError(t, err)
	assert.Equal(t, "Review", a.Title)
	assert.Empty(t, a.LaptopID)
}
