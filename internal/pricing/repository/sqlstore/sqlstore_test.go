package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	laptopRepo "laptopxplorer/internal/laptop/repository"
	laptopStore "laptopxplorer/internal/laptop/repository/sqlstore"
	repo "laptopxplorer/internal/pricing/repository"
	"laptopxplorer/internal/pricing/repository/sqlstore"
	"laptopxplorer/internal/testutil"
	"laptopxplorer/pkg/log"
)

func setup(t *testing.T) (repo.Repository, string) {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t)

	catalog := laptopStore.New(db, log.NewNop())
	brand, err := catalog.CreateBrand(ctx, laptopRepo.CreateBrandOptions{Name: "HP", Slug: "hp"})
	require.NoError(t, err)
	lp, err := catalog.CreateLaptop(ctx, laptopRepo.CreateLaptopOptions{
		Name: "Spectre x360", Slug: "hp-spectre-x360", BrandID: brand.ID,
		RAMSize: 16, StorageSize: 1024, DisplaySize: 13.5, Weight: 1.4,
		Price: decimal.RequireFromString("1399.99"), InStock: true,
	})
	require.NoError(t, err)

	return sqlstore.New(db, log.NewNop()), lp.ID
}

func TestRecords(t *testing.T) {
	r, laptopID := setup(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for i, p := range []struct {
		price    string
		retailer string
	}{
		{"1399.99", "amazon"},
		{"1349.50", "bestbuy"},
		{"1299.00", "amazon"},
	} {
		_, err := r.CreateRecord(ctx, repo.CreateRecordOptions{
			LaptopID: laptopID, Price: decimal.RequireFromString(p.price), Retailer: p.retailer,
			InStock: true, RecordedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := r.ListRecords(ctx, repo.ListRecordsOptions{LaptopID: laptopID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].Price.Equal(decimal.RequireFromString("1399.99")))
	assert.True(t, all[2].Price.Equal(decimal.RequireFromString("1299")))
	assert.True(t, all[1].RecordedAt.Equal(base.Add(time.Hour)))
	assert.True(t, all[0].InStock)

	amazon, err := r.ListRecords(ctx, repo.ListRecordsOptions{LaptopID: laptopID, Retailer: "amazon"})
	require.NoError(t, err)
	assert.Len(t, amazon, 2)
}

func TestAlerts(t *testing.T) {
	r, laptopID := setup(t)
	ctx := context.Background()

	a, err := r.CreateAlert(ctx, repo.CreateAlertOptions{
		UserID: "u1", UserEmail: "u1@example.com", LaptopID: laptopID,
		TargetPrice: decimal.RequireFromString("1200"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Spectre x360", a.LaptopName)
	assert.Equal(t, "hp-spectre-x360", a.LaptopSlug)
	assert.True(t, a.Active)
	assert.Nil(t, a.LastNotified)

	_, err = r.CreateAlert(ctx, repo.CreateAlertOptions{UserID: "u1", LaptopID: laptopID, TargetPrice: decimal.NewFromInt(1100)})
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	_, err = r.CreateAlert(ctx, repo.CreateAlertOptions{UserID: "u1", LaptopID: laptopID, TargetPrice: decimal.NewFromInt(1100), Retailer: "newegg"})
	require.NoError(t, err)

	alerts, err := r.ListAlerts(ctx, repo.ListAlertsOptions{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, alerts, 2)

	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.MarkNotified(ctx, []string{a.ID}, at))
	got, err := r.GetOneAlert(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastNotified)
	assert.True(t, got.LastNotified.Equal(at))

	require.NoError(t, r.DeleteAlert(ctx, a.ID))
	got, err = r.GetOneAlert(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	active, err := r.ListAlerts(ctx, repo.ListAlertsOptions{LaptopID: laptopID, ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
