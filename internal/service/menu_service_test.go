package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMenuSvc() (service.MenuService, *stubMenuRepo) {
	repo := newStubMenuRepo()
	return service.NewMenuService(repo), repo
}

func TestCreateMenuItem_Defaults(t *testing.T) {
	svc, _ := buildMenuSvc()

	resp, err := svc.Create(context.Background(), dto.CreateMenuItemRequest{
		Name:     "Ahi Poke Bowl",
		Price:    dec("12.00"),
		Category: "mains",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 15, resp.PrepMinutes)
	assert.False(t, resp.LowStock) // stock not tracked
}

func TestCreateMenuItem_RejectsZeroPrice(t *testing.T) {
	svc, _ := buildMenuSvc()
	_, err := svc.Create(context.Background(), dto.CreateMenuItemRequest{
		Name:     "Freebie",
		Price:    dec("0"),
		Category: "mains",
	})
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestUpdateMenuItem_PatchesOnlyGivenFields(t *testing.T) {
	svc, repo := buildMenuSvc()
	item := seedMenuItem(repo, "Soda", 2.50)

	newPrice := dec("3.00")
	resp, err := svc.Update(context.Background(), item.ID, dto.UpdateMenuItemRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(dec("3.00")))
	assert.True(t, resp.Available) // untouched
}

func TestAdjustStock_RequiresTracking(t *testing.T) {
	svc, repo := buildMenuSvc()
	item := seedMenuItem(repo, "Ahi Poke Bowl", 12.00) // TrackStock false

	err := svc.AdjustStock(context.Background(), item.ID, -2)
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestAdjustStock_FloorsAtZero(t *testing.T) {
	svc, repo := buildMenuSvc()
	item := seedMenuItem(repo, "Soda", 2.50)
	item.TrackStock = true
	item.CurrentStock = 3

	require.NoError(t, svc.AdjustStock(context.Background(), item.ID, -10))
	assert.Equal(t, 0, repo.items[item.ID].CurrentStock)
}

func TestListLowStock(t *testing.T) {
	svc, repo := buildMenuSvc()
	low := seedMenuItem(repo, "Soda", 2.50)
	low.TrackStock = true
	low.CurrentStock = 2
	low.MinimumStock = 5

	ok := seedMenuItem(repo, "Water", 1.50)
	ok.TrackStock = true
	ok.CurrentStock = 50
	ok.MinimumStock = 5

	items, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Soda", items[0].Name)
	assert.True(t, items[0].LowStock)
}

func TestGetMenuItem_Unknown(t *testing.T) {
	svc, _ := buildMenuSvc()
	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, poserr.IsNotFound(err))
}

func TestGetMenuItem_LookupOutageIsNotNotFound(t *testing.T) {
	svc, repo := buildMenuSvc()
	item := seedMenuItem(repo, "Soda", 2.50)
	repo.findErr = errors.New("connection refused")

	_, err := svc.Get(context.Background(), item.ID)
	require.Error(t, err)
	assert.True(t, poserr.IsPersistence(err))
	assert.False(t, poserr.IsNotFound(err))
}
