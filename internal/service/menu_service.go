package service

import (
	"context"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/repository"

	"github.com/google/uuid"
)

type MenuService interface {
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MenuItemResponse, error)
	ListAvailable(ctx context.Context) ([]dto.MenuItemResponse, error)
	ListByCategory(ctx context.Context, category string) ([]dto.MenuItemResponse, error)
	ListLowStock(ctx context.Context) ([]dto.MenuItemResponse, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}

type menuService struct {
	repo repository.MenuItemRepository
}

func NewMenuService(repo repository.MenuItemRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) Create(ctx context.Context, req dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	item := model.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Available:    true,
		PrepMinutes:  req.PrepMinutes,
		TrackStock:   req.TrackStock,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
	}
	if item.PrepMinutes == 0 {
		item.PrepMinutes = 15
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, poserr.NewPersistence("menu item create", err)
	}
	return menuItemToResponse(&item), nil
}

func (s *menuService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "menu item", id.String())
	}

	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.Popular != nil {
		item.Popular = *req.Popular
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, poserr.NewPersistence("menu item update", err)
	}
	return menuItemToResponse(item), nil
}

func (s *menuService) Get(ctx context.Context, id uuid.UUID) (*dto.MenuItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "menu item", id.String())
	}
	return menuItemToResponse(item), nil
}

func (s *menuService) ListAvailable(ctx context.Context) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.FindAvailable(ctx)
	if err != nil {
		return nil, poserr.NewPersistence("available menu items", err)
	}
	return menuItemsToResponses(items), nil
}

func (s *menuService) ListByCategory(ctx context.Context, category string) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, poserr.NewPersistence("menu items by category", err)
	}
	return menuItemsToResponses(items), nil
}

func (s *menuService) ListLowStock(ctx context.Context) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.FindLowStock(ctx)
	if err != nil {
		return nil, poserr.NewPersistence("low stock menu items", err)
	}
	return menuItemsToResponses(items), nil
}

func (s *menuService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return lookupError(err, "menu item", id.String())
	}
	if !item.TrackStock {
		return poserr.NewFieldValidation("track_stock", "item does not track stock")
	}
	if err := s.repo.AdjustStock(ctx, id, delta); err != nil {
		return poserr.NewPersistence("stock adjust", err)
	}
	return nil
}

func menuItemToResponse(m *model.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Category:     m.Category,
		Available:    m.Available,
		Popular:      m.Popular,
		PrepMinutes:  m.PrepMinutes,
		TrackStock:   m.TrackStock,
		CurrentStock: m.CurrentStock,
		LowStock:     m.IsLowStock(),
	}
}

func menuItemsToResponses(items []model.MenuItem) []dto.MenuItemResponse {
	out := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *menuItemToResponse(&items[i]))
	}
	return out
}
