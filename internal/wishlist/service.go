package wishlist

import (
	"context"

	"github.com/rasanusantara/storefront/internal/catalog"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

// Service exposes business rules for wishlist management.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Wishlist, error)
	Toggle(ctx context.Context, sessionID string, productID int) (ToggleResult, error)
	Contains(ctx context.Context, sessionID string, productID int) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo *Repository
}

// NewService builds a wishlist service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Wishlist, error) {
	return s.repo.Load(ctx, sessionID)
}

// Toggle ensures the product exists and flips its membership.
func (s *service) Toggle(ctx context.Context, sessionID string, productID int) (ToggleResult, error) {
	product, ok := catalog.FindProduct(productID)
	if !ok {
		return ToggleResult{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	w, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return ToggleResult{}, err
	}
	item := Item{ID: product.ID, Name: product.Name, Price: product.Price, Image: product.Image}
	in := w.Toggle(item)
	if err := s.repo.Save(ctx, sessionID, w); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Item: item, InWishlist: in, Count: len(w.Items)}, nil
}

func (s *service) Contains(ctx context.Context, sessionID string, productID int) (bool, error) {
	w, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return w.Contains(productID), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Save(ctx, sessionID, New())
}
