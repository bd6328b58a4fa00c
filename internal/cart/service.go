package cart

import (
	"context"
	"fmt"

	"github.com/rasanusantara/storefront/internal/catalog"
	"github.com/rasanusantara/storefront/pkg/checkout"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

// Service exposes the cart operations of a session.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, itemID, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, sessionID string, itemID int) (*Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// AddItemInput references a catalog product; name, price and image are
// resolved server-side.
type AddItemInput struct {
	ProductID int
	Quantity  int
}

type service struct {
	repo Repository
}

// NewService builds a cart service backed by repo.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.repo.Load(ctx, sessionID)
}

// AddItem pre-validates catalog stock for the merged quantity before
// mutating the cart.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Cart, error) {
	product, ok := catalog.FindProduct(input.ProductID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	qty := input.Quantity
	if qty < 1 {
		qty = 1
	}

	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	requested := qty
	if existing, ok := c.Find(product.ID); ok {
		requested += existing.Quantity
	}
	if err := checkStock(product, requested); err != nil {
		return nil, err
	}

	c.AddItem(Item{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: qty,
	})
	if err := s.repo.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, itemID, quantity int) (*Cart, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Find(itemID); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	if quantity > 0 {
		if product, ok := catalog.FindProduct(itemID); ok {
			if err := checkStock(product, quantity); err != nil {
				return nil, err
			}
		}
	}

	c.UpdateQuantity(itemID, quantity)
	if err := s.repo.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, itemID int) (*Cart, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.RemoveItem(itemID)
	if err := s.repo.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Save(ctx, sessionID, New())
}

func checkStock(product catalog.Product, requested int) error {
	return checkout.ValidateStock([]checkout.StockValidationInput{{
		ProductID:   product.ID,
		ProductName: product.Name,
		Stock:       product.Stock,
		Requested:   requested,
	}})
}
