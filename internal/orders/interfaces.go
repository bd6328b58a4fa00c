package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/rasanusantara/storefront/pkg/db/models"
	"github.com/rasanusantara/storefront/pkg/pagination"
)

// Repository defines persistence operations for the orders table.
type Repository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindBySession(ctx context.Context, sessionID string, id uuid.UUID) (*models.Order, error)
	ListBySession(ctx context.Context, sessionID string, params pagination.Params) ([]models.Order, *pagination.Cursor, error)
}
