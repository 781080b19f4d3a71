package orders

import (
	"context"

	"github.com/angelmondragon/restroboost-backend/internal/menu"
)

type repository interface {
	GetAll(ctx context.Context) ([]Order, error)
	Add(ctx context.Context, order Order) (Order, error)
	Update(ctx context.Context, id string, mutate func(*Order) error) (Order, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// menuReader supplies the items a simulated order is drawn from.
type menuReader interface {
	GetAll(ctx context.Context) ([]menu.Item, error)
}
