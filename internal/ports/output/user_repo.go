package output

import (
	"context"

	"eventdesk/internal/domain/entities"
)

// UserRepository is a read-only view of platform members. Account creation and
// authentication live outside this service.
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByIDs(ctx context.Context, ids []uint) ([]entities.User, error)
}
