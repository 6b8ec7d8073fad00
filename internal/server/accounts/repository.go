package accounts

import (
	"context"
)

// Repository is the durable account store. Implementations must enforce
// username uniqueness at write time and return common.ErrorAlreadyExists on
// a duplicate insert, common.ErrorNotFound on a missed lookup.
type Repository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}
