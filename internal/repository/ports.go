package repository

import (
	"context"

	"finledger/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SeedTable(ctx context.Context, records any) error
	Insert(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
	Transaction(ctx context.Context, fn func(tx db.Store) error) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entity any) error
	Count(ctx context.Context, model any) (int64, error)
}

//counterfeiter:generate -o fake -fake-name TxStore finledger/internal/db.Store
