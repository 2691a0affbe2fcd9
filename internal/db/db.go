package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Store is the subset of operations available inside a database transaction.
type Store interface {
	Insert(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SeedTable inserts records only when the target table is still empty.
func (f *PostgresDB) SeedTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	elemType := slice.Index(0).Interface()
	var count int64
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (f *PostgresDB) Save(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Transaction runs fn inside a single database transaction. Any error from fn
// rolls back every write it made.
func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx Store) error) error {
	err := f.DB.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		return fn(&PostgresDB{DB: gtx})
	})
	if err != nil {
		return fmt.Errorf("run transaction: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Order("id").Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := f.DB.WithContext(ctx).Order("id").Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

func (f *PostgresDB) Count(ctx context.Context, model any) (int64, error) {
	var count int64
	if err := f.DB.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("get model count: %w", err)
	}
	return count, nil
}
