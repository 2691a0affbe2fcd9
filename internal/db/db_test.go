package db_test

import (
	"context"
	"database/sql"
	"errors"

	"finledger/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SeedTable", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("Alice", 1, "Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
				mock.ExpectCommit()
			})

			It("should insert the seed records", func() {
				err := testDB.SeedTable(ctx, &[]Test{
					{ID: 1, Username: "Alice"},
					{ID: 2, Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already has rows", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should not insert anything", func() {
				err := testDB.SeedTable(ctx, &[]Test{{ID: 1, Username: "Alice"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the seed slice is empty", func() {
			It("should not touch the database", func() {
				err := testDB.SeedTable(ctx, &[]Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the records are not a pointer to a slice", func() {
			It("should return an error", func() {
				err := testDB.SeedTable(ctx, Test{ID: 1})
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Insert", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
				WithArgs("Alice", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()
		})

		It("should insert a single record", func() {
			err := testDB.Insert(ctx, &Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Save", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
				WithArgs("Alice", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should update the existing record", func() {
			err := testDB.Save(ctx, &Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Transaction", func() {
		When("every write succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
					WithArgs("Bob", 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should commit both writes together", func() {
				err := testDB.Transaction(ctx, func(tx db.Store) error {
					if err := tx.Insert(ctx, &Test{ID: 1, Username: "Alice"}); err != nil {
						return err
					}
					return tx.Save(ctx, &Test{ID: 2, Username: "Bob"})
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a later write fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
					WithArgs("Bob", 2).
					WillReturnError(errors.New("write rejected"))
				mock.ExpectRollback()
			})

			It("should roll back the earlier write", func() {
				err := testDB.Transaction(ctx, func(tx db.Store) error {
					if err := tx.Insert(ctx, &Test{ID: 1, Username: "Alice"}); err != nil {
						return err
					}
					return tx.Save(ctx, &Test{ID: 2, Username: "Bob"})
				})

				Expect(err).To(MatchError(ContainSubstring("write rejected")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "Alice"))
			})

			It("should scan it into the entity", func() {
				var entity Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &entity)

				Expect(err).NotTo(HaveOccurred())
				Expect(entity.ID).To(Equal(uint(1)))
				Expect(entity.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record matches", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return the not found sentinel", func() {
				var entity Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &entity)

				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("GetAllBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1\) ORDER BY id`).
				WithArgs("Alice").
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "Alice").AddRow(4, "Alice"))
		})

		It("should return every matching record ordered by id", func() {
			var entities []Test
			err := testDB.GetAllBy(ctx, "username", []string{"Alice"}, &entities)

			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(2))
			Expect(entities[0].ID).To(Equal(uint(1)))
			Expect(entities[1].ID).To(Equal(uint(4)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetAll", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" ORDER BY id`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "Alice").AddRow(2, "Bob"))
		})

		It("should return every record", func() {
			var entities []Test
			err := testDB.GetAll(ctx, &entities)

			Expect(err).NotTo(HaveOccurred())
			Expect(entities).To(HaveLen(2))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Count", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		})

		It("should return the row count", func() {
			count, err := testDB.Count(ctx, &Test{})

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(5)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
