package tour

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func TestMigrateCreatesTable(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS tours`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	if err := Migrate(context.Background(), mock); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedPopulatesEmptyTable(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	for _, seed := range seedTours {
		mock.ExpectExec(`INSERT INTO tours`).
			WithArgs(seed.Title, seed.Subtitle, seed.Description, seed.FullDescription,
				seed.Duration, seed.Date, seed.Price, pgxmock.AnyArg(), pgxmock.AnyArg(),
				seed.Rating, seed.Reviews, seed.MaxPeople).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	if err := Seed(context.Background(), mock); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	if err := Seed(context.Background(), mock); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
