//go:build integration

package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/residencia-inventario/pkg/config"
)

var asOf = entity.NewDate(2026, 10, 19)

type PostgresLedgerSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	ledger    *postgres.LedgerRepo
}

func TestPostgresLedgerSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresLedgerSuite))
}

func (s *PostgresLedgerSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("inventario"),
		tcpostgres.WithUsername("inventario"),
		tcpostgres.WithPassword("inventario"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.pool, err = postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	s.Require().NoError(err)
	s.Require().NoError(postgres.EnsureSchema(ctx, s.pool))
	s.ledger = postgres.NewLedgerRepository(s.pool)
}

func (s *PostgresLedgerSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresLedgerSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE ledger_events, items, subjects, documents, recurrences, scheduled_events RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *PostgresLedgerSuite) TestEsquemaIdempotente() {
	s.NoError(postgres.EnsureSchema(context.Background(), s.pool))
}

func (s *PostgresLedgerSuite) TestAppendYQueryOrdenado() {
	ctx := context.Background()
	_, err := s.ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: entity.AddDays(asOf, -1), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 5},
		{Date: entity.AddDays(asOf, -3), Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 50},
		{Date: entity.AddDays(asOf, -1), Direction: entity.DirectionIN, ItemID: "gasas", SubjectID: "ana", Quantity: 2},
	})
	s.Require().NoError(err)

	all, err := s.ledger.Query(ctx, entity.MovementFilter{ItemID: "gasas"})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(int64(50), all[0].Quantity)
	s.Equal(entity.DirectionOUT, all[1].Direction)
	s.True(all[1].Seq < all[2].Seq)
	s.True(all[0].Date.Equal(entity.AddDays(asOf, -3)))

	facility, err := s.ledger.Query(ctx, entity.MovementFilter{ItemID: "gasas", Scope: entity.FacilityOnly()})
	s.Require().NoError(err)
	s.Equal(int64(45), inv.Balance(facility, "gasas", ""))

	personal, err := s.ledger.Query(ctx, entity.MovementFilter{Scope: entity.OnlySubject("ana")})
	s.Require().NoError(err)
	s.Len(personal, 1)
}

func (s *PostgresLedgerSuite) TestLoteTodoONada() {
	ctx := context.Background()
	_, err := s.ledger.Append(ctx, &entity.MovementEvent{ID: "dup", Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 1})
	s.Require().NoError(err)

	_, err = s.ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 10},
		{ID: "dup", Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 1},
	})
	s.ErrorIs(err, domain.ErrConflict)

	_, err = s.ledger.Append(ctx, &entity.MovementEvent{Date: asOf, Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 0})
	s.ErrorIs(err, domain.ErrValidation)

	events, err := s.ledger.Query(ctx, entity.MovementFilter{})
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *PostgresLedgerSuite) TestAnexosConcurrentes() {
	ctx := context.Background()
	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ledger.AppendBatch(ctx, []*entity.MovementEvent{
				{Date: asOf, Direction: entity.DirectionIN, ItemID: "jabón", Quantity: 3},
				{Date: asOf, Direction: entity.DirectionOUT, ItemID: "jabón", Quantity: 3},
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	events, err := s.ledger.Query(ctx, entity.MovementFilter{ItemID: "jabón"})
	s.Require().NoError(err)
	s.Len(events, 2*writers)
	s.Equal(int64(0), inv.Balance(events, "jabón", ""))
}

func (s *PostgresLedgerSuite) TestTopConsumedNumeric() {
	ctx := context.Background()
	_, err := s.ledger.AppendBatch(ctx, []*entity.MovementEvent{
		{Date: entity.AddDays(asOf, -2), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 30},
		{Date: entity.AddDays(asOf, -1), Direction: entity.DirectionOUT, ItemID: "gasas", Quantity: 12},
		{Date: entity.AddDays(asOf, -1), Direction: entity.DirectionOUT, ItemID: "guantes", Quantity: 8},
		{Date: entity.AddDays(asOf, -1), Direction: entity.DirectionOUT, ItemID: "guantes", SubjectID: "ana", Quantity: 100},
	})
	s.Require().NoError(err)

	top, err := s.ledger.TopConsumed(ctx, entity.AddDays(asOf, -30), asOf, 5)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("gasas", top[0].ItemID)
	s.Equal("42", top[0].TotalOut.String())
	s.Equal("8", top[1].TotalOut.String())
}

func (s *PostgresLedgerSuite) TestCatalogoYFuentes() {
	ctx := context.Background()
	catalog := postgres.NewCatalogRepository(s.pool)
	s.Require().NoError(catalog.Upsert(ctx, entity.Item{ID: "gasas", Name: "Gasas", MinimumThreshold: 100}))
	it, err := catalog.GetItem(ctx, "gasas")
	s.Require().NoError(err)
	s.Equal(int64(100), it.MinimumThreshold)
	missing, err := catalog.GetItem(ctx, "nada")
	s.NoError(err)
	s.Nil(missing)

	issue := entity.AddDays(asOf, -200)
	docs := postgres.NewDocumentFeed(s.pool)
	s.Require().NoError(docs.Upsert(ctx, entity.ExpiringEntity{ID: "d1", Label: "Certificado", IssueDate: &issue, ValidityPeriodDays: 180}))
	list, err := docs.ListExpiring(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Nil(list[0].ExpirationDate)
	exp, err := list[0].Expiration()
	s.Require().NoError(err)
	s.Equal(-20, entity.DaysBetween(asOf, exp))

	agenda := postgres.NewScheduleFeed(s.pool)
	s.Require().NoError(agenda.Upsert(ctx, entity.ScheduledEvent{ID: "s1", Label: "Podología", Date: asOf.Add(5 * time.Hour), Time: "09:30"}))
	today, err := agenda.ListScheduled(ctx, asOf)
	s.Require().NoError(err)
	s.Len(today, 1)
}
