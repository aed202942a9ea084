package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/residencia-inventario/internal/application/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
	inv "github.com/jhoicas/residencia-inventario/internal/domain/inventory"
	"github.com/jhoicas/residencia-inventario/internal/domain/repository/mocks"
	"github.com/jhoicas/residencia-inventario/pkg/logger"
)

// Fallos de los repositorios: el caso de uso los propaga envueltos y no deja escrituras a medias.
type RepositoryFailureSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	ledger   *mocks.MockLedgerRepository
	catalog  *mocks.MockCatalogRepository
	register *inventory.RegisterMovementUseCase
	forecast *inventory.ForecastUseCase
}

func TestRepositoryFailureSuite(t *testing.T) {
	suite.Run(t, new(RepositoryFailureSuite))
}

func (s *RepositoryFailureSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = mocks.NewMockLedgerRepository(s.ctrl)
	s.catalog = mocks.NewMockCatalogRepository(s.ctrl)
	s.register = inventory.NewRegisterMovementUseCase(s.ledger, s.catalog, logger.NewNop(), nil)
	s.forecast = inventory.NewForecastUseCase(s.ledger, s.catalog, inv.DefaultPolicy(), nil)
}

func (s *RepositoryFailureSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RepositoryFailureSuite) input() inventory.MovementInputDTO {
	return inventory.MovementInputDTO{Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 5}
}

func (s *RepositoryFailureSuite) TestAppendFallido_NoConsultaCatalogo() {
	boom := errors.New("disco lleno")
	s.ledger.EXPECT().AppendBatch(gomock.Any(), gomock.Len(1)).Return(nil, boom)

	_, err := s.register.RegisterMovement(context.Background(), s.input())
	s.Require().ErrorIs(err, boom)
}

func (s *RepositoryFailureSuite) TestConflictoDelLibroSePropaga() {
	s.ledger.EXPECT().AppendBatch(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)

	_, err := s.register.RegisterMovement(context.Background(), s.input())
	s.Require().ErrorIs(err, domain.ErrConflict)
}

func (s *RepositoryFailureSuite) TestCatalogoCaidoNoImpideRegistrar() {
	s.ledger.EXPECT().AppendBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evs []*entity.MovementEvent) ([]string, error) {
			evs[0].ID = "mov-1"
			return []string{"mov-1"}, nil
		})
	s.catalog.EXPECT().GetItem(gomock.Any(), "gasas").Return(nil, errors.New("timeout"))

	id, err := s.register.RegisterMovement(context.Background(), s.input())
	s.Require().NoError(err)
	s.Equal("mov-1", id)
}

func (s *RepositoryFailureSuite) TestValidacionNoLlegaAlLibro() {
	in := s.input()
	in.Quantity = -2
	_, err := s.register.RegisterMovement(context.Background(), in)
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *RepositoryFailureSuite) TestZeroBalance_ConsultaFallidaNoAnexa() {
	s.ledger.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("sin conexión"))

	_, _, err := s.register.ZeroBalance(context.Background(), "gasas", "", asOf, "")
	s.Require().Error(err)
	s.Contains(err.Error(), "zero balance")
}

func (s *RepositoryFailureSuite) TestZeroBalance_AnexaSalidaPorElSaldo() {
	s.ledger.EXPECT().Query(gomock.Any(), entity.MovementFilter{ItemID: "gasas", Scope: entity.FacilityOnly()}).
		Return([]entity.MovementEvent{
			{ID: "a", Date: asOf, Direction: entity.DirectionIN, ItemID: "gasas", Quantity: 12},
		}, nil)
	s.ledger.EXPECT().AppendBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evs []*entity.MovementEvent) ([]string, error) {
			s.Equal(entity.DirectionOUT, evs[0].Direction)
			s.Equal(int64(12), evs[0].Quantity)
			evs[0].ID = "corr-1"
			return []string{"corr-1"}, nil
		})
	s.catalog.EXPECT().GetItem(gomock.Any(), "gasas").Return(&entity.Item{ID: "gasas"}, nil)

	id, qty, err := s.register.ZeroBalance(context.Background(), "gasas", "", asOf, "")
	s.Require().NoError(err)
	s.Equal("corr-1", id)
	s.Equal(int64(12), qty)
}

func (s *RepositoryFailureSuite) TestForecast_LibroCaidoEsError() {
	s.ledger.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("sin conexión"))

	_, err := s.forecast.Forecast(context.Background(), "gasas", "", asOf)
	s.Require().Error(err)
	s.Contains(err.Error(), "forecast")
}
