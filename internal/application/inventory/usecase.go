package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/residencia-inventario/internal/application/dto"
	"github.com/jhoicas/residencia-inventario/internal/domain"
	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

// InputFromRequest adapta el request HTTP a MovementInputDTO (fecha YYYY-MM-DD, sentido sin distinguir mayúsculas).
func InputFromRequest(in dto.RegisterMovementRequest) (MovementInputDTO, error) {
	date, err := entity.ParseDate(in.Date)
	if err != nil {
		return MovementInputDTO{}, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput)
	}
	return MovementInputDTO{
		ID:        in.ID,
		Date:      date,
		Direction: entity.ParseDirection(in.Direction),
		ItemID:    in.ItemID,
		SubjectID: in.SubjectID,
		Quantity:  in.Quantity,
		Note:      in.Note,
	}, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (string, error) {
	input, err := InputFromRequest(in)
	if err != nil {
		return "", err
	}
	return uc.RegisterMovement(ctx, input)
}

// RegisterBatchFromRequest adapta el lote HTTP; una fecha inválida rechaza todo el lote.
func (uc *RegisterMovementUseCase) RegisterBatchFromRequest(ctx context.Context, in dto.RegisterBatchRequest) ([]string, error) {
	inputs := make([]MovementInputDTO, 0, len(in.Movements))
	for i, m := range in.Movements {
		input, err := InputFromRequest(m)
		if err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", i, err)
		}
		inputs = append(inputs, input)
	}
	return uc.RegisterBatch(ctx, inputs)
}

// ToMovementDTO convierte un evento del libro.
func ToMovementDTO(e entity.MovementEvent) dto.MovementDTO {
	return dto.MovementDTO{
		ID:        e.ID,
		Date:      e.Date.Format(entity.DateLayout),
		Direction: string(e.Direction),
		ItemID:    e.ItemID,
		SubjectID: e.SubjectID,
		Quantity:  e.Quantity,
		Note:      e.Note,
	}
}
