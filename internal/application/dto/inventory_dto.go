package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/ledger/movements.
// subject_id vacío = stock general de la residencia.
type RegisterMovementRequest struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date"` // YYYY-MM-DD
	Direction string `json:"direction"`
	ItemID    string `json:"item_id"`
	SubjectID string `json:"subject_id,omitempty"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// RegisterBatchRequest body para POST /api/ledger/movements/batch (todo o nada).
type RegisterBatchRequest struct {
	Movements []RegisterMovementRequest `json:"movements"`
}

// ZeroBalanceRequest body para POST /api/inventory/corrections (asiento compensatorio).
type ZeroBalanceRequest struct {
	ItemID    string `json:"item_id"`
	SubjectID string `json:"subject_id,omitempty"`
	Date      string `json:"date"`
	Note      string `json:"note,omitempty"`
}

// MovementDTO evento del libro.
type MovementDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Direction string `json:"direction"`
	ItemID    string `json:"item_id"`
	SubjectID string `json:"subject_id,omitempty"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// MovementListDTO respuesta paginada de GET /api/ledger/movements.
type MovementListDTO struct {
	Movements []MovementDTO `json:"movements"`
	Page      PageResponse  `json:"page"`
}

// BalanceDTO saldo de una clave (artículo, sujeto).
type BalanceDTO struct {
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	SubjectID string `json:"subject_id,omitempty"`
	Balance   int64  `json:"balance"`
}

// SubjectAllocationDTO saldo personal de un sujeto.
type SubjectAllocationDTO struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Balance     int64  `json:"balance"`
}

// AllocationsDTO saldos de un artículo: stock general y asignaciones personales por separado.
// TotalAllocated es la suma explícita de las asignaciones; no incluye FacilityBalance.
type AllocationsDTO struct {
	ItemID          string                 `json:"item_id"`
	ItemName        string                 `json:"item_name"`
	FacilityBalance int64                  `json:"facility_balance"`
	Allocations     []SubjectAllocationDTO `json:"allocations"`
	TotalAllocated  int64                  `json:"total_allocated"`
}

// SubjectStockDTO stock personal de un residente en todos los artículos.
type SubjectStockDTO struct {
	SubjectID   string       `json:"subject_id"`
	SubjectName string       `json:"subject_name"`
	Items       []BalanceDTO `json:"items"`
}

// HistoryLineDTO movimiento con saldo acumulado (kárdex).
type HistoryLineDTO struct {
	MovementDTO
	RunningBalance int64 `json:"running_balance"`
}

// HistoryDTO kárdex de una clave en un rango.
type HistoryDTO struct {
	ItemID         string           `json:"item_id"`
	SubjectID      string           `json:"subject_id,omitempty"`
	OpeningBalance int64            `json:"opening_balance"`
	Lines          []HistoryLineDTO `json:"lines"`
	ClosingBalance int64            `json:"closing_balance"`
}

// ConsumptionDTO consumo diario estimado de una clave.
type ConsumptionDTO struct {
	ItemID     string          `json:"item_id"`
	SubjectID  string          `json:"subject_id,omitempty"`
	AsOf       string          `json:"as_of"`
	WindowDays int             `json:"window_days"`
	TotalOut   int64           `json:"total_out"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
}

// ReplenishmentSuggestionDTO artículo del stock general por debajo de su mínimo.
type ReplenishmentSuggestionDTO struct {
	ItemID            string          `json:"item_id"`
	ItemName          string          `json:"item_name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	CurrentBalance    int64           `json:"current_balance"`
	MinimumThreshold  int64           `json:"minimum_threshold"`
	SuggestedOrderQty int64           `json:"suggested_order_qty"` // 2 × mínimo − saldo
	DailyRate         decimal.Decimal `json:"daily_rate"`
	Tier              string          `json:"tier"`
	DaysRemaining     *int            `json:"days_remaining,omitempty"`
	Priority          int             `json:"priority"` // 1 = más urgente
}
