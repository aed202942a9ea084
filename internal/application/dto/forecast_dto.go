package dto

import "github.com/shopspring/decimal"

// ForecastDTO respuesta de GET /api/inventory/items/:itemId/forecast.
// days_remaining solo viene si days_state = NUMERIC; projected_exhaustion es fecha o centinela.
type ForecastDTO struct {
	ItemID              string          `json:"item_id"`
	ItemName            string          `json:"item_name"`
	SubjectID           string          `json:"subject_id,omitempty"`
	AsOf                string          `json:"as_of"`
	CurrentBalance      int64           `json:"current_balance"`
	DailyRate           decimal.Decimal `json:"daily_rate"`
	WindowDays          int             `json:"window_days"`
	DaysState           string          `json:"days_state"`
	DaysRemaining       *int            `json:"days_remaining,omitempty"`
	ProjectedExhaustion string          `json:"projected_exhaustion"`
	DaysWithoutStock    int             `json:"days_without_stock"`
	Tier                string          `json:"tier"`
}
