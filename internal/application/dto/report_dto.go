package dto

import "github.com/shopspring/decimal"

// StockReportDTO respuesta de GET /api/reports/stock.
type StockReportDTO struct {
	AsOf        string            `json:"as_of"`
	WindowDays  int               `json:"window_days"`
	Rows        []StockRowDTO     `json:"rows"`
	TopConsumed []ConsumedItemDTO `json:"top_consumed"`
	TierCounts  map[string]int    `json:"tier_counts"`
}

// StockRowDTO fila del reporte de stock por artículo.
type StockRowDTO struct {
	ItemID           string          `json:"item_id"`
	ItemName         string          `json:"item_name"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	InCatalog        bool            `json:"in_catalog"`
	FacilityBalance  int64           `json:"facility_balance"`
	TotalAllocated   int64           `json:"total_allocated"`
	MinimumThreshold int64           `json:"minimum_threshold"`
	BelowThreshold   bool            `json:"below_threshold"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	Tier             string          `json:"tier"`
	DaysRemaining    *int            `json:"days_remaining,omitempty"`
	Exhaustion       string          `json:"projected_exhaustion"`
}

// ConsumedItemDTO artículo con más salidas del stock general en la ventana.
type ConsumedItemDTO struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	TotalOut decimal.Decimal `json:"total_out"`
}
