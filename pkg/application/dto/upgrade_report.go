package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

// UpgradeReport contains the complete output of an upgrade planning run
type UpgradeReport struct {
	ID                uuid.UUID                   `json:"id"`
	Bike              entities.Bike               `json:"bike"`
	Budget            decimal.Decimal             `json:"budget"`
	Upgrades          []entities.Part             `json:"upgrades"`
	Skipped           []entities.Part             `json:"skipped"`
	RemainingBudget   decimal.Decimal             `json:"remaining_budget"`
	UpgradeSpend      decimal.Decimal             `json:"upgrade_spend"`
	Metrics           entities.PerformanceMetrics `json:"metrics"`
	StageSummaries    []StageSummary              `json:"stage_summaries"`
	TotalInstallHours float64                     `json:"total_install_hours"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

// StageSummary aggregates the selected upgrades of one stage
type StageSummary struct {
	Stage  entities.Stage  `json:"stage"`
	Parts  int             `json:"parts"`
	Spend  decimal.Decimal `json:"spend"`
	HPGain float64         `json:"hp_gain"`
}
