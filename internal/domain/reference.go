package domain

import (
	"time"

	"github.com/google/uuid"
)

// PipelineStage is one ordered step of the deal pipeline. Order is unique and
// only compared, never used for arithmetic beyond appending max+1.
type PipelineStage struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Order       int       `json:"order"`
	Color       string    `json:"color"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StageUpdateParams is a partial stage update. Order is not editable.
type StageUpdateParams struct {
	Name        *string
	Color       *string
	Description *string
}

// Industry groups companies by sector.
type Industry struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	SubIndustries []SubIndustry `json:"subIndustries"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// SubIndustry refines an Industry.
type SubIndustry struct {
	ID         uuid.UUID `json:"id"`
	IndustryID uuid.UUID `json:"industryId"`
	Name       string    `json:"name"`
}

// DealSourceName is a named person or firm a deal came from.
type DealSourceName struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RejectionCategory is the first level of the rejection taxonomy.
type RejectionCategory struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	SubReasons []RejectionSubReason `json:"subReasons"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// RejectionSubReason is the second level of the rejection taxonomy.
type RejectionSubReason struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
}

// LowestStage returns the stage with the smallest order, or nil for an empty list.
func LowestStage(stages []PipelineStage) *PipelineStage {
	var lowest *PipelineStage
	for i := range stages {
		if lowest == nil || stages[i].Order < lowest.Order {
			lowest = &stages[i]
		}
	}
	return lowest
}

// NextStageOrder returns max(order)+1, starting at 1 for an empty pipeline.
func NextStageOrder(stages []PipelineStage) int {
	maxOrder := 0
	for _, s := range stages {
		if s.Order > maxOrder {
			maxOrder = s.Order
		}
	}
	return maxOrder + 1
}
