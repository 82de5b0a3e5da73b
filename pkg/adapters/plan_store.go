package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/venture-tools/plan-atlas/pkg/models/api"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/models/store"
)

// MapPlanDomainToStore serializes the plan body into the record payload.
// The API shape is reused as the payload format so stored plans parse
// with the same leniency as submitted ones.
func MapPlanDomainToStore(plan domain.Plan) (store.PlanRecord, error) {
	payload, err := json.Marshal(MapPlanDomainToApi(plan))
	if err != nil {
		return store.PlanRecord{}, fmt.Errorf("marshal plan payload: %w", err)
	}

	return store.PlanRecord{
		ID:        plan.ID,
		Name:      plan.Name,
		Company:   plan.Company.Name,
		Payload:   payload,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}, nil
}

func MapPlanStoreToDomain(record store.PlanRecord) (domain.Plan, error) {
	var p api.Plan
	if err := json.Unmarshal(record.Payload, &p); err != nil {
		return domain.Plan{}, fmt.Errorf("decode plan payload: %w", err)
	}

	plan := MapPlanApiToDomain(p)
	plan.ID = record.ID
	plan.Name = record.Name
	plan.CreatedAt = record.CreatedAt
	plan.UpdatedAt = record.UpdatedAt
	return plan, nil
}
