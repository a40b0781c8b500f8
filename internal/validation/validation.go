package validation

import (
	"fmt"
	"math"

	"inheritance-engine/internal/model"
)

// Request checks the invariants the distribution engine relies on. Any
// CRITICAL message means the request must not be computed.
func Request(req model.EstateRequest) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	for _, a := range amounts(req) {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    "INVALID_AMOUNT",
				Message: fmt.Sprintf("%s must be a finite number", a.name),
			})
		}
	}
	if model.HasCritical(msgs) {
		return msgs
	}

	if req.TotalEstate <= 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "INVALID_TOTAL_ESTATE",
			Message: "Total estate must be positive",
		})
	}

	if req.Debts < 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "NEGATIVE_DEBTS",
			Message: "Debts cannot be negative",
		})
	}

	if req.HasWill && req.WillAmount < 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "NEGATIVE_WILL_AMOUNT",
			Message: "Will amount cannot be negative",
		})
	}

	for _, c := range counts(req) {
		if c.value < 0 {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    "NEGATIVE_COUNT",
				Message: fmt.Sprintf("%s cannot be negative", c.name),
			})
		}
	}

	if model.HasCritical(msgs) {
		return msgs
	}

	// The engine caps the bequest itself; this only tells the caller.
	if req.HasWill {
		if limit := req.NetEstate() / 3; req.WillAmount > limit {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "WILL_CAPPED",
				Message: fmt.Sprintf("A bequest may not exceed 1/3 of the net estate; %.2f will be used instead of %.2f", limit, req.WillAmount),
			})
		}
	}

	return msgs
}

type namedAmount struct {
	name  string
	value float64
}

// amounts lists the money fields the engine reads. The will amount only
// counts when there is a will.
func amounts(req model.EstateRequest) []namedAmount {
	out := []namedAmount{
		{"total_estate", req.TotalEstate},
		{"debts", req.Debts},
	}
	if req.HasWill {
		out = append(out, namedAmount{"will_amount", req.WillAmount})
	}
	return out
}

type namedCount struct {
	name  string
	value int
}

func counts(req model.EstateRequest) []namedCount {
	return []namedCount{
		{"sons", req.Sons},
		{"daughters", req.Daughters},
		{"grandsons", req.Grandsons},
		{"granddaughters", req.Granddaughters},
		{"siblings_brothers", req.SiblingsBrothers},
		{"siblings_sisters", req.SiblingsSisters},
		{"cousins_brothers", req.CousinsBrothers},
		{"cousins_sisters", req.CousinsSisters},
	}
}
