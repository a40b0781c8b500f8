package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage `json:"messages"`
	Request      *EstateRequest       `json:"request,omitempty"`
	Distribution DistributionResult   `json:"distribution"`
	Amounts      map[string]float64   `json:"amounts"`
	Fractions    map[string]string    `json:"fractions"`
	Percentages  map[string]float64   `json:"percentages"`
	Explanations map[string]string    `json:"explanations"`
}

type ErrorResponse struct {
	Status   int                  `json:"status"`
	Message  string               `json:"message"`
	Messages []CalculationMessage `json:"messages,omitempty"`
}

const (
	OutcomeSuccess   = "SUCCESS"
	OutcomeExhausted = "EXHAUSTED"
	OutcomeFailure   = "FAILURE"
)
