package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"inheritance-engine/internal/model"
	"inheritance-engine/internal/validation"
)

// calculation is the state of one pass over the rule chain.
type calculation struct {
	req       model.EstateRequest
	net       float64
	remaining float64
	result    model.DistributionResult
}

// steps run in this exact order; every step sees the remaining estate left
// by the ones before it.
var steps = []func(*calculation){
	(*calculation).bequest,
	(*calculation).warnings,
	(*calculation).husband,
	(*calculation).wife,
	(*calculation).father,
	(*calculation).mother,
	(*calculation).paternalGrandfather,
	(*calculation).maternalGrandmother,
	(*calculation).children,
	(*calculation).grandchildren,
	(*calculation).siblings,
	(*calculation).cousins,
}

// Compute distributes the net estate of req among the heir classes.
// Callers must validate req first; Compute never fails for valid input.
func Compute(req model.EstateRequest) model.DistributionResult {
	net := req.NetEstate()
	if net <= 0 {
		return model.DistributionResult{
			Allocations: []model.Allocation{},
			Notes:       []model.Note{{Kind: model.NoteError, Label: labelError, Text: textExhausted}},
		}
	}

	c := &calculation{
		req:       req,
		net:       net,
		remaining: net,
		result: model.DistributionResult{
			NetEstate:   net,
			Allocations: []model.Allocation{},
			Notes:       []model.Note{},
		},
	}
	for _, step := range steps {
		step(c)
	}
	return c.result
}

// Process validates req and, unless a critical issue is found, computes the
// distribution and wraps it with calculation metadata.
func Process(req model.EstateRequest) *model.CalculationResponse {
	start := time.Now()

	msgs := validation.Request(req)
	for i := range msgs {
		msgs[i].ID = i
	}
	if msgs == nil {
		msgs = []model.CalculationMessage{}
	}

	outcome := model.OutcomeSuccess
	var result model.DistributionResult
	// A rejected request is not echoed: it may hold values JSON cannot carry.
	echo := &req
	if model.HasCritical(msgs) {
		outcome = model.OutcomeFailure
		result = model.DistributionResult{Allocations: []model.Allocation{}, Notes: []model.Note{}}
		echo = nil
	} else {
		result = Compute(req)
		if result.Exhausted() {
			outcome = model.OutcomeExhausted
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     msgs,
			Request:      echo,
			Distribution: result,
			Amounts:      result.Amounts(),
			Fractions:    result.Fractions(),
			Percentages:  result.Percentages(),
			Explanations: result.Explanations(),
		},
	}
}

func (c *calculation) percent(amount float64) float64 {
	return amount / c.net * 100
}

func (c *calculation) award(class model.HeirClass, count int, each float64, fraction string) {
	c.result.Allocations = append(c.result.Allocations, model.Allocation{
		Class:      class,
		Count:      count,
		Amount:     each * float64(count),
		Each:       each,
		Fraction:   fraction,
		Percentage: c.percent(each),
	})
}

// fixed awards a single heir share of the net estate (not of the remainder).
func (c *calculation) fixed(class model.HeirClass, share float64, fraction string) {
	amount := c.net * share
	c.award(class, 1, amount, fraction)
	c.remaining -= amount
}

// splitResidue divides all of the remaining estate so that each male
// receives two parts and each female one. The remainder is exhausted.
func (c *calculation) splitResidue(male, female model.HeirClass, males, females int) {
	parts := 2*males + females
	if parts == 0 {
		return
	}
	perPart := c.remaining / float64(parts)
	if males > 0 {
		c.award(male, males, perPart*2, fmt.Sprintf("2/%d of residue", parts))
	}
	if females > 0 {
		c.award(female, females, perPart, fmt.Sprintf("1/%d of residue", parts))
	}
	c.remaining = 0
}

func (c *calculation) note(kind model.NoteKind, class model.HeirClass, label, text string) {
	c.result.Notes = append(c.result.Notes, model.Note{Kind: kind, Class: class, Label: label, Text: text})
}

func (c *calculation) rule(class model.HeirClass, label, text string) {
	c.note(model.NoteRule, class, label, text)
}

// block records why count heirs of class receive nothing. A later reason for
// the same class replaces the earlier one.
func (c *calculation) block(class model.HeirClass, count int, text string) {
	if count <= 0 {
		return
	}
	for i, n := range c.result.Notes {
		if n.Kind == model.NoteBlocked && n.Class == class {
			c.result.Notes[i].Text = text
			return
		}
	}
	c.note(model.NoteBlocked, class, class.Label(count), text)
}

func (c *calculation) noResidue(class model.HeirClass, count int) {
	if count <= 0 {
		return
	}
	c.note(model.NoteNoResidue, class, class.Label(count), textNoResidue)
}
