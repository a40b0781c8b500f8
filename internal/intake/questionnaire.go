package intake

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"inheritance-engine/internal/model"
)

// Questionnaire collects an EstateRequest one answer at a time, asking again
// until each answer parses.
type Questionnaire struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

func NewQuestionnaire(in io.Reader, out io.Writer, logger *zap.Logger) *Questionnaire {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Questionnaire{in: bufio.NewScanner(in), out: out, logger: logger}
}

// Run asks every question in order. It stops with an error when the input
// ends or ctx is cancelled before all answers are collected.
func (q *Questionnaire) Run(ctx context.Context) (model.EstateRequest, error) {
	var req model.EstateRequest
	var err error

	if req.TotalEstate, err = ask(ctx, q, "Enter the total estate (a number):", ParsePositiveAmount); err != nil {
		return req, err
	}
	if req.Debts, err = ask(ctx, q, "Enter the total debts (0 if none):", ParseAmount); err != nil {
		return req, err
	}
	if req.HasWill, err = ask(ctx, q, "Did the deceased leave a will? (1 - yes, 0 - no)", ParseYesNo); err != nil {
		return req, err
	}
	if req.HasWill {
		if req.WillAmount, err = ask(ctx, q, "What amount does the will bequeath? (up to 1/3 of the estate)", ParseAmount); err != nil {
			return req, err
		}
		if limit := req.NetEstate() / 3; req.WillAmount > limit {
			q.printf("Warning: a bequest may not exceed 1/3 of the estate. It is limited to %.2f.\n", limit)
			req.WillAmount = limit
		}
	}

	yesNo := []struct {
		prompt string
		dst    *bool
	}{
		{"Did one of the heirs take the life of the deceased? (1 - yes, 0 - no)", &req.IsMurdererHeir},
		{"Is any heir of a different faith? (1 - yes, 0 - no)", &req.IsDifferentFaithHeir},
		{"Is there a surviving husband? (1 - yes, 0 - no)", &req.HasSpouseHusband},
		{"Is there a surviving wife? (1 - yes, 0 - no)", &req.HasWife},
	}
	for _, p := range yesNo {
		if *p.dst, err = ask(ctx, q, p.prompt, ParseYesNo); err != nil {
			return req, err
		}
	}

	questions := []struct {
		prompt string
		count  *int
		alive  *bool
	}{
		{prompt: "How many daughters?", count: &req.Daughters},
		{prompt: "How many sons?", count: &req.Sons},
		{prompt: "How many granddaughters (children of sons)?", count: &req.Granddaughters},
		{prompt: "How many grandsons (children of sons)?", count: &req.Grandsons},
		{prompt: "Is the father alive? (1 - yes, 0 - no)", alive: &req.FatherAlive},
		{prompt: "Is the mother alive? (1 - yes, 0 - no)", alive: &req.MotherAlive},
		{prompt: "Is the paternal grandfather alive? (1 - yes, 0 - no)", alive: &req.GrandfatherAlive},
		{prompt: "Is the maternal grandmother alive? (1 - yes, 0 - no)", alive: &req.GrandmotherAlive},
		{prompt: "How many full sisters?", count: &req.SiblingsSisters},
		{prompt: "How many full brothers?", count: &req.SiblingsBrothers},
		{prompt: "How many female cousins?", count: &req.CousinsSisters},
		{prompt: "How many male cousins?", count: &req.CousinsBrothers},
	}
	for _, p := range questions {
		if p.count != nil {
			*p.count, err = ask(ctx, q, p.prompt, ParseCount)
		} else {
			*p.alive, err = ask(ctx, q, p.prompt, ParseYesNo)
		}
		if err != nil {
			return req, err
		}
	}

	return req, nil
}

func ask[T any](ctx context.Context, q *Questionnaire, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	q.printf("%s\n", prompt)
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if !q.in.Scan() {
			if err := q.in.Err(); err != nil {
				return zero, fmt.Errorf("read answer: %w", err)
			}
			return zero, fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		v, err := parse(q.in.Text())
		if err == nil {
			return v, nil
		}
		q.logger.Debug("rejected answer", zap.String("prompt", prompt), zap.Error(err))
		q.printf("Error: %v. Please try again:\n", err)
	}
}

func (q *Questionnaire) printf(format string, args ...any) {
	fmt.Fprintf(q.out, format, args...)
}
