package engine

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inheritance-engine/internal/model"
)

const tolerance = 1e-6

func mustAllocation(t *testing.T, res model.DistributionResult, class model.HeirClass) model.Allocation {
	t.Helper()
	a, ok := res.Allocation(class)
	require.Truef(t, ok, "expected an allocation for %s", class)
	return a
}

func TestWifeSonAndDaughter(t *testing.T) {
	res := Compute(model.EstateRequest{
		TotalEstate: 900000,
		HasWife:     true,
		Sons:        1,
		Daughters:   1,
	})

	wife := mustAllocation(t, res, model.HeirWife)
	son := mustAllocation(t, res, model.HeirSon)
	daughter := mustAllocation(t, res, model.HeirDaughter)

	assert.Equal(t, 112500.0, wife.Amount)
	assert.Equal(t, "1/8", wife.Fraction)
	assert.Equal(t, 525000.0, son.Amount)
	assert.Equal(t, "2/3 of residue", son.Fraction)
	assert.Equal(t, 262500.0, daughter.Amount)
	assert.Equal(t, "1/3 of residue", daughter.Fraction)
	assert.Equal(t, 900000.0, res.Total())

	amounts := res.Amounts()
	assert.Equal(t, map[string]float64{"Wife": 112500, "Son": 525000, "Daughter": 262500}, amounts)
	assert.InDelta(t, 12.5, res.Percentages()["Wife"], tolerance)
	assert.Contains(t, res.Explanations(), "About the wife's share")
	assert.Contains(t, res.Explanations(), "About the children's share")
}

func TestExhaustedEstate(t *testing.T) {
	for _, debts := range []float64{1000, 1500} {
		res := Compute(model.EstateRequest{TotalEstate: 1000, Debts: debts, HasWife: true, Sons: 2})

		assert.True(t, res.Exhausted())
		assert.Empty(t, res.Amounts())
		assert.Empty(t, res.Fractions())
		assert.Empty(t, res.Percentages())
		require.Len(t, res.Notes, 1)
		assert.Equal(t, model.NoteError, res.Notes[0].Kind)
		assert.Len(t, res.Explanations(), 1)
	}
}

func TestBequest(t *testing.T) {
	tests := []struct {
		name     string
		req      model.EstateRequest
		expected float64
		present  bool
	}{
		{"capped at a third", model.EstateRequest{TotalEstate: 1000, Debts: 100, HasWill: true, WillAmount: 600}, 300, true},
		{"below the cap", model.EstateRequest{TotalEstate: 900, HasWill: true, WillAmount: 100}, 100, true},
		{"zero amount", model.EstateRequest{TotalEstate: 900, HasWill: true}, 0, false},
		{"amount without will", model.EstateRequest{TotalEstate: 900, WillAmount: 100}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Compute(tt.req)
			will, ok := res.Allocation(model.HeirWill)
			require.Equal(t, tt.present, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.expected, will.Amount)
			assert.Equal(t, "≤1/3", res.Fractions()["Bequest (wasiyya)"])
			assert.Contains(t, res.Percentages(), "Bequest (wasiyya)")
			assert.Contains(t, res.Explanations(), "About the bequest (wasiyya)")
		})
	}
}

func TestBequestReducesResidue(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 900, HasWill: true, WillAmount: 300, Sons: 1})

	son := mustAllocation(t, res, model.HeirSon)
	assert.Equal(t, 600.0, son.Amount)
	assert.Equal(t, 900.0, res.Total())
}

func TestSpouseShares(t *testing.T) {
	tests := []struct {
		name     string
		req      model.EstateRequest
		class    model.HeirClass
		amount   float64
		fraction string
	}{
		{"husband without descendants", model.EstateRequest{TotalEstate: 1000, HasSpouseHusband: true}, model.HeirHusband, 500, "1/2"},
		{"husband with a granddaughter", model.EstateRequest{TotalEstate: 1000, HasSpouseHusband: true, Granddaughters: 1}, model.HeirHusband, 250, "1/4"},
		{"wife without descendants", model.EstateRequest{TotalEstate: 1000, HasWife: true}, model.HeirWife, 250, "1/4"},
		{"wife with a daughter", model.EstateRequest{TotalEstate: 1000, HasWife: true, Daughters: 1}, model.HeirWife, 125, "1/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustAllocation(t, Compute(tt.req), tt.class)
			assert.Equal(t, tt.amount, a.Amount)
			assert.Equal(t, tt.fraction, a.Fraction)
		})
	}
}

func TestHusbandAndWifeBothApply(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 1000, HasSpouseHusband: true, HasWife: true})

	assert.Equal(t, 500.0, mustAllocation(t, res, model.HeirHusband).Amount)
	assert.Equal(t, 250.0, mustAllocation(t, res, model.HeirWife).Amount)
}

func TestFatherWithSonsTakesSixth(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 1200, FatherAlive: true, Sons: 2})

	father := mustAllocation(t, res, model.HeirFather)
	assert.InDelta(t, 200.0, father.Amount, tolerance)
	assert.Equal(t, "1/6", father.Fraction)

	sons := mustAllocation(t, res, model.HeirSon)
	assert.InDelta(t, 1000.0, sons.Amount, tolerance)
	assert.InDelta(t, 500.0, sons.Each, tolerance)
}

func TestFatherWithoutSonsTakesRemainingBeforeMother(t *testing.T) {
	res := Compute(model.EstateRequest{
		TotalEstate:      1200,
		HasSpouseHusband: true,
		FatherAlive:      true,
		MotherAlive:      true,
		Daughters:        1,
	})

	father := mustAllocation(t, res, model.HeirFather)
	// Only the husband's 1/4 was deducted before the father.
	assert.Equal(t, 900.0, father.Amount)
	assert.Equal(t, "residue", father.Fraction)
	assert.InDelta(t, 75.0, father.Percentage, tolerance)

	mother := mustAllocation(t, res, model.HeirMother)
	assert.InDelta(t, 200.0, mother.Amount, tolerance)

	// The daughter splits what is left after the father, which the mother overdrew.
	daughter := mustAllocation(t, res, model.HeirDaughter)
	assert.InDelta(t, -200.0, daughter.Amount, tolerance)
}

func TestMotherShare(t *testing.T) {
	tests := []struct {
		name     string
		req      model.EstateRequest
		amount   float64
		fraction string
	}{
		{"alone", model.EstateRequest{TotalEstate: 600, MotherAlive: true}, 200, "1/3"},
		{"with a son", model.EstateRequest{TotalEstate: 600, MotherAlive: true, Sons: 1}, 100, "1/6"},
		{"with a sister", model.EstateRequest{TotalEstate: 600, MotherAlive: true, SiblingsSisters: 1}, 100, "1/6"},
		{"with a cousin", model.EstateRequest{TotalEstate: 600, MotherAlive: true, CousinsBrothers: 1}, 100, "1/6"},
		{"with a grandson only", model.EstateRequest{TotalEstate: 600, MotherAlive: true, Grandsons: 1}, 200, "1/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mother := mustAllocation(t, Compute(tt.req), model.HeirMother)
			assert.InDelta(t, tt.amount, mother.Amount, tolerance)
			assert.Equal(t, tt.fraction, mother.Fraction)
		})
	}
}

func TestGrandfatherBlockedByFather(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 1000, FatherAlive: true, GrandfatherAlive: true})

	_, ok := res.Allocation(model.HeirPaternalGrandfather)
	assert.False(t, ok)
	assert.NotContains(t, res.Amounts(), "Grandfather (paternal)")

	note, ok := res.Note(model.NoteBlocked, model.HeirPaternalGrandfather)
	require.True(t, ok)
	assert.Equal(t, "Grandfather (paternal)", note.Label)
	assert.Contains(t, res.Explanations(), "Grandfather (paternal)")
}

func TestGrandparentsInheritWithoutParents(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 600, GrandfatherAlive: true, GrandmotherAlive: true, Sons: 1})

	assert.InDelta(t, 100.0, mustAllocation(t, res, model.HeirPaternalGrandfather).Amount, tolerance)
	assert.InDelta(t, 100.0, mustAllocation(t, res, model.HeirMaternalGrandmother).Amount, tolerance)
	assert.InDelta(t, 400.0, mustAllocation(t, res, model.HeirSon).Amount, tolerance)
}

func TestGrandmotherBlockedByMother(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 600, MotherAlive: true, GrandmotherAlive: true})

	_, ok := res.Allocation(model.HeirMaternalGrandmother)
	assert.False(t, ok)
	_, ok = res.Note(model.NoteBlocked, model.HeirMaternalGrandmother)
	assert.True(t, ok)
}

func TestChildrenSplitTwoToOne(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 1200, MotherAlive: true, Sons: 3, Daughters: 2})

	sons := mustAllocation(t, res, model.HeirSon)
	daughters := mustAllocation(t, res, model.HeirDaughter)

	assert.Equal(t, daughters.Each, sons.Each/2)
	assert.InDelta(t, 1000.0, sons.Amount+daughters.Amount, tolerance)
	assert.Equal(t, "2/8 of residue", sons.Fraction)
	assert.Equal(t, "1/8 of residue", daughters.Fraction)

	amounts := res.Amounts()
	assert.InDelta(t, 750.0, amounts["Sons (3)"], tolerance)
	assert.InDelta(t, 250.0, amounts["Each son"], tolerance)
	assert.InDelta(t, 250.0, amounts["Daughters (2)"], tolerance)
	assert.InDelta(t, 125.0, amounts["Each daughter"], tolerance)
	assert.Equal(t, "2/8 of residue", res.Fractions()["Each son"])
	assert.NotContains(t, res.Fractions(), "Sons (3)")
}

func TestGrandchildren(t *testing.T) {
	t.Run("blocked by children", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, Sons: 1, Grandsons: 2, Granddaughters: 1})

		_, ok := res.Allocation(model.HeirGrandson)
		assert.False(t, ok)
		explanations := res.Explanations()
		assert.Contains(t, explanations, "Grandsons (2)")
		assert.Contains(t, explanations, "Granddaughter")
	})

	t.Run("take the residue without children", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 800, HasWife: true, Grandsons: 1, Granddaughters: 1})

		assert.Equal(t, 100.0, mustAllocation(t, res, model.HeirWife).Amount)
		grandson := mustAllocation(t, res, model.HeirGrandson)
		granddaughter := mustAllocation(t, res, model.HeirGranddaughter)
		assert.InDelta(t, 466.6667, grandson.Amount, 1e-3)
		assert.InDelta(t, 233.3333, granddaughter.Amount, 1e-3)
		assert.InDelta(t, 800.0, res.Total(), tolerance)
	})

	t.Run("nothing left after the father", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 800, FatherAlive: true, Grandsons: 1})

		assert.Equal(t, 800.0, mustAllocation(t, res, model.HeirFather).Amount)
		_, ok := res.Allocation(model.HeirGrandson)
		assert.False(t, ok)
		_, ok = res.Note(model.NoteNoResidue, model.HeirGrandson)
		assert.True(t, ok)
	})
}

func TestSiblingsBlockedByDescendants(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 1000, Granddaughters: 1, SiblingsBrothers: 2, SiblingsSisters: 1})

	_, ok := res.Allocation(model.HeirFullBrother)
	assert.False(t, ok)
	explanations := res.Explanations()
	assert.Equal(t, textBlockedByDescendants, explanations["Full brothers (2)"])
	assert.Equal(t, textBlockedByDescendants, explanations["Full sister"])
}

func TestSiblingsSplitResidue(t *testing.T) {
	res := Compute(model.EstateRequest{TotalEstate: 1000, HasWife: true, SiblingsBrothers: 1, SiblingsSisters: 1})

	assert.Equal(t, 250.0, mustAllocation(t, res, model.HeirWife).Amount)
	assert.Equal(t, 500.0, mustAllocation(t, res, model.HeirFullBrother).Amount)
	assert.Equal(t, 250.0, mustAllocation(t, res, model.HeirFullSister).Amount)
	assert.Contains(t, res.Explanations(), "About the siblings' share")
}

func TestSpecialSisterRule(t *testing.T) {
	t.Run("one sister", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, SiblingsSisters: 1})

		sister := mustAllocation(t, res, model.HeirFullSister)
		assert.Equal(t, 500.0, sister.Amount)
		assert.Equal(t, "1/2", res.Fractions()["Full sister"])
		assert.Contains(t, res.Explanations(), "About the sisters' share")
	})

	t.Run("two sisters", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, SiblingsSisters: 2})

		sisters := mustAllocation(t, res, model.HeirFullSister)
		assert.InDelta(t, 333.33, sisters.Each, 0.01)
		assert.InDelta(t, 666.67, sisters.Amount, 0.01)
		assert.Equal(t, "2/3 split among 2", res.Fractions()["Each full sister"])
		assert.InDelta(t, 33.33, res.Percentages()["Each full sister"], 0.01)
		assert.InDelta(t, 333.33, res.Amounts()["Each full sister"], 0.01)
	})

	t.Run("computed from the net estate", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1200, HasSpouseHusband: true, MotherAlive: true, SiblingsSisters: 1})

		assert.Equal(t, 600.0, mustAllocation(t, res, model.HeirHusband).Amount)
		assert.InDelta(t, 200.0, mustAllocation(t, res, model.HeirMother).Amount, tolerance)
		assert.Equal(t, 600.0, mustAllocation(t, res, model.HeirFullSister).Amount)
	})

	t.Run("not with a living father", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, FatherAlive: true, SiblingsSisters: 1})

		assert.Equal(t, 1000.0, mustAllocation(t, res, model.HeirFather).Amount)
		_, ok := res.Allocation(model.HeirFullSister)
		assert.False(t, ok)
		_, ok = res.Note(model.NoteNoResidue, model.HeirFullSister)
		assert.True(t, ok)
	})

	t.Run("not with a brother", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 900, SiblingsBrothers: 1, SiblingsSisters: 1})

		assert.Equal(t, 600.0, mustAllocation(t, res, model.HeirFullBrother).Amount)
		assert.Equal(t, 300.0, mustAllocation(t, res, model.HeirFullSister).Amount)
	})
}

func TestCousins(t *testing.T) {
	t.Run("take the residue", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, HasSpouseHusband: true, CousinsBrothers: 1, CousinsSisters: 2})

		assert.Equal(t, 500.0, mustAllocation(t, res, model.HeirHusband).Amount)
		brother := mustAllocation(t, res, model.HeirCousinBrother)
		sisters := mustAllocation(t, res, model.HeirCousinSister)
		assert.Equal(t, 250.0, brother.Amount)
		assert.Equal(t, 125.0, sisters.Each)
		assert.Equal(t, "1/4 of residue", sisters.Fraction)
		assert.Equal(t, 1000.0, res.Total())
	})

	t.Run("take what the sister rule leaves", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, SiblingsSisters: 1, CousinsBrothers: 1})

		assert.Equal(t, 500.0, mustAllocation(t, res, model.HeirFullSister).Amount)
		assert.Equal(t, 500.0, mustAllocation(t, res, model.HeirCousinBrother).Amount)
		assert.Equal(t, 1000.0, res.Total())
		_, blocked := res.Note(model.NoteBlocked, model.HeirCousinBrother)
		assert.False(t, blocked)
		assert.Equal(t, textCousinsAfterSisters, res.Explanations()["Male cousin"])
	})

	t.Run("share what two sisters leave", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 900, SiblingsSisters: 2, CousinsBrothers: 1, CousinsSisters: 1})

		assert.InDelta(t, 600.0, mustAllocation(t, res, model.HeirFullSister).Amount, tolerance)
		assert.InDelta(t, 200.0, mustAllocation(t, res, model.HeirCousinBrother).Amount, tolerance)
		assert.InDelta(t, 100.0, mustAllocation(t, res, model.HeirCousinSister).Amount, tolerance)
		assert.InDelta(t, 900.0, res.Total(), tolerance)
	})

	t.Run("blocked once brothers take the residue", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, SiblingsBrothers: 1, CousinsBrothers: 2})

		assert.Equal(t, 1000.0, mustAllocation(t, res, model.HeirFullBrother).Amount)
		_, ok := res.Allocation(model.HeirCousinBrother)
		assert.False(t, ok)
		assert.Equal(t, textBlockedBySiblings, res.Explanations()["Male cousins (2)"])
	})

	t.Run("blocked when a living father takes the residue", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, FatherAlive: true, SiblingsSisters: 1, CousinsSisters: 1})

		_, ok := res.Allocation(model.HeirCousinSister)
		assert.False(t, ok)
		assert.Equal(t, textBlockedBySiblings, res.Explanations()["Female cousin"])
	})

	t.Run("nothing left without siblings", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, FatherAlive: true, CousinsBrothers: 1})

		_, ok := res.Note(model.NoteNoResidue, model.HeirCousinBrother)
		assert.True(t, ok)
	})

	t.Run("siblings reason replaces descendants reason", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, Sons: 1, SiblingsSisters: 1, CousinsSisters: 1})

		var blocked int
		for _, n := range res.Notes {
			if n.Kind == model.NoteBlocked && n.Class == model.HeirCousinSister {
				blocked++
				assert.Equal(t, textBlockedBySiblings, n.Text)
			}
		}
		assert.Equal(t, 1, blocked)
	})

	t.Run("blocked by descendants", func(t *testing.T) {
		res := Compute(model.EstateRequest{TotalEstate: 1000, Daughters: 1, CousinsBrothers: 1})

		assert.Equal(t, textBlockedByDescendants, res.Explanations()["Male cousin"])
	})
}

func TestWarningsDoNotChangeShares(t *testing.T) {
	req := model.EstateRequest{TotalEstate: 5000, HasWife: true, FatherAlive: true, Sons: 2, Daughters: 1}
	plain := Compute(req)

	req.IsMurdererHeir = true
	req.IsDifferentFaithHeir = true
	flagged := Compute(req)

	assert.Equal(t, plain.Allocations, flagged.Allocations)
	explanations := flagged.Explanations()
	assert.Equal(t, textMurderWarning, explanations["Warning"])
	assert.Equal(t, textFaithWarning, explanations["Faith warning"])
	assert.NotContains(t, plain.Explanations(), "Warning")
}

func TestPercentagesFollowAmounts(t *testing.T) {
	res := Compute(model.EstateRequest{
		TotalEstate:      7300,
		Debts:            100,
		HasWill:          true,
		WillAmount:       1000,
		HasWife:          true,
		MotherAlive:      true,
		GrandfatherAlive: true,
		Sons:             2,
		Daughters:        3,
	})

	for _, a := range res.Allocations {
		assert.InDeltaf(t, a.Each/res.NetEstate*100, a.Percentage, tolerance, "percentage of %s", a.Class)
	}
}

func TestTotalNeverExceedsNet(t *testing.T) {
	reqs := []model.EstateRequest{
		{TotalEstate: 900000, HasWife: true, Sons: 1, Daughters: 1},
		{TotalEstate: 1000, HasWill: true, WillAmount: 2000, Sons: 2, Daughters: 3, FatherAlive: true, MotherAlive: true},
		{TotalEstate: 1000, HasSpouseHusband: true, Grandsons: 3, Granddaughters: 1},
		{TotalEstate: 777, Debts: 77, SiblingsBrothers: 3, SiblingsSisters: 4, CousinsBrothers: 2},
		{TotalEstate: 1000, HasWife: true, SiblingsSisters: 3},
		{TotalEstate: 1000, HasWife: true, SiblingsSisters: 1, CousinsBrothers: 2, CousinsSisters: 1},
		{TotalEstate: 1000, CousinsBrothers: 1, CousinsSisters: 1, GrandmotherAlive: true},
	}

	for _, req := range reqs {
		res := Compute(req)
		assert.LessOrEqual(t, res.Total(), req.NetEstate()+tolerance)
	}
}

func TestProcess(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		resp := Process(model.EstateRequest{TotalEstate: 900000, HasWife: true, Sons: 1, Daughters: 1})

		assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
		_, err := uuid.Parse(resp.CalculationMetadata.CalculationID)
		assert.NoError(t, err)
		assert.Empty(t, resp.CalculationResult.Messages)
		assert.Equal(t, 525000.0, resp.CalculationResult.Amounts["Son"])
		assert.Equal(t, "1/8", resp.CalculationResult.Fractions["Wife"])
		require.NotNil(t, resp.CalculationResult.Request)
		assert.Equal(t, 1, resp.CalculationResult.Request.Sons)
	})

	t.Run("exhausted", func(t *testing.T) {
		resp := Process(model.EstateRequest{TotalEstate: 100, Debts: 250})

		assert.Equal(t, model.OutcomeExhausted, resp.CalculationMetadata.CalculationOutcome)
		assert.Empty(t, resp.CalculationResult.Amounts)
		assert.Len(t, resp.CalculationResult.Explanations, 1)
	})

	t.Run("invalid", func(t *testing.T) {
		resp := Process(model.EstateRequest{TotalEstate: 100, Sons: -1})

		assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
		require.Len(t, resp.CalculationResult.Messages, 1)
		assert.Equal(t, "NEGATIVE_COUNT", resp.CalculationResult.Messages[0].Code)
		assert.Empty(t, resp.CalculationResult.Distribution.Allocations)
	})

	t.Run("non-finite estate", func(t *testing.T) {
		resp := Process(model.EstateRequest{TotalEstate: math.Inf(1), Sons: 1})

		assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
		require.Len(t, resp.CalculationResult.Messages, 1)
		assert.Equal(t, "INVALID_AMOUNT", resp.CalculationResult.Messages[0].Code)
		assert.Nil(t, resp.CalculationResult.Request)
		assert.Empty(t, resp.CalculationResult.Amounts)
	})

	t.Run("capped will is reported", func(t *testing.T) {
		resp := Process(model.EstateRequest{TotalEstate: 900, HasWill: true, WillAmount: 500})

		require.Len(t, resp.CalculationResult.Messages, 1)
		assert.Equal(t, "WILL_CAPPED", resp.CalculationResult.Messages[0].Code)
		assert.Equal(t, 300.0, resp.CalculationResult.Amounts["Bequest (wasiyya)"])
	})
}
