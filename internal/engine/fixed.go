package engine

import "inheritance-engine/internal/model"

func (c *calculation) bequest() {
	if !c.req.HasWill {
		return
	}
	amount := c.req.WillAmount
	if limit := c.net / 3; amount > limit {
		amount = limit
	}
	if amount <= 0 {
		return
	}
	c.award(model.HeirWill, 1, amount, "≤1/3")
	c.rule(model.HeirWill, labelWill, textWill)
	c.remaining -= amount
}

// warnings never change a share.
func (c *calculation) warnings() {
	if c.req.IsMurdererHeir {
		c.note(model.NoteWarning, "", labelMurderWarning, textMurderWarning)
	}
	if c.req.IsDifferentFaithHeir {
		c.note(model.NoteWarning, "", labelFaithWarning, textFaithWarning)
	}
}

func (c *calculation) husband() {
	if !c.req.HasSpouseHusband {
		return
	}
	if c.req.HasDescendants() {
		c.fixed(model.HeirHusband, 0.25, "1/4")
		c.rule(model.HeirHusband, labelHusband, textHusbandWithDescendants)
		return
	}
	c.fixed(model.HeirHusband, 0.5, "1/2")
	c.rule(model.HeirHusband, labelHusband, textHusbandAlone)
}

func (c *calculation) wife() {
	if !c.req.HasWife {
		return
	}
	if c.req.HasDescendants() {
		c.fixed(model.HeirWife, 0.125, "1/8")
		c.rule(model.HeirWife, labelWife, textWifeWithDescendants)
		return
	}
	c.fixed(model.HeirWife, 0.25, "1/4")
	c.rule(model.HeirWife, labelWife, textWifeAlone)
}

// father takes 1/6 when there are sons. Otherwise he absorbs whatever
// remains at this point, before the mother, grandparents and children.
func (c *calculation) father() {
	if !c.req.FatherAlive {
		return
	}
	if c.req.Sons > 0 {
		c.fixed(model.HeirFather, 1.0/6, "1/6")
		c.rule(model.HeirFather, labelFather, textFatherWithSons)
		return
	}
	c.award(model.HeirFather, 1, c.remaining, "residue")
	c.rule(model.HeirFather, labelFather, textFatherResidue)
	c.remaining = 0
}

func (c *calculation) mother() {
	if !c.req.MotherAlive {
		return
	}
	// Cousins count here as well as full siblings.
	if c.req.HasChildren() || c.req.HasSiblings() || c.req.HasCousins() {
		c.fixed(model.HeirMother, 1.0/6, "1/6")
		c.rule(model.HeirMother, labelMother, textMotherSixth)
		return
	}
	c.fixed(model.HeirMother, 1.0/3, "1/3")
	c.rule(model.HeirMother, labelMother, textMotherThird)
}

func (c *calculation) paternalGrandfather() {
	if !c.req.GrandfatherAlive {
		return
	}
	if c.req.FatherAlive {
		c.block(model.HeirPaternalGrandfather, 1, textBlockedByFather)
		return
	}
	c.fixed(model.HeirPaternalGrandfather, 1.0/6, "1/6")
	c.rule(model.HeirPaternalGrandfather, labelGrandfather, textGrandfather)
}

func (c *calculation) maternalGrandmother() {
	if !c.req.GrandmotherAlive {
		return
	}
	if c.req.MotherAlive {
		c.block(model.HeirMaternalGrandmother, 1, textBlockedByMother)
		return
	}
	c.fixed(model.HeirMaternalGrandmother, 1.0/6, "1/6")
	c.rule(model.HeirMaternalGrandmother, labelGrandmother, textGrandmother)
}
