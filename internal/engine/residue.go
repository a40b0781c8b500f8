package engine

import (
	"fmt"

	"inheritance-engine/internal/model"
)

// children split the whole remainder 2:1, even when it is zero or negative.
func (c *calculation) children() {
	if !c.req.HasChildren() {
		return
	}
	c.rule("", labelChildren, textChildren)
	c.splitResidue(model.HeirSon, model.HeirDaughter, c.req.Sons, c.req.Daughters)
}

func (c *calculation) grandchildren() {
	r := c.req
	if r.HasChildren() {
		c.block(model.HeirGrandson, r.Grandsons, textBlockedByChildren)
		c.block(model.HeirGranddaughter, r.Granddaughters, textBlockedByChildren)
		return
	}
	if r.Grandsons == 0 && r.Granddaughters == 0 {
		return
	}
	if c.remaining <= 0 {
		c.noResidue(model.HeirGrandson, r.Grandsons)
		c.noResidue(model.HeirGranddaughter, r.Granddaughters)
		return
	}
	c.rule("", labelGrandchildren, textGrandchildren)
	c.splitResidue(model.HeirGrandson, model.HeirGranddaughter, r.Grandsons, r.Granddaughters)
}

func (c *calculation) siblings() {
	r := c.req
	if !r.HasSiblings() {
		return
	}
	if r.HasDescendants() {
		c.block(model.HeirFullBrother, r.SiblingsBrothers, textBlockedByDescendants)
		c.block(model.HeirFullSister, r.SiblingsSisters, textBlockedByDescendants)
		return
	}
	if c.remaining <= 0 {
		c.noResidue(model.HeirFullBrother, r.SiblingsBrothers)
		c.noResidue(model.HeirFullSister, r.SiblingsSisters)
		return
	}
	if r.SiblingsBrothers == 0 && !r.FatherAlive {
		c.sisters()
		return
	}
	c.rule("", labelSiblings, textSiblings)
	c.splitResidue(model.HeirFullBrother, model.HeirFullSister, r.SiblingsBrothers, r.SiblingsSisters)
}

// sisters applies the fixed shares for full sisters without brothers,
// descendants or father: 1/2 for one, 2/3 shared evenly among several.
// Both come from the net estate, not from the remainder.
func (c *calculation) sisters() {
	n := c.req.SiblingsSisters
	c.rule(model.HeirFullSister, labelSisters, textSisters)
	if n == 1 {
		c.fixed(model.HeirFullSister, 0.5, "1/2")
		return
	}
	total := c.net * 2 / 3
	c.award(model.HeirFullSister, n, total/float64(n), fmt.Sprintf("2/3 split among %d", n))
	c.remaining -= total
}

// cousins take whatever the siblings left. Full brothers always exhaust the
// remainder; full sisters under the fixed-share rule may leave some over.
func (c *calculation) cousins() {
	r := c.req
	if !r.HasCousins() {
		return
	}
	if r.HasDescendants() {
		c.block(model.HeirCousinBrother, r.CousinsBrothers, textBlockedByDescendants)
		c.block(model.HeirCousinSister, r.CousinsSisters, textBlockedByDescendants)
		if r.HasSiblings() {
			c.block(model.HeirCousinBrother, r.CousinsBrothers, textBlockedBySiblings)
			c.block(model.HeirCousinSister, r.CousinsSisters, textBlockedBySiblings)
		}
		return
	}
	if c.remaining <= 0 {
		if r.HasSiblings() {
			c.block(model.HeirCousinBrother, r.CousinsBrothers, textBlockedBySiblings)
			c.block(model.HeirCousinSister, r.CousinsSisters, textBlockedBySiblings)
			return
		}
		c.noResidue(model.HeirCousinBrother, r.CousinsBrothers)
		c.noResidue(model.HeirCousinSister, r.CousinsSisters)
		return
	}
	c.rule("", labelCousins, textCousins)
	c.splitResidue(model.HeirCousinBrother, model.HeirCousinSister, r.CousinsBrothers, r.CousinsSisters)
	if r.HasSiblings() {
		c.afterSisters(model.HeirCousinBrother, r.CousinsBrothers)
		c.afterSisters(model.HeirCousinSister, r.CousinsSisters)
	}
}

func (c *calculation) afterSisters(class model.HeirClass, count int) {
	if count <= 0 {
		return
	}
	c.rule(class, class.Label(count), textCousinsAfterSisters)
}
