package model

// EstateRequest describes the estate and the surviving relatives of the
// deceased. It is built once per calculation and passed by value.
type EstateRequest struct {
	TotalEstate float64 `json:"total_estate" yaml:"total_estate"`
	Debts       float64 `json:"debts" yaml:"debts"`
	HasWill     bool    `json:"has_will" yaml:"has_will"`
	WillAmount  float64 `json:"will_amount" yaml:"will_amount"`

	// Advisory only; they never change a computed share.
	IsMurdererHeir       bool `json:"is_murderer_heir" yaml:"is_murderer_heir"`
	IsDifferentFaithHeir bool `json:"is_different_faith_heir" yaml:"is_different_faith_heir"`

	HasSpouseHusband bool `json:"has_spouse_husband" yaml:"has_spouse_husband"`
	HasWife          bool `json:"has_wife" yaml:"has_wife"`

	Sons             int `json:"sons" yaml:"sons"`
	Daughters        int `json:"daughters" yaml:"daughters"`
	Grandsons        int `json:"grandsons" yaml:"grandsons"`
	Granddaughters   int `json:"granddaughters" yaml:"granddaughters"`
	SiblingsBrothers int `json:"siblings_brothers" yaml:"siblings_brothers"`
	SiblingsSisters  int `json:"siblings_sisters" yaml:"siblings_sisters"`
	CousinsBrothers  int `json:"cousins_brothers" yaml:"cousins_brothers"`
	CousinsSisters   int `json:"cousins_sisters" yaml:"cousins_sisters"`

	FatherAlive      bool `json:"father_alive" yaml:"father_alive"`
	MotherAlive      bool `json:"mother_alive" yaml:"mother_alive"`
	GrandfatherAlive bool `json:"grandfather_alive" yaml:"grandfather_alive"` // paternal
	GrandmotherAlive bool `json:"grandmother_alive" yaml:"grandmother_alive"` // maternal
}

// NetEstate is the total estate minus debts, never below zero.
func (r EstateRequest) NetEstate() float64 {
	net := r.TotalEstate - r.Debts
	if net < 0 {
		return 0
	}
	return net
}

// HasChildren reports whether any son or daughter survives.
func (r EstateRequest) HasChildren() bool {
	return r.Sons > 0 || r.Daughters > 0
}

// HasDescendants reports whether any child or grandchild survives.
func (r EstateRequest) HasDescendants() bool {
	return r.HasChildren() || r.Grandsons > 0 || r.Granddaughters > 0
}

func (r EstateRequest) HasSiblings() bool {
	return r.SiblingsBrothers > 0 || r.SiblingsSisters > 0
}

func (r EstateRequest) HasCousins() bool {
	return r.CousinsBrothers > 0 || r.CousinsSisters > 0
}
