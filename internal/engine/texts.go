package engine

// Labels of notes that are not about one heir class.
const (
	labelError         = "Error"
	labelMurderWarning = "Warning"
	labelFaithWarning  = "Faith warning"
	labelWill          = "About the bequest (wasiyya)"
	labelHusband       = "About the husband's share"
	labelWife          = "About the wife's share"
	labelFather        = "About the father's share"
	labelMother        = "About the mother's share"
	labelGrandfather   = "About the grandfather's share"
	labelGrandmother   = "About the grandmother's share"
	labelChildren      = "About the children's share"
	labelGrandchildren = "About the grandchildren's share"
	labelSisters       = "About the sisters' share"
	labelSiblings      = "About the siblings' share"
	labelCousins       = "About the cousins' share"
)

// Reasons a present heir receives nothing.
const (
	textExhausted            = "No funds remain for distribution after the debts are paid."
	textNoResidue            = "Receives nothing: no residue remains after the preceding shares."
	textBlockedByFather      = "Receives nothing because the father is alive. The father is a closer relative of the deceased and blocks the paternal grandfather."
	textBlockedByMother      = "Receives nothing because the mother is alive. The mother is a closer relative of the deceased and blocks the maternal grandmother."
	textBlockedByChildren    = "Receives nothing because sons or daughters of the deceased are alive."
	textBlockedByDescendants = "Receives nothing because direct descendants (sons, daughters, grandsons or granddaughters) are alive."
	textBlockedBySiblings    = "Receives nothing because full brothers or sisters are alive."
)

const textMurderWarning = "Under Islamic law a killer may not inherit from the victim. " +
	"In the teaching of Muhammad ibn Idris al-Shafi'i the killer loses the right to inherit in every case " +
	"(except a killing in a fit of insanity or by a minor); other schools preserve the right for self-defence " +
	"or accidents. The shares below are not adjusted; consult an imam or an Islamic jurist."

const textFaithWarning = "Under Islamic law a non-Muslim does not inherit from a Muslim and a Muslim does not " +
	"inherit from a non-Muslim, for heirs by kinship and by bequest alike. The shares below are not adjusted; " +
	"consult an imam or an Islamic jurist."

const textWill = "A bequest (wasiyya) may not exceed one third of the estate. It is settled after the debts " +
	"and before the estate is divided among relatives. An heir by kinship may not also be an heir by bequest."

const (
	textHusbandWithDescendants = "An-Nisa 4:12: \"And for you is half of what your wives leave if they have no " +
		"child. But if they have a child, for you is one fourth of what they leave.\""
	textHusbandAlone = "An-Nisa 4:12: \"And for you is half of what your wives leave if they have no child.\""
	textWifeWithDescendants = "An-Nisa 4:12: \"And for them is one fourth if you leave no child. But if you " +
		"leave a child, then for them is an eighth of what you leave.\""
	textWifeAlone = "An-Nisa 4:12: \"And for them is one fourth if you leave no child.\""
)

const (
	textFatherWithSons = "An-Nisa 4:11: \"And for one's parents, to each one of them is a sixth of his estate " +
		"if he left children.\" The father receives the fixed share of 1/6."
	textFatherResidue = "Without sons the father receives the residue left after the fixed shares of the " +
		"other heirs, as the nearest agnatic heir ('asaba)."
	textMotherSixth = "An-Nisa 4:11: \"To each one of them is a sixth if he left children. But if he had " +
		"brothers, for his mother is a sixth.\" The mother receives 1/6 because the deceased left children " +
		"or brothers and sisters."
	textMotherThird = "An-Nisa 4:11: \"But if he had no children and the parents inherit from him, then for " +
		"his mother is one third.\" The mother receives 1/3 because the deceased left no children and no " +
		"brothers or sisters."
	textGrandfather = "In the absence of the father the paternal grandfather takes his place and receives " +
		"the fixed share of 1/6."
	textGrandmother = "In the absence of the mother the maternal grandmother receives 1/6, following the " +
		"hadith in which the Prophet assigned a sixth to the grandmother when there is no mother."
)

const (
	textChildren = "An-Nisa 4:11: \"Allah instructs you concerning your children: for the male, what is " +
		"equal to the share of two females.\" Sons and daughters take the residue after the fixed shares, " +
		"a son receiving twice a daughter's share."
	textGrandchildren = "With no sons or daughters the grandchildren take their place. As with children, " +
		"a grandson receives twice a granddaughter's share of the residue."
	textSisters = "An-Nisa 4:176: \"If a man dies, leaving no child but a sister, she will have half of " +
		"what he left. If there are two sisters, they will have two thirds of what he left.\""
	textSiblings = "An-Nisa 4:176: \"If there are both brothers and sisters, the male will have the share " +
		"of two females.\" Brothers and sisters inherit the residue when no direct descendants survive."
	textCousins = "With no direct descendants and nothing taken by brothers or sisters, cousins take the residue, a male " +
		"cousin receiving twice a female cousin's share."
	textCousinsAfterSisters = "Full sisters are alive and take their fixed share first; the cousins " +
		"receive only what remains after it."
)
