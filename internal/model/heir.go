package model

import "fmt"

// HeirClass identifies one statutory class of heirs.
type HeirClass string

const (
	HeirWill                HeirClass = "will"
	HeirHusband             HeirClass = "husband"
	HeirWife                HeirClass = "wife"
	HeirFather              HeirClass = "father"
	HeirMother              HeirClass = "mother"
	HeirPaternalGrandfather HeirClass = "paternal_grandfather"
	HeirMaternalGrandmother HeirClass = "maternal_grandmother"
	HeirSon                 HeirClass = "son"
	HeirDaughter            HeirClass = "daughter"
	HeirGrandson            HeirClass = "grandson"
	HeirGranddaughter       HeirClass = "granddaughter"
	HeirFullBrother         HeirClass = "full_brother"
	HeirFullSister          HeirClass = "full_sister"
	HeirCousinBrother       HeirClass = "cousin_brother"
	HeirCousinSister        HeirClass = "cousin_sister"
)

type heirLabels struct {
	singular string
	plural   string
	each     string
}

var labels = map[HeirClass]heirLabels{
	HeirWill:                {"Bequest (wasiyya)", "Bequest (wasiyya)", "Bequest (wasiyya)"},
	HeirHusband:             {"Husband", "Husband", "Husband"},
	HeirWife:                {"Wife", "Wife", "Wife"},
	HeirFather:              {"Father", "Father", "Father"},
	HeirMother:              {"Mother", "Mother", "Mother"},
	HeirPaternalGrandfather: {"Grandfather (paternal)", "Grandfather (paternal)", "Grandfather (paternal)"},
	HeirMaternalGrandmother: {"Grandmother (maternal)", "Grandmother (maternal)", "Grandmother (maternal)"},
	HeirSon:                 {"Son", "Sons", "Each son"},
	HeirDaughter:            {"Daughter", "Daughters", "Each daughter"},
	HeirGrandson:            {"Grandson", "Grandsons", "Each grandson"},
	HeirGranddaughter:       {"Granddaughter", "Granddaughters", "Each granddaughter"},
	HeirFullBrother:         {"Full brother", "Full brothers", "Each full brother"},
	HeirFullSister:          {"Full sister", "Full sisters", "Each full sister"},
	HeirCousinBrother:       {"Male cousin", "Male cousins", "Each male cousin"},
	HeirCousinSister:        {"Female cousin", "Female cousins", "Each female cousin"},
}

// Label returns the display label for count heirs of this class:
// "Son" for one, "Sons (3)" for three.
func (c HeirClass) Label(count int) string {
	l, ok := labels[c]
	if !ok {
		return string(c)
	}
	if count > 1 {
		return fmt.Sprintf("%s (%d)", l.plural, count)
	}
	return l.singular
}

// EachLabel returns the per-heir label used when a class has several members.
func (c HeirClass) EachLabel() string {
	if l, ok := labels[c]; ok {
		return l.each
	}
	return string(c)
}
