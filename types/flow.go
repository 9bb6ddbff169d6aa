package types

import (
	"fmt"
	"strings"
)

// Family groups the forward relations that share a physical model
type Family uint8

const (
	Isentropic Family = iota
	NormalShock
	ObliqueShock
	Expansion
)

func (f Family) String() string {
	strings := []string{
		"isentropic",
		"normal",
		"oblique",
		"expansion",
	}
	if int(f) >= len(strings) {
		return fmt.Sprintf("Family(%d)", f)
	}
	return strings[int(f)]
}

var FamilyNameMap = map[string]Family{
	"isentropic": Isentropic,
	"isen":       Isentropic,
	"normal":     NormalShock,
	"shock":      NormalShock,
	"oblique":    ObliqueShock,
	"expansion":  Expansion,
	"pm":         Expansion,
}

func ParseFamily(name string) (Family, error) {
	f, ok := FamilyNameMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown flow family %q", name)
	}
	return f, nil
}

// Relation identifies one invertible forward relation. The order within a
// family is the menu order used by the interactive calculator, so
// RelationAt(family, i) reproduces the original integer selection.
type Relation uint8

const (
	AOverAStar  Relation = iota // isentropic A/A*
	T0OverT                     // isentropic T0/T
	P0OverP                     // isentropic p0/p
	Rho0OverRho                 // isentropic rho0/rho
	P02OverP01                  // normal shock p02/p01
	T2OverT1                    // normal shock T2/T1
	P2OverP1                    // normal shock p2/p1
	Nu                          // Prandtl-Meyer angle
)

var relationNames = []string{
	"A_Astar",
	"T0_T",
	"p0_p",
	"rho0_rho",
	"p02_p01",
	"T2_T1",
	"p2_p1",
	"nu",
}

var relationFamilies = []Family{
	Isentropic, Isentropic, Isentropic, Isentropic,
	NormalShock, NormalShock, NormalShock,
	Expansion,
}

func (r Relation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Relation(%d)", r)
	}
	return relationFamilies[r].String() + "/" + relationNames[r]
}

func (r Relation) Valid() bool { return int(r) < len(relationNames) }

func (r Relation) Name() string {
	if !r.Valid() {
		return ""
	}
	return relationNames[r]
}

// UnknownFamily is the family of a Relation that is not Valid
const UnknownFamily Family = 255

func (r Relation) Family() Family {
	if !r.Valid() {
		return UnknownFamily
	}
	return relationFamilies[r]
}

// Relations returns the invertible relations of a family in menu order.
// The oblique family has none, its Mach number is resolved through the
// shock angle first.
func Relations(f Family) (rels []Relation) {
	for i, fam := range relationFamilies {
		if fam == f {
			rels = append(rels, Relation(i))
		}
	}
	return
}

func RelationAt(f Family, index int) (Relation, error) {
	rels := Relations(f)
	if index < 0 || index >= len(rels) {
		return 0, fmt.Errorf("relation index %d out of range for %s family (have %d)",
			index, f, len(rels))
	}
	return rels[index], nil
}

// ParseRelation accepts "family/name", the bare name, or a few of the
// spellings used in printed tables ("A/A*", "T0/T").
func ParseRelation(name string) (Relation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if fam, rel, found := strings.Cut(key, "/"); found {
		if f, ok := FamilyNameMap[fam]; ok {
			for _, r := range Relations(f) {
				if strings.ToLower(r.Name()) == rel {
					return r, nil
				}
			}
			return 0, fmt.Errorf("unknown %s relation %q", f, rel)
		}
	}
	key = strings.NewReplacer(" ", "", "/", "_", "*", "star").Replace(key)
	for i, n := range relationNames {
		if strings.ToLower(n) == key {
			return Relation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown relation %q", name)
}

// ShockBranch selects one of the two physical roots of the oblique shock
// cubic. The zero value is the weak shock.
type ShockBranch uint8

const (
	WeakShock ShockBranch = iota
	StrongShock
)

func (b ShockBranch) String() string {
	if b == StrongShock {
		return "strong"
	}
	return "weak"
}

// Alpha is the root selector of the trigonometric cubic solution
func (b ShockBranch) Alpha() float64 {
	if b == StrongShock {
		return 0
	}
	return 1
}
