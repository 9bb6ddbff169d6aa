package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelations(t *testing.T) {
	{ // Menu order within each family
		assert.Equal(t, []Relation{AOverAStar, T0OverT, P0OverP, Rho0OverRho}, Relations(Isentropic))
		assert.Equal(t, []Relation{P02OverP01, T2OverT1, P2OverP1}, Relations(NormalShock))
		assert.Equal(t, []Relation{Nu}, Relations(Expansion))
		assert.Empty(t, Relations(ObliqueShock))
	}
	{ // Integer selection
		r, err := RelationAt(NormalShock, 1)
		require.NoError(t, err)
		assert.Equal(t, T2OverT1, r)
		_, err = RelationAt(NormalShock, 3)
		assert.Error(t, err)
		_, err = RelationAt(Isentropic, -1)
		assert.Error(t, err)
	}
	{ // Parsing
		names := []string{"isentropic/A_Astar", "A/A*", "T0/T", "normal/p02_p01", "shock/T2_T1",
			"p2_p1", "expansion/nu", "NU", " rho0_rho "}
		want := []Relation{AOverAStar, AOverAStar, T0OverT, P02OverP01, T2OverT1,
			P2OverP1, Nu, Nu, Rho0OverRho}
		for i, name := range names {
			r, err := ParseRelation(name)
			require.NoError(t, err, name)
			assert.Equal(t, want[i], r, name)
		}
		_, err := ParseRelation("isentropic/p2_p1")
		assert.Error(t, err)
		_, err = ParseRelation("entropy")
		assert.Error(t, err)
	}
	{ // Names round trip through String
		for r := AOverAStar; r.Valid(); r++ {
			p, err := ParseRelation(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, p)
		}
		assert.Equal(t, "normal/p2_p1", P2OverP1.String())
		assert.Equal(t, "Relation(42)", Relation(42).String())
	}
	{ // Invalid relations have no name or family
		r := Relation(99)
		assert.False(t, r.Valid())
		assert.Equal(t, "", r.Name())
		assert.Equal(t, UnknownFamily, r.Family())
		assert.Equal(t, "Family(255)", r.Family().String())
		assert.Equal(t, NormalShock, P2OverP1.Family())
	}
}

func TestFamiliesAndBranches(t *testing.T) {
	f, err := ParseFamily("Oblique")
	require.NoError(t, err)
	assert.Equal(t, ObliqueShock, f)
	_, err = ParseFamily("hypersonic")
	assert.Error(t, err)
	assert.Equal(t, "expansion", Expansion.String())

	var b ShockBranch
	assert.Equal(t, WeakShock, b)
	assert.Equal(t, 1., b.Alpha())
	assert.Equal(t, 0., StrongShock.Alpha())
	assert.Equal(t, "strong", StrongShock.String())
}
