package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

func TestTableCheck(t *testing.T) {
	var (
		table = `family, M, key, expected, theta
# Anderson, Appendix A and B
isentropic, 2.4, p0_p, 14.62
isentropic, 2.4, A_Astar, 2.403
normal, 2, p2_p1, 4.5
normal, 2, p02_p01, .7209
oblique, 2, beta, 39.31, 10
expansion, 3, nu, 49.76
`
	)
	{ // Reading
		entries, err := readCSV(strings.NewReader(table))
		require.NoError(t, err)
		require.Len(t, entries, 6)
		assert.Equal(t, types.Isentropic, entries[0].Family)
		assert.Equal(t, "A_Astar", entries[1].Key)
		assert.Equal(t, 4.5, entries[2].Expected)
		assert.InDelta(t, 10*3.141592653589793/180, entries[4].Theta, 1.e-15)
		_, err = readCSV(strings.NewReader("nozzle, 2, p2_p1, 4.5\n"))
		assert.Error(t, err)
		_, err = readCSV(strings.NewReader("normal, two, p2_p1, 4.5\n"))
		assert.Error(t, err)
		_, err = readCSV(strings.NewReader("normal, 2, p2_p1\n"))
		assert.Error(t, err)
	}
	{ // All entries agree with the tables to their printed precision
		entries, err := readCSV(strings.NewReader(table))
		require.NoError(t, err)
		studies := check(relations.Air, entries)
		assert.Len(t, studies, 4)
		var buf bytes.Buffer
		assert.Equal(t, 0, report(&buf, studies, 1.e-3))
		assert.Contains(t, buf.String(), "Family = normal, Entries = 2")
		assert.Less(t, studies[types.NormalShock].maxErr, 1.e-4)
	}
	{ // Mismatches, unknown keys and undefined relations are all failures
		entries, err := readCSV(strings.NewReader(`normal, 2, p2_p1, 4.6
normal, 2, q, 1
normal, 0.5, p2_p1, 1
`))
		require.NoError(t, err)
		var buf bytes.Buffer
		assert.Equal(t, 3, report(&buf, check(relations.Air, entries), 1.e-3))
		assert.Contains(t, buf.String(), "FAIL")
		assert.Contains(t, buf.String(), `no normal value named "q"`)
	}
}
