package InputParameters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/compflow/inverse"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

func TestInputParameters(t *testing.T) {
	var (
		err error
	)
	{ // The example file parses and validates
		var input InputParameters
		require.NoError(t, input.Parse([]byte(ExampleFile)))
		require.NoError(t, input.Validate())
		assert.Equal(t, "Nozzle and inlet checks", input.Title)
		assert.True(t, input.Degrees)
		require.Len(t, input.Cases, 3)

		c := input.Cases[0]
		assert.True(t, c.IsInverse())
		_, rel, err := c.Kind()
		require.NoError(t, err)
		assert.Equal(t, types.AOverAStar, rel)
		assert.Equal(t, inverse.DefaultInterval(), c.Interval())

		c = input.Cases[1]
		assert.False(t, c.IsInverse())
		f, _, err := c.Kind()
		require.NoError(t, err)
		assert.Equal(t, types.ObliqueShock, f)
		assert.Equal(t, 10., c.Theta)
		assert.Equal(t, types.WeakShock, c.Branch())

		iv := input.Cases[2].Interval()
		assert.Equal(t, 3., iv.End)
		assert.Equal(t, 1.e-4, iv.Accuracy)

		var buf bytes.Buffer
		input.Fprint(&buf)
		assert.Contains(t, buf.String(), "Nozzle and inlet checks")
		assert.Contains(t, buf.String(), "solve normal/p02_p01")
	}
	{ // Gamma defaults to air
		input := InputParameters{Cases: []Case{{Family: "isentropic", Mach: 2}}}
		require.NoError(t, input.Validate())
		g, err := input.GasModel()
		require.NoError(t, err)
		assert.Equal(t, relations.Air, g)
	}
	{ // Every problem is reported, wrapped as an invalid configuration
		input := InputParameters{
			Gamma: 0.9,
			Cases: []Case{
				{Name: "no family", Mach: 2},
				{Name: "no mach", Family: "normal"},
				{Name: "bad relation", Relation: "isentropic/q", Target: 2},
				{Name: "bad interval", Relation: "T0_T", Target: 2, Start: 4, End: 2},
			},
		}
		err = input.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, inverse.ErrInvalidConfig)
		for _, s := range []string{"gamma", "no family", "no mach", "bad relation", "bad interval"} {
			assert.Contains(t, err.Error(), s)
		}
		err = (&InputParameters{}).Validate()
		assert.ErrorIs(t, err, inverse.ErrInvalidConfig)
	}
	{ // Files
		dir := t.TempDir()
		good := filepath.Join(dir, "cases.yaml")
		require.NoError(t, os.WriteFile(good, []byte(ExampleFile), 0o644))
		ip, err := ReadFile(good)
		require.NoError(t, err)
		assert.Len(t, ip.Cases, 3)

		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("Cases: [: :"), 0o644))
		_, err = ReadFile(bad)
		assert.ErrorIs(t, err, inverse.ErrInvalidConfig)

		_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}
