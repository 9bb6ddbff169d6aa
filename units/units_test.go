package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	{ // Angles
		assert.InDelta(t, math.Pi/18, Degrees(10).Radians(), 1.e-15)
		assert.InDelta(t, 10., Degrees(10).Degrees(), 1.e-12)
		a, err := ParseAngle("10deg", "rad")
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/18, a.Radians(), 1.e-15)
		a, err = ParseAngle("10", "deg")
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/18, a.Radians(), 1.e-15)
		a, err = ParseAngle(" 0.25 rad", "deg")
		require.NoError(t, err)
		assert.Equal(t, 0.25, a.Radians())
		_, err = ParseAngle("10grad", "deg")
		assert.ErrorIs(t, err, ErrUnknownUnit)
		_, err = ParseAngle("deg", "deg")
		assert.Error(t, err)
	}
	{ // Temperatures
		for _, s := range []string{"288.15K", "288.15", "15C", "518.67R", "59F"} {
			tt, err := ParseTemperature(s)
			require.NoError(t, err, s)
			assert.InDelta(t, 288.15, tt.Kelvin(), 1.e-9, s)
		}
		_, err := ParseTemperature("-300C")
		assert.Error(t, err)
		_, err = ParseTemperature("300X")
		assert.ErrorIs(t, err, ErrUnknownUnit)
	}
	{ // Pressures
		for _, s := range []string{"101325", "101325Pa", "101.325kPa", "1atm", "1.01325bar", "1e5Pa"} {
			p, err := ParsePressure(s)
			require.NoError(t, err, s)
			want := 101325.
			if s == "1e5Pa" {
				want = 1.e5
			}
			assert.InEpsilon(t, want, float64(p), 1.e-12, s)
		}
		p, err := ParsePressure("14.696psi")
		require.NoError(t, err)
		assert.InEpsilon(t, 101325., float64(p), 1.e-4)
		_, err = ParsePressure("-1atm")
		assert.Error(t, err)
		_, err = ParsePressure("1mmHg")
		assert.ErrorIs(t, err, ErrUnknownUnit)
	}
	{ // Speeds and lengths
		for _, s := range []string{"340", "340m/s", "1224km/h", "1115.48556ft/s"} {
			v, err := ParseSpeed(s)
			require.NoError(t, err, s)
			assert.InEpsilon(t, 340., float64(v), 1.e-8, s)
		}
		for _, s := range []string{"0.3048", "0.3048m", "30.48cm", "304.8mm", "1ft", "12in"} {
			l, err := ParseLength(s)
			require.NoError(t, err, s)
			assert.InEpsilon(t, 0.3048, float64(l), 1.e-12, s)
		}
		_, err := ParseSpeed("3mph")
		assert.ErrorIs(t, err, ErrUnknownUnit)
		_, err = ParseLength("-1m")
		assert.Error(t, err)
	}
	{ // Gas constant
		R, err := SpecificGasConstant(0.0289647)
		require.NoError(t, err)
		assert.InEpsilon(t, float64(AirR), float64(R), 1.e-3)
		_, err = SpecificGasConstant(0)
		assert.Error(t, err)
	}
}
