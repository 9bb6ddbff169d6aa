// Package units reads the dimensional inputs accepted on the command line,
// "10deg", "101.3kPa" or "680m/s", into the quantity types of
// github.com/martinlindhe/unit, which hold SI values. The relations
// themselves are dimensionless and never import this package.
package units

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/martinlindhe/unit"
)

var ErrUnknownUnit = errors.New("units: unknown unit")

type (
	// Angle is in radians
	Angle = unit.Angle
	// Temperature is absolute, in kelvin
	Temperature = unit.Temperature
	// Pressure is in pascal
	Pressure = unit.Pressure
	// Speed is in metres per second
	Speed = unit.Speed
	// Length is in metres
	Length = unit.Length
)

func Degrees(d float64) Angle { return Angle(d) * unit.Degree }

func Radians(r float64) Angle { return Angle(r) * unit.Radian }

const (
	// Atmosphere is the standard atmosphere
	Atmosphere = 101325 * unit.Pascal
	// PSI is one pound-force per square inch
	PSI = 6894.757293168 * unit.Pascal

	metresPerSecond   Speed = 1
	kilometresPerHour       = metresPerSecond / 3.6
	feetPerSecond           = 0.3048 * metresPerSecond
)

// GasConstant is the specific gas constant in J/(kg K)
type GasConstant float64

const (
	AirR GasConstant = 287.05
	// UniversalR is in J/(mol K)
	UniversalR = 8.314462618
)

// SpecificGasConstant is R for a gas of the given molar mass in kg/mol
func SpecificGasConstant(molarMass float64) (R GasConstant, err error) {
	if !(molarMass > 0) || math.IsInf(molarMass, 0) {
		err = fmt.Errorf("units: molar mass must be positive, have %v", molarMass)
		return
	}
	R = GasConstant(UniversalR / molarMass)
	return
}

var (
	angleUnits = map[string]func(float64) Angle{
		"":    Radians,
		"rad": Radians,
		"deg": Degrees,
	}
	temperatureUnits = map[string]func(float64) Temperature{
		"":  unit.FromKelvin,
		"K": unit.FromKelvin,
		"C": unit.FromCelsius,
		"R": unit.FromRankine,
		"F": unit.FromFahrenheit,
	}
	pressureUnits = map[string]Pressure{
		"":    unit.Pascal,
		"Pa":  unit.Pascal,
		"kPa": unit.Kilopascal,
		"bar": unit.Bar,
		"atm": Atmosphere,
		"psi": PSI,
	}
	speedUnits = map[string]Speed{
		"":     metresPerSecond,
		"m/s":  metresPerSecond,
		"km/h": kilometresPerHour,
		"ft/s": feetPerSecond,
	}
	lengthUnits = map[string]Length{
		"":   unit.Meter,
		"m":  unit.Meter,
		"cm": unit.Centimeter,
		"mm": unit.Millimeter,
		"ft": unit.Foot,
		"in": unit.Inch,
	}
)

// splitQuantity separates "101.3kPa" into 101.3 and "kPa". Whitespace between
// the number and the unit is allowed.
func splitQuantity(s string) (v float64, unit string, err error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexAny(s, "0123456789.")
	if i < 0 {
		err = fmt.Errorf("units: no numeric value in %q", s)
		return
	}
	unit = strings.TrimSpace(s[i+1:])
	if v, err = strconv.ParseFloat(strings.TrimSpace(s[:i+1]), 64); err != nil {
		err = fmt.Errorf("units: %w", err)
	}
	return
}

func unknown[T any](unit string, known map[string]T) error {
	names := make([]string, 0, len(known))
	for k := range known {
		if k != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return fmt.Errorf("%w %q, use one of %s", ErrUnknownUnit, unit, strings.Join(names, ", "))
}

// parseScaled reads a quantity whose units differ by a scale factor
func parseScaled[T ~float64](s, kind string, known map[string]T) (q T, err error) {
	var (
		v    float64
		unit string
	)
	if v, unit, err = splitQuantity(s); err != nil {
		return
	}
	scale, ok := known[unit]
	if !ok {
		err = unknown(unit, known)
		return
	}
	if q = T(v) * scale; q < 0 {
		err = fmt.Errorf("units: %s must not be negative, have %q", kind, s)
	}
	return
}

// ParseAngle reads "10deg" or "0.17rad". A bare number is taken in
// defaultUnit.
func ParseAngle(s, defaultUnit string) (a Angle, err error) {
	var (
		v    float64
		unit string
	)
	if v, unit, err = splitQuantity(s); err != nil {
		return
	}
	if unit == "" {
		unit = defaultUnit
	}
	conv, ok := angleUnits[unit]
	if !ok {
		err = unknown(unit, angleUnits)
		return
	}
	a = conv(v)
	return
}

// ParseTemperature reads "288.15K", "15C", "518.67R" or "59F". A bare number
// is kelvin.
func ParseTemperature(s string) (t Temperature, err error) {
	var (
		v    float64
		unit string
	)
	if v, unit, err = splitQuantity(s); err != nil {
		return
	}
	conv, ok := temperatureUnits[unit]
	if !ok {
		err = unknown(unit, temperatureUnits)
		return
	}
	if t = conv(v); t.Kelvin() <= 0 {
		err = fmt.Errorf("units: absolute temperature must be positive, have %q", s)
	}
	return
}

// ParsePressure reads "101325Pa", "101.325kPa", "1atm", "1bar" or
// "14.696psi". A bare number is pascal.
func ParsePressure(s string) (Pressure, error) {
	return parseScaled(s, "pressure", pressureUnits)
}

// ParseSpeed reads "680m/s", "2448km/h" or "2231ft/s". A bare number is
// metres per second.
func ParseSpeed(s string) (Speed, error) {
	return parseScaled(s, "speed", speedUnits)
}

// ParseLength reads "1m", "30cm", "3ft" or "12in". A bare number is metres.
func ParseLength(s string) (Length, error) {
	return parseScaled(s, "length", lengthUnits)
}
