package models

import (
	"fmt"
	"math"
	"strconv"
)

const (
	mlPerOz = 29.5735
	ozPerMl = 0.033814
)

// MlToOz converts milliliters to fluid ounces, rounded to one decimal.
func MlToOz(ml float64) float64 {
	return math.Round(ml*ozPerMl*10) / 10
}

// OzToMl converts fluid ounces to milliliters, rounded to one decimal.
func OzToMl(oz float64) float64 {
	return math.Round(oz*mlPerOz*10) / 10
}

// Convert translates between display units; identity when from == to.
func Convert(amount float64, from, to Unit) float64 {
	if from == to {
		return amount
	}
	if from == UnitMl {
		return MlToOz(amount)
	}
	return OzToMl(amount)
}

// FormatAmount renders a quantity for display: "1.5L" for >= 1000 ml,
// "<n>ml" below that, "<n>oz" for ounces.
func FormatAmount(amount float64, unit Unit) string {
	if unit == UnitMl {
		if amount >= 1000 {
			return fmt.Sprintf("%.1fL", amount/1000)
		}
		return trimFloat(amount) + "ml"
	}
	return trimFloat(amount) + "oz"
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
