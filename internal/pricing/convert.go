package pricing

// MlPerOz is the number of milliliters in one US fluid ounce
const MlPerOz = 29.5735

// OzToMl converts fluid ounces to milliliters
func OzToMl(oz float64) float64 {
	return oz * MlPerOz
}

// MlToOz converts milliliters to fluid ounces
func MlToOz(ml float64) float64 {
	return ml / MlPerOz
}
