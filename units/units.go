// Package units holds the physical constants used to move between the
// geometrized units of the waveform models and SI units.
//
// Values follow the LIGO Algorithm Library conventions so that strain
// amplitudes are directly comparable with other frequency-domain codes.
package units

const (
	// MTSunSI is G·M☉/c³, the solar mass expressed in seconds.
	MTSunSI = 4.925491025543575903411922162094833998e-6

	// MRSunSI is G·M☉/c², the solar mass expressed in metres.
	MRSunSI = 1.476625061404649406193430731479084713e3

	// MpcSI is one megaparsec in metres.
	MpcSI = 3.085677581491367278913937957796471611e22

	// EulerGamma is the Euler–Mascheroni constant.
	EulerGamma = 0.577215664901532860606512090082402431
)

// GeometricFrequency converts a frequency in Hz to the dimensionless
// product M·f for a total mass given in solar masses.
func GeometricFrequency(frequency, totalMass float64) float64 {
	return frequency * totalMass * MTSunSI
}

// Hertz is the inverse of GeometricFrequency.
func Hertz(geometricFrequency, totalMass float64) float64 {
	return geometricFrequency / (totalMass * MTSunSI)
}

// MpcToMetres converts a luminosity distance from megaparsecs to metres.
func MpcToMetres(distance float64) float64 {
	return distance * MpcSI
}
