package pn

import (
	"math"

	"github.com/katalvlaran/lvwave/binary"
)

// amplitudeTerms lists the amplitude coefficient of v^k for k = 0..6;
// higher orders have no PN value.
var amplitudeTerms = [AmplitudeOrders]term{
	amplitude0, zero, amplitude2, amplitude3, amplitude4, amplitude5, amplitude6,
	zero, zero, zero,
}

// AmplitudeTerm returns the amplitude coefficient of the given order.
// Orders outside [0, AmplitudeOrders) return 0.
func AmplitudeTerm(order int, p binary.Params) float64 {
	if order < 0 || order >= AmplitudeOrders {
		return 0
	}

	return amplitudeTerms[order](p)
}

func amplitude0(binary.Params) float64 { return 1 }

func amplitude2(p binary.Params) float64 {
	return -323.0/224.0 + 451.0*p.Eta/168.0
}

func amplitude3(p binary.Params) float64 {
	q, eta := p.MassRatio, p.Eta

	return p.Chi1*(27.0*q/16.0-11.0*eta/12.0+27.0/16.0) +
		p.Chi2*(-27.0*q/16.0-11.0*eta/12.0+27.0/16.0)
}

func amplitude4(p binary.Params) float64 {
	q, eta := p.MassRatio, p.Eta

	return p.Chi1*p.Chi1*(-81.0*q/64.0+81.0*eta/32.0-81.0/64.0) +
		p.Chi2*p.Chi2*(81.0*q/64.0+81.0*eta/32.0-81.0/64.0) +
		(105271.0/24192.0*eta*eta - 1975055.0/338688.0*eta - 27312085.0/8128512.0) -
		47.0/16.0*eta*p.Chi1*p.Chi2
}

func amplitude5(p binary.Params) float64 {
	q, eta := p.MassRatio, p.Eta
	chi1, chi2 := p.Chi1, p.Chi2

	return chi1*chi1*chi1*(q*(3.0/16.0-3.0*eta/16.0)-9.0*eta/16.0+3.0/16.0) +
		chi1*(q*(287213.0/32256.0-2083.0*eta/8064.0)-
			2227.0*eta*eta/2016.0-
			15569.0*eta/1344.0+
			287213.0/32256.0) +
		chi2*chi2*chi2*(q*(3.0*eta/16.0-3.0/16.0)-9.0*eta/16.0+3.0/16.0) +
		chi2*(q*(2083.0*eta/8064.0-287213.0/32256.0)-
			2227.0*eta*eta/2016.0-
			15569.0*eta/1344.0+
			287213.0/32256.0) -
		85.0*math.Pi/64.0 +
		85.0*math.Pi*eta/16.0
}

func amplitude6(p binary.Params) float64 {
	q, eta := p.MassRatio, p.Eta
	chi1, chi2 := p.Chi1, p.Chi2
	pi := math.Pi

	return chi1*(-17.0*pi*q/12.0+5.0*pi*eta/3.0-17.0*pi/12.0) +
		chi2*(17.0*pi*q/12.0+5.0*pi*eta/3.0-17.0*pi/12.0) +
		chi1*chi2*(-133249.0*eta*eta/8064.0-319321.0*eta/32256.0) +
		chi1*chi1*(q*(-14139.0*eta/32256.0-49039.0/14336.0)+
			163199.0*eta*eta/16128.0+
			158633.0*eta/64512.0-
			49039.0/14336.0) +
		chi2*chi2*(q*(14139.0*eta/32256.0+49039.0/14336.0)+
			163199.0*eta*eta/16128.0+
			158633.0*eta/64512.0-
			49039.0/14336.0) -
		177520268561.0/8583708672.0 +
		(545384828789.0/5007163392.0-205.0*pi*pi/48.0)*eta -
		3248849057.0*eta*eta/178827264.0 +
		34473079.0*eta*eta*eta/6386688.0
}
