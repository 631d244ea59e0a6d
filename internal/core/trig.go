package core

import "math"

// SinCos evaluates the same Cephes polynomials as the math package, but
// every product that feeds an addition goes through float64(...), which the
// compiler may not fuse into an FMA. The result is bit-identical on every
// GOARCH and GOAMD64 level.

const (
	pi4A = 7.85398125648498535156e-1 // Pi/4 split into three parts
	pi4B = 3.77489470793079817668e-8
	pi4C = 2.69515142907905952645e-15

	// Beyond this the three-part reduction loses precision, so the
	// argument is first taken modulo 2*Pi.
	reduceLimit = 1 << 29
)

var sinCoef = [...]float64{
	1.58962301576546568060e-10,
	-2.50507477628578072866e-8,
	2.75573136213857245213e-6,
	-1.98412698295895385996e-4,
	8.33333333332211858878e-3,
	-1.66666666666666307295e-1,
}

var cosCoef = [...]float64{
	-1.13585365213876817300e-11,
	2.08757008419747316778e-9,
	-2.75573141792967388112e-7,
	2.48015872888517045348e-5,
	-1.38888888888730564116e-3,
	4.16666666666665929218e-2,
}

// SinCos returns sin(x) and cos(x).
func SinCos(x float64) (sin, cos float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN(), math.NaN()
	}
	if x == 0 {
		return x, 1
	}

	sinNeg, cosNeg := false, false
	if x < 0 {
		x = -x
		sinNeg = true
	}
	j, z := reduceOctant(x)
	if j > 3 {
		j -= 4
		sinNeg, cosNeg = !sinNeg, !cosNeg
	}
	if j > 1 {
		cosNeg = !cosNeg
	}

	zz := float64(z * z)
	sin, cos = sinPoly(z, zz), cosPoly(zz)
	if j == 1 || j == 2 {
		sin, cos = cos, sin
	}
	if sinNeg {
		sin = -sin
	}
	if cosNeg {
		cos = -cos
	}
	return sin, cos
}

// reduceOctant maps x >= 0 to its even octant j in [0, 7] and the remainder
// z in [-Pi/4, Pi/4].
func reduceOctant(x float64) (uint64, float64) {
	if x >= reduceLimit {
		x = math.Mod(x, 2*math.Pi)
	}
	j := uint64(x * (4 / math.Pi))
	y := float64(j)
	if j&1 == 1 {
		j++
		y++
	}
	j &= 7
	z := ((x - float64(y*pi4A)) - float64(y*pi4B)) - float64(y*pi4C)
	return j, z
}

func horner(coef *[6]float64, zz float64) float64 {
	p := coef[0]
	for _, c := range coef[1:] {
		p = float64(p*zz) + c
	}
	return p
}

func sinPoly(z, zz float64) float64 {
	return z + float64(float64(z*zz)*horner(&sinCoef, zz))
}

func cosPoly(zz float64) float64 {
	return float64(1.0-float64(0.5*zz)) + float64(float64(zz*zz)*horner(&cosCoef, zz))
}
