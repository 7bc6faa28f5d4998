package core

import "math"

const (
	// HitEpsilon is the smallest ray parameter accepted as a hit.
	// Rejects self-intersection and hits behind the ray origin.
	HitEpsilon = 1e-6

	// BiasEpsilon offsets the origin of a refracted ray off the surface.
	BiasEpsilon = 1e-4
)

// Reflect mirrors direction d about normal n: d - 2(d·n)n, renormalized
func Reflect(d, n Vec3) Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n))).Normalize()
}

// Refract bends direction d through a surface with normal n and index of
// refraction ior (the medium on the far side of n from the outside).
//
// Entering vs exiting is decided from the sign of d·n. The returned normal
// is the working normal, flipped to face the incident side. ok is false on
// total internal reflection.
func Refract(d, n Vec3, ior float64) (dir Vec3, working Vec3, ok bool) {
	cosi := d.Dot(n)
	eta := 1.0 / ior
	working = n
	if cosi < 0 {
		// Entering: outside -> inside
		cosi = -cosi
	} else {
		// Exiting: inside -> outside
		eta = ior
		working = n.Negate()
	}

	sin2t := eta * eta * (1.0 - cosi*cosi)
	k := 1.0 - sin2t
	if k < 0 {
		return Vec3{}, working, false
	}

	dir = d.Multiply(eta).Add(working.Multiply(eta*cosi - math.Sqrt(k)))
	return dir.Normalize(), working, true
}
