package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Kind tags the variant of a Material
type Kind int

const (
	KindDiffuse Kind = iota
	KindSpecular
	KindRefractive
	KindMixed
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindSpecular:
		return "specular"
	case KindRefractive:
		return "refractive"
	case KindMixed:
		return "mixed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Material is a closed set of surface descriptions. Only the value types in
// this package implement it, so a type switch over Diffuse, Specular,
// Refractive and Mixed is exhaustive.
type Material interface {
	Kind() Kind
	sealed()
}

// Tint returns the material's own color, used to seed shading
func Tint(m Material) core.Color {
	switch mat := m.(type) {
	case Diffuse:
		return mat.Color
	case Specular:
		return mat.Color
	case Refractive:
		return mat.Specular
	case Mixed:
		return mat.Diffuse
	default:
		panic(fmt.Sprintf("material: unreachable variant %T", m))
	}
}
