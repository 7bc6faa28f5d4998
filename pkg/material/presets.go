package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Common materials
var (
	Glass = NewRefractive(core.White, core.White, 1.5)
	Water = NewRefractive(core.White, core.White, 4.0/3.0)

	RedDiffuse  = NewDiffuse(core.Red)
	BlueDiffuse = NewDiffuse(core.Blue)
	GreyDiffuse = NewDiffuse(core.Grey)
	WhiteMirror = NewSpecular(core.White)
	RedGlass    = NewRefractive(core.Red, core.White, 1.5)
	SatinSilver = NewMixed(core.NewColor(0.6, 0.6, 0.6), core.White, 0.5)
)
