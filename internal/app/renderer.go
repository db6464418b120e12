package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/pkg/geometry"
)

var (
	frameColor   = rl.NewColor(100, 200, 255, 255)
	nearColor    = rl.Yellow
	clipColor    = rl.NewColor(255, 120, 80, 255)
	surfaceColor = rl.NewColor(180, 180, 180, 255)
	isoColor     = rl.NewColor(120, 230, 140, 255)
)

// planeExtent is half the edge length of a drawn clip plane
const planeExtent = 0.6

// drawScene draws the unit volume frame, the near plane and the captured
// clip planes. Rotation is applied by the camera orbit.
func (app *App) drawScene() {
	s := app.engine.State()

	if s.Volume != "" || len(s.Series) > 0 {
		alpha := uint8(80 + 175*clamp(s.Absorption))
		rl.DrawCubeWiresV(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Fade(frameColor, float32(alpha)/255))
	}
	if s.Surface != "" {
		rl.DrawSphereWires(rl.Vector3{}, 0.4, 12, 12, surfaceColor)
	}
	if s.IsoSurface && s.ShowIso {
		// denser iso values enclose less of the volume
		radius := float32(0.05 + 0.45*(1-clamp(s.IsoValue)))
		rl.DrawSphereWires(rl.Vector3{}, radius, 8, 16, isoColor)
	}

	if s.ShowPlane {
		drawPlane(app.engine.NearPlane(), nearColor)
	}
	for _, p := range s.ClipPlanes {
		if p.Enabled {
			drawPlane(p.Plane, clipColor)
		}
	}
}

// drawPlane draws a square patch of the plane around its point and its normal
func drawPlane(p geometry.Plane, color rl.Color) {
	u, v := planeAxes(p.Normal)
	corners := [4]geometry.Vector3{
		p.Point.Add(u.Mul(planeExtent)).Add(v.Mul(planeExtent)),
		p.Point.Add(u.Mul(planeExtent)).Sub(v.Mul(planeExtent)),
		p.Point.Sub(u.Mul(planeExtent)).Sub(v.Mul(planeExtent)),
		p.Point.Sub(u.Mul(planeExtent)).Add(v.Mul(planeExtent)),
	}
	for i := range corners {
		rl.DrawLine3D(toRaylib(corners[i]), toRaylib(corners[(i+1)%4]), color)
	}
	rl.DrawLine3D(toRaylib(p.Point), toRaylib(p.Point.Add(p.Normal.Mul(0.2))), color)
}

// planeAxes returns two unit vectors spanning the plane with the given normal
func planeAxes(n geometry.Vector3) (geometry.Vector3, geometry.Vector3) {
	ref := geometry.NewVector3(0, 1, 0)
	if n.Y > 0.9 || n.Y < -0.9 {
		ref = geometry.NewVector3(1, 0, 0)
	}
	u := cross(n, ref).Normalize()
	v := cross(n, u).Normalize()
	return u, v
}

func cross(a, b geometry.Vector3) geometry.Vector3 {
	return geometry.NewVector3(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
