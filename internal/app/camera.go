package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/govox/internal/engine"
	"github.com/philipparndt/govox/pkg/geometry"
)

// defaultDistance is the camera distance at zoom 0
const defaultDistance = float32(3)

// closestDistance is the camera distance at zoom 1
const closestDistance = float32(0.8)

// updateCamera places the camera on an orbit around the volume from the
// engine's angle, tilt, flips and zoom; automatic rotation advances the spin.
func (app *App) updateCamera(dt float32) {
	s := app.engine.State()
	app.Camera.spin = math.Mod(app.Camera.spin+s.Omega*float64(dt), 360)

	app.Camera.distance = app.Camera.defaultDist - float32(s.Zoom)*(app.Camera.defaultDist-closestDistance)

	pos, up := orbit(s, app.Camera.spin, float64(app.Camera.distance))
	app.Camera.camera.Position = toRaylib(pos)
	app.Camera.camera.Up = toRaylib(up)
	app.Camera.camera.Target = rl.Vector3{}
}

// orbit returns the camera position and up vector for an engine state.
// The flips turn the volume by TiltXY about Z, then by TiltYZ about X;
// the camera takes the inverse path around the fixed scene.
func orbit(s engine.State, spin, distance float64) (pos, up geometry.Vector3) {
	pos = geometry.NewVector3(0, 0, distance).RotateX(-s.Tilt).RotateY(s.Angle + spin)
	up = geometry.NewVector3(0, 1, 0)

	pos = pos.RotateX(-s.TiltYZ).RotateZ(-s.TiltXY)
	up = up.RotateX(-s.TiltYZ).RotateZ(-s.TiltXY)
	return pos, up
}
