package touchui

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective eye in world space. Screen coordinates produced and
// consumed by a Camera have their origin at the top-left of the screen with Y
// increasing downward, the same convention as ebiten's cursor position.
type Camera struct {
	// Position is the eye position in world space.
	Position mgl32.Vec3
	// Rotation orients the eye; identity looks down -Z with +Y up.
	Rotation mgl32.Quat
	// FOV is the vertical field of view in degrees.
	FOV float32
	// Near and Far are the clip plane distances.
	Near, Far float32
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera creates a camera at the origin looking down -Z with a 60 degree
// vertical field of view.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Rotation: mgl32.QuatIdent(),
		FOV:      60,
		Near:     0.05,
		Far:      1000,
		Viewport: viewport,
	}
}

// Forward returns the unit direction the camera looks along.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Rotation.Rotate(Forward)
}

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return c.Rotation.Inverse().Mat4().Mul4(
		mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// ProjectionMatrix returns the perspective projection for the viewport's
// aspect ratio.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(1)
	if c.Viewport.Height > 0 {
		aspect = float32(c.Viewport.Width / c.Viewport.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// WorldToScreen projects a world point into screen coordinates.
func (c *Camera) WorldToScreen(p mgl32.Vec3) Vec2 {
	w, h := int(c.Viewport.Width), int(c.Viewport.Height)
	win := mgl32.Project(p, c.ViewMatrix(), c.ProjectionMatrix(), 0, 0, w, h)
	return Vec2{
		X: c.Viewport.X + float64(win.X()),
		Y: c.Viewport.Y + c.Viewport.Height - float64(win.Y()),
	}
}

// ScreenToRay returns the world-space ray through a screen point. The second
// result is false when the projection cannot be inverted (degenerate
// viewport or clip planes).
func (c *Camera) ScreenToRay(screen Vec2) (Ray, bool) {
	w, h := int(c.Viewport.Width), int(c.Viewport.Height)
	if w <= 0 || h <= 0 {
		return Ray{}, false
	}
	wx := float32(screen.X - c.Viewport.X)
	wy := float32(c.Viewport.Height - (screen.Y - c.Viewport.Y))
	view, proj := c.ViewMatrix(), c.ProjectionMatrix()

	near, err := mgl32.UnProject(mgl32.Vec3{wx, wy, 0}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{wx, wy, 1}, view, proj, 0, 0, w, h)
	if err != nil {
		return Ray{}, false
	}
	return NewRay(near, far.Sub(near)), true
}
