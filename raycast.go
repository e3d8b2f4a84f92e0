package touchui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Forward is the local pointing direction of hands, gaze and cameras.
var Forward = mgl32.Vec3{0, 0, -1}

// Ray is a half-line in world space. Direction is unit length for rays built
// with NewRay.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay returns a ray from origin along dir, normalizing dir.
func NewRay(origin, dir mgl32.Vec3) Ray {
	if l := dir.Len(); l > 0 {
		dir = dir.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: dir}
}

// Point returns the point at distance t along the ray.
func (r Ray) Point(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Raycaster finds the nodes under a pointer. It is the external scene query
// service; the event system merges and sorts the results of every
// registered raycaster.
type Raycaster interface {
	// Raycast appends the hits for the pointer to results and returns it.
	Raycast(data *PointerEventData, results []RaycastResult) []RaycastResult
	// EventCamera returns the camera the raycaster projects through, or nil.
	EventCamera() *Camera
}

// ScreenProjector is implemented by raycasters whose hits happen in world
// space and must be projected to obtain a screen position.
type ScreenProjector interface {
	ScreenPosition(result RaycastResult) Vec2
}

// WorldRaycaster hit-tests the quads of a node tree. Ray pointers are cast
// along their own ray; screen pointers are cast through Camera.
type WorldRaycaster struct {
	Root   *Node
	Camera *Camera
	// MaxDistance discards hits farther than this. Zero means unlimited.
	MaxDistance float32

	buf []*Node
}

// NewWorldRaycaster creates a raycaster over root's subtree.
func NewWorldRaycaster(root *Node, cam *Camera) *WorldRaycaster {
	return &WorldRaycaster{Root: root, Camera: cam}
}

// EventCamera implements Raycaster.
func (r *WorldRaycaster) EventCamera() *Camera {
	return r.Camera
}

// ScreenPosition implements ScreenProjector.
func (r *WorldRaycaster) ScreenPosition(result RaycastResult) Vec2 {
	if r.Camera == nil {
		return Vec2{}
	}
	return r.Camera.WorldToScreen(result.WorldPosition)
}

// Raycast implements Raycaster.
func (r *WorldRaycaster) Raycast(data *PointerEventData, results []RaycastResult) []RaycastResult {
	if r.Root == nil {
		return results
	}
	var ray Ray
	if data.RayPointer {
		ray = data.Ray
	} else {
		if r.Camera == nil {
			return results
		}
		if !r.Camera.Viewport.Contains(data.Position.X, data.Position.Y) {
			return results
		}
		var ok bool
		if ray, ok = r.Camera.ScreenToRay(data.Position); !ok {
			return results
		}
	}
	if ray.Direction.Len() == 0 {
		return results
	}

	r.buf = collectHitTestable(r.Root, r.buf[:0])
	index := 0
	for _, n := range r.buf {
		dist, point, normal, ok := intersectQuad(n, ray)
		if !ok {
			continue
		}
		if r.MaxDistance > 0 && dist > r.MaxDistance {
			continue
		}
		res := RaycastResult{
			Node:          n,
			Module:        r,
			Distance:      dist,
			Index:         index,
			Depth:         n.Depth(),
			WorldPosition: point,
			WorldNormal:   normal,
		}
		if !data.RayPointer {
			res.ScreenPosition = data.Position
		}
		results = append(results, res)
		index++
	}
	return results
}

// collectHitTestable walks the tree depth-first, appending visible,
// interactable nodes that have a hit quad. Hidden or non-interactable
// subtrees are skipped.
func collectHitTestable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.Width > 0 && n.Height > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectHitTestable(child, buf)
	}
	return buf
}

// intersectQuad intersects ray with n's quad. It returns the world distance
// along the ray, the world hit point and the quad's world normal.
func intersectQuad(n *Node, ray Ray) (float32, mgl32.Vec3, mgl32.Vec3, bool) {
	m := n.WorldMatrix()
	if m.Det() == 0 {
		return 0, mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	inv := m.Inv()
	o := inv.Mul4x1(ray.Origin.Vec4(1)).Vec3()
	d := inv.Mul4x1(ray.Direction.Vec4(0)).Vec3()
	if math.Abs(float64(d.Z())) < 1e-7 {
		return 0, mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	t := -o.Z() / d.Z()
	if t < 0 {
		return 0, mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	lp := o.Add(d.Mul(t))
	hw, hh := n.Width/2, n.Height/2
	if lp.X() < -hw || lp.X() > hw || lp.Y() < -hh || lp.Y() > hh {
		return 0, mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	world := m.Mul4x1(lp.Vec4(1)).Vec3()
	normal := m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	if l := normal.Len(); l > 0 {
		normal = normal.Mul(1 / l)
	}
	return world.Sub(ray.Origin).Len(), world, normal, true
}
