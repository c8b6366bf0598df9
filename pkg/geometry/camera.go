package geometry

import (
	"fmt"
	"math"

	"github.com/strohs/raytracer/pkg/core"
)

// CameraConfig holds the parameters for constructing a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position in world space
	LookAt        core.Vec3 // Point the camera looks at
	VUp           core.Vec3 // World up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Viewport width / height
	Aperture      float64   // Lens diameter (0 disables depth of field)
	FocusDistance float64   // Distance to the plane of perfect focus
	ShutterOpen   float64   // Start of the exposure interval
	ShutterClose  float64   // End of the exposure interval
}

// Camera maps normalized image-plane coordinates to world-space rays,
// modeling a thin lens for depth of field and a shutter interval for motion
// blur. It is constructed once per render and immutable thereafter.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Orthonormal basis spanning the lens plane
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// NewCamera creates a camera from the given configuration, validating it
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera vertical fov must be in (0, 180), got %g", config.VFov)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera aperture must be non-negative, got %g", config.Aperture)
	}
	if config.FocusDistance <= 0 {
		return nil, fmt.Errorf("camera focus distance must be positive, got %g", config.FocusDistance)
	}
	if config.ShutterClose < config.ShutterOpen {
		return nil, fmt.Errorf("camera shutter interval is reversed: [%g, %g]", config.ShutterOpen, config.ShutterClose)
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt)
	if w.NearZero() {
		return nil, fmt.Errorf("camera look-from and look-at coincide at %v", config.LookFrom)
	}
	w = w.Normalize()
	uCross := config.VUp.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("camera up vector %v is parallel to the view direction", config.VUp)
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		shutterOpen:     config.ShutterOpen,
		shutterClose:    config.ShutterClose,
	}, nil
}

// GetRay generates a ray for viewport coordinates (s, t) in [0,1]². The ray
// starts at a random point on the lens disk and carries a random time within
// the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.shutterOpen
	if c.shutterClose > c.shutterOpen {
		time += sampler.Get1D() * (c.shutterClose - c.shutterOpen)
	}

	return core.NewRayAt(origin, direction, time)
}

// ShutterInterval returns the exposure interval the camera was built with
func (c *Camera) ShutterInterval() (open, close float64) {
	return c.shutterOpen, c.shutterClose
}
