package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/calluna-lt3/raytrace/pkg/core"
	"github.com/calluna-lt3/raytrace/pkg/geometry"
)

// Config contains rendering configuration
type Config struct {
	NumWorkers int // Number of parallel row workers (0 = use CPU count, 1 = serial)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetLight() geometry.PointLight
	GetSpheres() []*geometry.Sphere
	GetBackground() core.Vec3
}

// Hit identifies the nearest visible sphere along a ray
type Hit struct {
	Index int     // Position of the sphere in the scene's sphere list
	T     float64 // Ray parameter of the visible intersection
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultConfig(),
		logger: NewDefaultLogger(),
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// SetLogger replaces the logger used for render progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// nearestHit finds the closest sphere in front of the ray origin.
// Tangent intersections are skipped. Ties keep the earlier sphere.
func (rt *Raytracer) nearestHit(ray core.Ray) (Hit, bool) {
	best := Hit{Index: -1}
	found := false

	for i, sphere := range rt.scene.GetSpheres() {
		t0, t1, ok := sphere.Intersect(ray)
		if !ok || t0 == t1 {
			continue
		}

		visible := min(t0, t1)
		if visible < 0 {
			continue
		}

		if !found || visible < best.T {
			best = Hit{Index: i, T: visible}
			found = true
		}
	}

	return best, found
}

// inShadow reports whether any sphere other than skip intersects the ray from
// point along toLight at a positive parameter.
func (rt *Raytracer) inShadow(point, toLight core.Vec3, skip int) bool {
	shadowRay := core.NewRay(point, toLight)

	for i, sphere := range rt.scene.GetSpheres() {
		if i == skip {
			continue
		}
		t0, t1, ok := sphere.Intersect(shadowRay)
		if ok && (t0 > 0 || t1 > 0) {
			return true
		}
	}

	return false
}

// lambert returns the diffuse color of a sphere lit along toLight
func lambert(sphere *geometry.Sphere, light geometry.PointLight, normal, toLight core.Vec3) core.Vec3 {
	cosine := max(0, normal.Dot(toLight))
	return sphere.Color.MultiplyVec(light.Emission()).Multiply(cosine)
}

// shade resolves the color seen along a primary ray
func (rt *Raytracer) shade(ray core.Ray) (core.Vec3, PixelKind) {
	hit, found := rt.nearestHit(ray)
	if !found {
		return rt.scene.GetBackground(), PixelBackground
	}

	sphere := rt.scene.GetSpheres()[hit.Index]
	light := rt.scene.GetLight()

	point := ray.At(hit.T)
	normal := sphere.Normal(point)
	toLight := light.Location.Subtract(point).Normalize()

	if rt.inShadow(point, toLight, hit.Index) {
		return core.Vec3{}, PixelShadowed
	}

	return lambert(sphere, light, normal, toLight), PixelLit
}

// ShadePixel returns the color for the centered pixel coordinate (x, y) and
// whether any sphere was visible there.
func (rt *Raytracer) ShadePixel(x, y int) (core.Vec3, bool) {
	color, kind := rt.shade(rt.scene.GetCamera().GetRay(x, y))
	return color, kind != PixelBackground
}

// renderRow shades every addressable cell of row y
func (rt *Raytracer) renderRow(plane *Plane, y int) RenderStats {
	var stats RenderStats
	camera := rt.scene.GetCamera()
	xMin, xMax := plane.Range()

	for x := xMin; x <= xMax; x++ {
		cell, ok := plane.Point(x, y)
		if !ok {
			stats.SkippedCells++
			continue
		}

		color, kind := rt.shade(camera.GetRay(x, y))
		if kind != PixelBackground {
			*cell = color
		}
		stats.record(kind)
	}

	return stats
}

// Render fills a new framebuffer with the scene.
// The scene must not be modified until Render returns.
func (rt *Raytracer) Render(ctx context.Context) (*Plane, RenderStats, error) {
	plane, err := NewPlane(rt.width, rt.height, rt.scene.GetBackground())
	if err != nil {
		return nil, RenderStats{}, err
	}

	pool := NewWorkerPool(rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %d spheres, %d workers\n",
		rt.width, rt.height, len(rt.scene.GetSpheres()), pool.GetNumWorkers())

	// One task per row of the coordinate domain, top row first
	yMin, yMax := plane.Domain()
	tasks := make([]RowTask, 0, yMax-yMin+1)
	for y := yMax; y >= yMin; y-- {
		tasks = append(tasks, RowTask{TaskID: len(tasks), Y: y})
	}

	startTime := time.Now()
	rowStats, err := pool.Run(ctx, tasks, func(task RowTask) RenderStats {
		return rt.renderRow(plane, task.Y)
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	var stats RenderStats
	for _, rs := range rowStats {
		stats.Merge(rs)
	}
	stats.Elapsed = time.Since(startTime)

	rt.logger.Printf("Render completed in %v: %d lit, %d shadowed, %d background (%.1f%% coverage)\n",
		stats.Elapsed, stats.LitPixels, stats.ShadowedPixels, stats.BackgroundPixels, 100*stats.Coverage())

	return plane, stats, nil
}
