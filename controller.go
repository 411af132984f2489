package fractal

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// defaultWheelSensitivity is k in zoomFactor = exp(-deltaY·k): roughly
	// ×1.27 per standard 120-unit wheel notch.
	defaultWheelSensitivity = 0.002
	// defaultDebounceDelay is the quiet period after the last pan or zoom
	// before the authoritative render fires.
	defaultDebounceDelay = time.Second
)

// ControllerConfig tunes the interaction controller. Zero values select the
// documented defaults.
type ControllerConfig struct {
	// WheelSensitivity is k in zoomFactor = exp(-deltaY·k). Upward scroll
	// carries a negative delta, so it zooms in. Defaults to 0.002.
	WheelSensitivity float64
	// DebounceDelay is the trailing-edge debounce quiet period. Defaults to
	// one second.
	DebounceDelay time.Duration
}

// glideAnim animates the viewport toward a target region. The tween drives
// a single progress value; bounds are interpolated in float64 to avoid the
// tween's float32 resolution.
type glideAnim struct {
	tween    *gween.Tween
	from, to Bounds
}

// Controller is the input state machine and debounce scheduler. It feeds
// pointer and wheel events into the viewport (authoritative, synchronous)
// and the renderer's approximate paths (cosmetic, immediate), then coalesces
// the expensive exact render behind a trailing-edge debounce.
//
// Single-threaded by design: call every method, including Update, from the
// same goroutine (the event/game loop).
type Controller struct {
	viewport *Viewport
	renderer *Renderer

	mode         Mode
	lastX, lastY float64

	debounce *Debouncer
	wheelK   float64

	glide *glideAnim
}

// NewController creates a controller over the given viewport and renderer.
func NewController(viewport *Viewport, renderer *Renderer, cfg ControllerConfig) *Controller {
	if cfg.WheelSensitivity == 0 {
		cfg.WheelSensitivity = defaultWheelSensitivity
	}
	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = defaultDebounceDelay
	}
	return &Controller{
		viewport: viewport,
		renderer: renderer,
		mode:     ModeIdle,
		debounce: NewDebouncer(cfg.DebounceDelay),
		wheelK:   cfg.WheelSensitivity,
	}
}

// Mode returns the current input state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// PointerDown starts a pan. Only the primary button in the idle state has
// any effect; the position becomes the drag anchor.
func (c *Controller) PointerDown(x, y float64, button MouseButton) {
	if c.mode != ModeIdle || button != MouseButtonLeft {
		return
	}
	c.mode = ModePanning
	c.lastX = x
	c.lastY = y
}

// PointerMove advances a pan. Zero deltas are ignored; otherwise the raster
// shifts immediately, the viewport pans authoritatively, and the debounce
// countdown restarts.
func (c *Controller) PointerMove(x, y float64) {
	if c.mode != ModePanning {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	if dx == 0 && dy == 0 {
		return
	}

	w, h := c.renderer.canvasSize()
	c.renderer.ApproximatePan(dx, dy)
	c.viewport.Pan(dx, dy, w, h)
	c.lastX = x
	c.lastY = y
	c.debounce.Arm()
}

// PointerUp ends a pan, wherever the pointer is released, and performs one
// exact render immediately. Any debounce armed during the drag is cancelled:
// the release render already is the authoritative frame, so letting the
// timer fire would only repeat it.
func (c *Controller) PointerUp(x, y float64) error {
	if c.mode != ModePanning {
		return nil
	}
	c.mode = ModeIdle
	c.debounce.Cancel()
	if _, err := c.renderer.ExactRender(); err != nil {
		return fmt.Errorf("render on release: %w", err)
	}
	return nil
}

// Wheel zooms about the cursor position in any state. Upward scroll
// (negative delta) zooms in. The raster scales immediately, the viewport
// zooms authoritatively, and the debounce countdown restarts.
func (c *Controller) Wheel(deltaY, fx, fy float64) {
	factor := math.Exp(-deltaY * c.wheelK)

	w, h := c.renderer.canvasSize()
	c.renderer.ApproximateZoom(factor, fx, fy)
	c.viewport.Zoom(factor, fx, fy, w, h)
	c.debounce.Arm()
}

// JumpTo moves the viewport straight to the target region and renders it
// exactly, bypassing the debounce.
func (c *Controller) JumpTo(target Bounds) error {
	c.glide = nil
	c.debounce.Cancel()
	c.viewport.SetBounds(target)
	if _, err := c.renderer.ExactRender(); err != nil {
		return fmt.Errorf("render after jump: %w", err)
	}
	return nil
}

// GlideTo animates the viewport to the target region over duration seconds.
// Each Update tick moves the authoritative bounds, reprojects the raster for
// feedback, and rearms the debounce, so one exact render follows the glide.
// A glide replaces any glide already in progress.
func (c *Controller) GlideTo(target Bounds, duration float32, easeFn ease.TweenFunc) {
	c.glide = &glideAnim{
		tween: gween.New(0, 1, duration, easeFn),
		from:  c.viewport.Bounds(),
		to:    target,
	}
}

// Gliding reports whether a glide animation is in progress.
func (c *Controller) Gliding() bool {
	return c.glide != nil
}

// Update advances the glide animation by dt seconds and fires the debounced
// exact render when its quiet period has elapsed. Call once per tick of the
// event loop; a render failure propagates for the enclosing shell to
// surface.
func (c *Controller) Update(dt float64) error {
	if c.glide != nil {
		t, done := c.glide.tween.Update(float32(dt))
		prev := c.viewport.Bounds()
		next := lerpBounds(c.glide.from, c.glide.to, float64(t))
		c.viewport.SetBounds(next)
		c.renderer.ApproximateReproject(prev, c.viewport.Bounds())
		c.debounce.Arm()
		if done {
			c.glide = nil
		}
	}

	if c.debounce.Fire() {
		if _, err := c.renderer.ExactRender(); err != nil {
			return fmt.Errorf("debounced render: %w", err)
		}
	}
	return nil
}
