// Package fractal is an interactively explorable fractal renderer: a
// viewport pans and zooms over a complex-plane region while a pluggable
// compute backend produces per-pixel iteration counts that are colored and
// blitted to a canvas surface.
//
// # Architecture
//
// [Viewport] owns the authoritative complex-plane bounds and the coordinate
// math (pan, zoom about a focal point, resize, aspect enforcement).
// [Renderer] drives the pixel surface with two paths: ExactRender recomputes
// every pixel through the [ComputeBackend] and [ColorMap] in one batched
// call, while the Approximate methods cheaply translate or scale the
// previous frame for immediate feedback. [Controller] ties them together: an
// Idle/Panning pointer state machine plus a trailing-edge [Debouncer], so a
// burst of interaction costs exactly one exact render, one quiet period
// after the last event.
//
// # Quick start
//
//	viewport := fractal.NewViewport(fractal.HomeView, 800, 600)
//	surface := fractal.NewImageSurface(800, 600)
//	renderer := fractal.NewRenderer(viewport, fractal.MandelbrotBackend{},
//		fractal.NewColorMap(), surface, fractal.DefaultOptions())
//	ctrl := fractal.NewController(viewport, renderer, fractal.ControllerConfig{})
//
// Feed pointer and wheel events into ctrl and call ctrl.Update from the
// event loop. See examples/explorer for a complete Ebitengine app and
// examples/server for serving a backend to [RemoteBackend] clients over
// websocket.
//
// # Backends
//
// [MandelbrotBackend], [FastBackend], and [ParallelBackend] compute locally
// and are count-identical at the same inputs; [RemoteBackend] forwards
// batches to a server running [BackendHandler]. Renderer.SetBackend swaps
// engines at an unchanged viewport, which makes cross-backend validation a
// pixel-buffer comparison.
//
// The whole interaction model is single-threaded: all viewport mutation and
// both render paths run to completion within the triggering call, and the
// debounce is polled from the update tick rather than running on its own
// goroutine.
package fractal
