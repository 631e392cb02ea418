// Package scrollverse is a scroll-driven procedural renderer: a single
// canvas that plays a four-act space sequence as the page it sits behind is
// scrolled from top to bottom.
//
// The engine owns no window and no scroll bar. Collaborators write the
// page's scroll progress, the pointer, the canvas size and the theme into
// an [Inputs]; every frame the [Engine] snapshots those values, advances
// its clock and emits a [CommandList] of 2D primitives for the active
// phase. A [Surface] rasterizes the list. [RasterSurface] does so in
// software with gogpu/gg.
//
// # Quick start
//
// The simplest host is headless: render a chosen scroll position and save
// it.
//
//	size := scrollverse.Size{Width: 1280, Height: 720}
//	engine := scrollverse.NewEngine(scrollverse.DefaultConfig(), scrollverse.NewInputs(size))
//	engine.Inputs().SetScrollProgress(0.6)
//	surface := scrollverse.NewRasterSurface(size)
//	if err := engine.Frame(surface); err != nil {
//		log.Fatal(err)
//	}
//	surface.SavePNG("network.png")
//
// For a continuously animated canvas, hand the engine to a [Driver] along
// with the input sources as [Listener] values:
//
//	d := scrollverse.NewDriver(engine, nil)
//	tour := scrollverse.NewTour(scrollverse.TourConfig{Loop: true})
//	if err := d.Start(surface, size, tour); err != nil {
//		log.Fatal(err)
//	}
//	defer d.Stop()
//
// The ebitenhost and termhost packages provide ready-made window and
// terminal hosts.
//
// # Phases
//
// Scroll progress in [0, 1] is split into four equal bands. Exactly one
// phase draws per frame:
//
//   - [PhaseStarfield]: a rotating, parallaxed 3D starfield
//   - [PhaseWarp]: stars streak into a black hole; a planet emerges
//   - [PhaseNetwork]: a sphere of nodes powers on and links up
//   - [PhaseExplosion]: the sphere bursts and washes into the page
//
// [SelectPhase] maps a progress value to its phase and local progress.
// [Band] exposes the band table so overlays stay in sync with the canvas;
// [OverlayOpacity] and friends reproduce the caption fades.
//
// # Events
//
// An [EventSink] set with [Engine.SetEventSink] receives a [PhaseEvent]
// when the active phase changes and when the scroll crosses the completion
// threshold. The ecs package forwards these into a Donburi world.
//
// # Determinism
//
// The clock advances by a fixed step per frame, not by wall time, and the
// star and node populations come from a seeded source ([Config].Seed).
// [Engine.SetTime] and [Engine.Render] draw an exact moment without
// advancing anything, which is what the capture tool and the tests use.
//
// # Scripted captures
//
// [LoadTestScript] reads a JSON script of scroll, pointer, resize, theme,
// wait and screenshot steps; [RunScript] plays it against a raster surface
// and writes labeled PNGs through a [Capture].
//
// # Logging
//
// Nothing is logged by default. [SetLogger] installs a [log/slog] logger;
// lifecycle messages go out at Info, dropped frames at Warn, and per-frame
// stats at Debug when [Engine.SetDebugMode] is on.
package scrollverse
