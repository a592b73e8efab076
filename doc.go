// Package modesto is a small retained-mode desktop compositor for
// [Ebitengine].
//
// Modesto renders a desktop of movable windows and a global menu bar into a
// plain software pixel buffer. Every widget caches its last render and only
// recomposes when it or one of its children changed, so an idle desktop costs
// a handful of pointer comparisons per frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	desktop := modesto.NewDesktop(720, 480)
//	desktop.RegisterWindow(modesto.NewWindow(" Title ", 500, 300, 50, 50))
//	modesto.Run(desktop, modesto.RunConfig{Title: "DESKTOP"})
//
// For full control, sample the mouse yourself, feed [Desktop.Update] once per
// tick and upload the buffer returned by [Desktop.Draw]:
//
//	var tracker modesto.PointerTracker
//	ps := tracker.Sample(pos, left, right, middle, wheelY)
//	desktop.Update(ps, 1.0/60)
//	frame := desktop.Draw(720, 480)
//	screen.WritePixels(frame.RGBABytes())
//
// # Widgets and caching
//
// Everything on screen is a [Widget]: [Desktop] holds [Window] values, a
// window holds a [WindowChrome] (with its [CloseButton] and title) and a
// body, and each window carries the [TopBar] shown while it is focused.
// Render returns nil when the previous buffer at the same size is still
// valid; callers then use Cache. Composites poll every child each frame and
// only recompose when one of them produced a fresh buffer.
//
// Compositing uses [Blit], which fails closed: a child that does not fit its
// parent floods the parent red for that frame and reports
// [ErrLayoutOverflow].
//
// # Input
//
// [PointerTracker] turns button levels into at most one edge event per tick.
// The desktop routes each edge to the open fold-out menu, the global menu
// band or the first window under the pointer, raising that window on a
// press. Widgets react to follow-up input by deferring callbacks on the
// [CallbackRegistrar]; callbacks return [Intent] values addressed by
// [WidgetID], which the desktop delivers after the drain. Callbacks owned by
// a removed widget are dropped.
//
// # Extras
//
// Window glides use tweens (via [gween]). Layouts load from TOML (via
// [toml]), headless runs use [Desktop.InjectClick] and [TestRunner] scripts,
// and routed events can be forwarded to an ECS world (via the [Donburi]
// adapter in modesto/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [toml]: https://github.com/BurntSushi/toml
// [Donburi]: https://github.com/yohamta/donburi
package modesto
