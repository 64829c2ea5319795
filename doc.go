// Package masker is a self-managing overlay ("mask") for [dom] scenes: a
// layer that dims and blocks whatever lies beneath it, with fades,
// auto-hide and click-to-dismiss.
//
// # Quick start
//
//	scene := dom.NewScene(640, 480)
//	m, err := masker.New(scene, masker.Options{
//		"opacity":  0.6,
//		"fadeIn":   200,     // milliseconds
//		"fadeOut":  "150ms", // or a duration string
//		"volatile": true,    // a click on the mask dismisses it
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	m.Show()
//
// The mask lives on the scene clock: fades and timers advance when the
// scene is updated, from an Ebitengine game loop or headless through
// [dom.Scene.Advance].
//
// # Lifecycle
//
// The node is created on the first [Masker.Render] or [Masker.Show] and
// reused until [Masker.Remove]. [Masker.Destroy] releases the mask for
// good; every later call fails with [ErrInvalidState].
//
// Handlers registered with [Masker.On] observe [EventRender], [EventShow],
// [EventHide] and [EventRemove]. A hide handler returning false cancels
// the hide:
//
//	m.On(masker.EventHide, func(*masker.Masker) any {
//		return !form.Dirty()
//	})
//
// # Click-through
//
// When a volatile mask is dismissed by a click it does not vanish at once:
// it stays in place, fully transparent, for 200ms so that the same click
// cannot land on the content it uncovers. Timers scheduled by a mask are
// never cancelled, so an auto-hide that fires after Destroy only logs the
// resulting error.
//
// # Configuration
//
// A host component usually accepts a loose mask setting (true, false, a
// number taken as an opacity, or a mapping). [Normalize] resolves such a
// setting against the component's defaults; a nil result means no mask:
//
//	if opts := masker.Normalize(dialogDefaults, setting); opts != nil {
//		m, err = masker.New(scene, opts)
//	}
//
// Keys missing from the options fall back to the process-wide defaults,
// which can be replaced with [SetDefaults] or loaded from YAML with
// [LoadDefaults].
package masker
