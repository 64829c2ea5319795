package masker

import "time"

// showConfig is the per-call configuration of Show.
type showConfig struct {
	duration time.Duration
	fadeIn   time.Duration
	quiet    bool
}

// ShowOption overrides an instance default for a single Show call.
type ShowOption func(*showConfig)

// WithDuration hides the mask automatically d after this Show. Zero or
// less disables the auto-hide for this call.
func WithDuration(d time.Duration) ShowOption {
	return func(c *showConfig) {
		c.duration = d
	}
}

// WithFadeIn sets the fade-in length for this call. Zero shows at once.
func WithFadeIn(d time.Duration) ShowOption {
	return func(c *showConfig) {
		c.fadeIn = d
	}
}

// Quiet suppresses the show event.
func Quiet() ShowOption {
	return func(c *showConfig) {
		c.quiet = true
	}
}

// hideConfig is the per-call configuration of Hide.
type hideConfig struct {
	fadeOut time.Duration
}

// HideOption overrides an instance default for a single Hide call.
type HideOption func(*hideConfig)

// WithFadeOut sets the fade-out length for this call. Zero hides at once.
func WithFadeOut(d time.Duration) HideOption {
	return func(c *hideConfig) {
		c.fadeOut = d
	}
}
