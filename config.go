package masker

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Config is the resolved construction configuration of a Masker. The
// mapstructure tags are the keys recognized in Options and in YAML
// defaults files.
type Config struct {
	// ID is the element id of the mask node. Empty means generate one.
	ID string `mapstructure:"id"`
	// Container selects the node the mask is inserted into ("body", "#id",
	// ".class" or a tag name).
	Container string `mapstructure:"container"`
	// Sample is the markup template materialized on first render. See
	// Format for the fields it may reference.
	Sample string `mapstructure:"sample"`
	// Opacity is the target opacity of the visible mask.
	Opacity float64 `mapstructure:"opacity"`
	// Duration, when positive, hides the mask automatically that long after
	// each Show.
	Duration time.Duration `mapstructure:"duration"`
	// FadeIn and FadeOut are the fade lengths; zero disables the fade.
	FadeIn  time.Duration `mapstructure:"fadeIn"`
	FadeOut time.Duration `mapstructure:"fadeOut"`
	// Volatile makes a click on the mask itself dismiss it.
	Volatile bool `mapstructure:"volatile"`
	// Style holds CSS properties for the mask node. Keys may be kebab-case
	// or camelCase; numeric lengths are taken as pixels.
	Style map[string]any `mapstructure:"style"`
}

// clone returns a copy whose Style map is not shared.
func (c Config) clone() Config {
	c.Style = maps.Clone(c.Style)
	return c
}

// builtinDefaults is a full-viewport black layer at half opacity.
func builtinDefaults() Config {
	return Config{
		Container: "body",
		Sample:    DefaultSample,
		Opacity:   0.5,
		Style: map[string]any{
			"position":         "fixed",
			"top":              0,
			"left":             0,
			"width":            "100%",
			"height":           "100%",
			"z-index":          1024,
			"background-color": "black",
		},
	}
}

var (
	defaultsMu sync.RWMutex
	defaults   = builtinDefaults()
)

// Defaults returns a copy of the process-wide defaults applied beneath the
// options of every New call.
func Defaults() Config {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults.clone()
}

// SetDefaults replaces the process-wide defaults. Masks already constructed
// are unaffected.
func SetDefaults(c Config) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = c.clone()
}

// ResetDefaults restores the built-in defaults.
func ResetDefaults() {
	SetDefaults(builtinDefaults())
}

// LoadDefaults reads a YAML document of Options and applies it over the
// current process-wide defaults. Keys absent from the document keep their
// value; style entries merge per property.
//
//	opacity: 0.7
//	fadeIn: 200ms
//	fadeOut: 150      # milliseconds
//	style:
//	  background-color: "#102030"
func LoadDefaults(r io.Reader) error {
	var opts Options
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && err != io.EOF {
		return fmt.Errorf("masker: read defaults: %w", err)
	}
	cfg := Defaults()
	if err := decodeOptions(opts, &cfg); err != nil {
		return fmt.Errorf("masker: load defaults: %w", err)
	}
	SetDefaults(cfg)
	return nil
}

// configFor resolves the Config of a new Masker: the process-wide defaults
// with opts decoded on top.
func configFor(opts Options) (Config, error) {
	cfg := Defaults()
	if err := decodeOptions(opts, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeOptions decodes opts onto cfg. Only keys present in opts change;
// the Style map is merged key by key into cfg.Style.
func decodeOptions(opts Options, cfg *Config) error {
	if len(opts) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			styleKeysHook,
			millisecondsHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(opts)); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	return nil
}

var (
	durationType = reflect.TypeOf(time.Duration(0))
	styleType    = reflect.TypeOf(map[string]any(nil))
)

// styleKeysHook kebab-cases style property names before they are merged,
// so backgroundColor replaces a default background-color.
func styleKeysHook(from, to reflect.Type, data any) (any, error) {
	if to != styleType {
		return data, nil
	}
	m, ok := asOptions(data)
	if !ok {
		return data, nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[kebab(k)] = v
	}
	return out, nil
}

// millisecondsHook reads bare numbers destined for a time.Duration as
// milliseconds.
func millisecondsHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType || from == durationType {
		return data, nil
	}
	if n, ok := asNumber(data); ok {
		return time.Duration(n * float64(time.Millisecond)), nil
	}
	return data, nil
}
