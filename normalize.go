package masker

// Options is a loosely typed mask configuration, as accepted by New and
// produced by Normalize. Recognized keys are listed on Config.
type Options map[string]any

// Normalize resolves the mask setting of a host component into one
// canonical shape. Both arguments may be a mapping (Options or
// map[string]any), a number (taken as an opacity), true, false, nil
// (unset) or any other value.
//
// The result is a mapping when the mask is enabled, possibly empty, or nil
// when it is disabled. The rules, in order:
//
//  1. config == false disables the mask.
//  2. A number n becomes Options{"opacity": n}.
//  3. Two mappings merge shallowly, config winning per key.
//  4. config == true enables with defaults if it is a mapping, else empty.
//  5. An unset config falls back to defaults if it is a mapping, else
//     empty when defaults is truthy, else disabled.
//  6. Anything else yields config if it is a mapping, else empty when
//     config is truthy, else disabled.
//
// Normalize never fails and never mutates its arguments, but rules 4 and 5
// return the defaults mapping itself rather than a copy.
func Normalize(defaults, config any) Options {
	defaults, config = unsetNilMap(defaults), unsetNilMap(config)

	if b, ok := config.(bool); ok && !b {
		return nil
	}

	if n, ok := asNumber(defaults); ok {
		defaults = Options{"opacity": n}
	}
	if n, ok := asNumber(config); ok {
		config = Options{"opacity": n}
	}

	d, dIsMap := asOptions(defaults)
	c, cIsMap := asOptions(config)

	if dIsMap && cIsMap {
		merged := make(Options, len(d)+len(c))
		for k, v := range d {
			merged[k] = v
		}
		for k, v := range c {
			merged[k] = v
		}
		return merged
	}

	if b, ok := config.(bool); ok && b {
		if dIsMap {
			return d
		}
		return Options{}
	}

	if config == nil {
		if dIsMap {
			return d
		}
		if truthy(defaults) {
			return Options{}
		}
		return nil
	}

	if cIsMap {
		return c
	}
	if truthy(config) {
		return Options{}
	}
	return nil
}

// unsetNilMap turns a typed nil map into an untyped nil so that it counts
// as unset.
func unsetNilMap(v any) any {
	switch m := v.(type) {
	case Options:
		if m == nil {
			return nil
		}
	case map[string]any:
		if m == nil {
			return nil
		}
	}
	return v
}

// asOptions reports whether v is a mapping and returns it as Options.
func asOptions(v any) (Options, bool) {
	switch m := v.(type) {
	case Options:
		return m, true
	case map[string]any:
		return Options(m), true
	}
	return nil, false
}

// asNumber converts any Go numeric value to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// truthy applies loose truthiness: nil, false, "" and zero numbers are
// falsy, everything else is truthy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if n, ok := asNumber(v); ok {
		return n != 0
	}
	return true
}
