package pure

// Extend copies every entry of each source into target, in order. Later
// sources win over earlier ones and over target's own entries.
// target is modified in place and returned.
func Extend[V any](target *Mapping[V], sources ...*Mapping[V]) *Mapping[V] {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for k, v := range src.All() {
			target.Set(k, v)
		}
	}
	return target
}

// Defaults fills in keys target does not have yet. The first writer wins:
// target's own entries, then sources in order.
func Defaults[V any](target *Mapping[V], sources ...*Mapping[V]) *Mapping[V] {
	for _, src := range sources {
		if src == nil {
			continue
		}
		for k, v := range src.All() {
			if !target.Has(k) {
				target.Set(k, v)
			}
		}
	}
	return target
}
