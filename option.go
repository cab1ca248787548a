package glint

// Option is a functional configuration setting for a [Logger].
//
// Options are applied in order, so later options override earlier ones;
// [WithDefaults] is always applied first by [New].
type Option func(config) config

// apply folds opts over cfg, in order.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}
