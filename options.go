package enums

type config struct {
	flags bool
}

// Option configures a [Register] call.
type Option func(*config)

func defaultConfig() config {
	return config{}
}

// WithFlags marks the type being registered as a flags (bitmask) enum.
//
// Flags enums gain three behaviors: [Parse] accepts combinations of names
// joined by "|" or ",", the "G" format specifier decomposes unions into
// their constituent names, and [IsDefined] accepts any bitwise-OR of
// declared values rather than only exact constants.
func WithFlags() Option {
	return func(c *config) {
		c.flags = true
	}
}
