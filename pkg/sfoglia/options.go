package sfoglia

import (
	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// Options configures a drawer stack controller. All fields are optional;
// zero values fall back to the defaults from DefaultOptions.
type Options struct {
	// StackGap is the vertical offset in pixels applied per level of depth
	// below the top of the stack.
	StackGap float64 `toml:"stack_gap"`

	// StackSqueeze is the fractional scale reduction applied per level of
	// depth below the top of the stack.
	StackSqueeze float64 `toml:"stack_squeeze"`

	// PanelHeightFraction is the fraction of the viewport height a panel
	// occupies.
	PanelHeightFraction float64 `toml:"panel_height_fraction"`

	// CornerRadius is the panel corner rounding in pixels.
	CornerRadius float64 `toml:"corner_radius"`

	// BackgroundColorHex is the panel background fill as a 0xRRGGBB value.
	BackgroundColorHex uint32 `toml:"background_color"`

	// HandleClass is the visual class the host applies to the drag handle.
	HandleClass string `toml:"handle_class"`

	// HandleOnly restricts drag-to-dismiss gestures to the handle region.
	// When false the whole panel body is draggable.
	HandleOnly bool `toml:"handle_only"`

	// Languages are BCP 47 language preferences, most preferred first,
	// used to localize placeholder panel copy. Defaults to English.
	Languages []string `toml:"languages"`

	// ProtectedRegion reports whether a press at the given coordinates
	// belongs to an always-on-top companion surface (transient
	// notifications and the like). Presses it claims never dismiss a
	// drawer, even though they land outside every drawer's bounds.
	ProtectedRegion func(x, y float64) bool `toml:"-"`

	// sched overrides the timer scheduler. Tests inject virtual time here.
	sched internal.Scheduler

	// constrained overrides platform detection for the close settle delay.
	// Nil means detect from the environment.
	constrained *bool
}

// DefaultOptions returns the standard drawer configuration.
func DefaultOptions() Options {
	return Options{
		StackGap:            constants.DefaultStackGap,
		StackSqueeze:        constants.DefaultStackSqueeze,
		PanelHeightFraction: constants.DefaultPanelHeightFraction,
		CornerRadius:        constants.DefaultCornerRadius,
		BackgroundColorHex:  0xFFFFFF,
		HandleOnly:          false,
	}
}

// LoadOptionsFile reads a TOML options file and overlays it onto the
// defaults. Fields absent from the file keep their default values.
func LoadOptionsFile(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, NewConfigError("load_options", err)
	}
	return opts.withDefaults(), nil
}

// withDefaults fills zero-valued geometry fields so a partially populated
// Options still produces a sensible stack.
func (o Options) withDefaults() Options {
	if o.StackGap == 0 {
		o.StackGap = constants.DefaultStackGap
	}
	if o.StackSqueeze == 0 {
		o.StackSqueeze = constants.DefaultStackSqueeze
	}
	if o.PanelHeightFraction == 0 {
		o.PanelHeightFraction = constants.DefaultPanelHeightFraction
	}
	if o.CornerRadius == 0 {
		o.CornerRadius = constants.DefaultCornerRadius
	}
	return o
}

// isConstrained resolves the platform timing profile.
func (o Options) isConstrained() bool {
	if o.constrained != nil {
		return *o.constrained
	}
	return constants.IsConstrainedPlatform()
}
