// Package constants defines shared constants, defaults, and tuning values
// used throughout the sfoglia drawer framework.
package constants

import (
	"os"
	"strings"
	"time"
)

// StackParamKey is the query parameter key that persists the drawer stack.
// One repeated value per open drawer, in stack order.
const StackParamKey = "drawer"

// EntryIDPrefix prefixes derived drawer entry identifiers.
// An entry's ID is the prefix plus its stack index, e.g. "drawer-0".
const EntryIDPrefix = "drawer-"

// Development is the environment variable value for development mode.
const Development = "DEV"

// PlatformEnvVar is the environment variable naming the device platform.
const PlatformEnvVar = "PLATFORM"

// Default geometry for stacked panels.
const (
	// DefaultStackGap is the vertical offset, in pixels, applied per level
	// of depth below the top of the stack.
	DefaultStackGap = 40.0

	// DefaultStackSqueeze is the fractional scale reduction applied per
	// level of depth below the top of the stack.
	DefaultStackSqueeze = 0.04

	// DefaultPanelHeightFraction is the fraction of the viewport height a
	// panel occupies.
	DefaultPanelHeightFraction = 0.85

	// DefaultCornerRadius is the panel corner rounding in pixels.
	DefaultCornerRadius = 16.0
)

// DismissThreshold is the fraction of panel extent a drag must cover at
// release for the gesture to commit as a dismissal. Releases strictly below
// the threshold cancel and the panel animates back to rest.
const DismissThreshold = 0.30

// Timing for the open/close choreography.
const (
	// OpenFlipDelay is how long a freshly appended panel stays in its
	// off-screen pose before its open flag flips, so the entrance plays as
	// a transition instead of appearing instantaneously. One display frame.
	OpenFlipDelay = 16 * time.Millisecond

	// CloseSettleDelay is the wait between marking a panel closing and
	// mutating the persisted stack, letting the exit transform play out.
	CloseSettleDelay = 200 * time.Millisecond

	// CloseSettleDelayConstrained replaces CloseSettleDelay on constrained
	// platforms, which need more headroom to avoid rendering artifacts
	// while the exit transform is in flight.
	CloseSettleDelayConstrained = 400 * time.Millisecond

	// CloseUnmarkDelay is the wait after the stack mutation before the
	// closing mark is cleared, keeping the position out of depth math for
	// the whole visual transition.
	CloseUnmarkDelay = 50 * time.Millisecond

	// OutsidePressGrace is the startup window during which outside presses
	// are ignored, so the press that opened a drawer cannot immediately
	// dismiss it.
	OutsidePressGrace = 100 * time.Millisecond
)

// Z-layer assignment. Each stack position owns two layers: its dimming
// backdrop and, one above it, the panel itself.
const (
	// BaseLayer is the z-layer of the bottom-most drawer's backdrop.
	BaseLayer = 100

	// LayersPerPanel is the number of z-layers each stack position occupies.
	LayersPerPanel = 2
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// constrainedPlatforms lists PLATFORM substrings that identify devices
// needing the longer close settle delay.
var constrainedPlatforms = []string{"TG5050", "TG3040", "MIYOO", "RG35XX"}

// IsConstrainedPlatform reports whether the PLATFORM environment variable
// names a device known to drop frames during overlapping transitions.
func IsConstrainedPlatform() bool {
	platform := strings.ToUpper(os.Getenv(PlatformEnvVar))
	if platform == "" {
		return false
	}
	for _, p := range constrainedPlatforms {
		if strings.Contains(platform, p) {
			return true
		}
	}
	return false
}
