// Package sfoglia renders any page-level view of a routed application as a
// stacked, swipe-dismissible overlay panel ("drawer") instead of a full
// navigation, while the host's persisted list-valued query state remains the
// single source of truth. Because the stack lives in the location, it
// survives reloads, back/forward navigation, and shared locations.
//
// The package is headless: it derives the ordered drawer stack, resolves each
// drawer's path to a view through the host's route tree, recognizes
// drag-to-dismiss gestures, and choreographs the open/close transforms of
// every panel. The host supplies three primitives (read the current location,
// read/write the list-valued query parameter, navigate with a new history
// entry) and applies the computed poses however it renders.
//
// # Basic Usage
//
//	host := stack.NewMemoryHost("/")
//	routes := []route.Node{
//	    {Pattern: "profile", View: profileView},
//	    {Pattern: "settings", View: settingsView},
//	}
//
//	ctrl, err := sfoglia.New(host, routes, sfoglia.DefaultOptions())
//	if err != nil {
//	    ...
//	}
//
//	ctrl.Push("/profile")        // open a drawer
//	ctrl.Push("/settings")       // stack a second one on top
//
//	for _, panel := range ctrl.RenderModel() {
//	    // panel.View or panel.Placeholder, panel.Pose, panel.Close, ...
//	}
package sfoglia

import (
	"log/slog"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// GetLogger returns the framework logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before constructing a controller to take effect from the start.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogLevel sets the minimum log level for the framework logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
