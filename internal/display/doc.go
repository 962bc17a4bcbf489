// Package display owns the lifecycle of notification popup windows: class
// registration, creation, custom painting, close-glyph hit-testing, stacking
// of active popups against the work area, and timed expiry. Platform calls
// go through the Backend interface so the state machine runs without a real
// window system.
package display
