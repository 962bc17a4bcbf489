// Package win32 is the Windows window backend for notification popups. It
// registers the popup window class, translates window messages into display
// events and paints through GDI.
package win32
