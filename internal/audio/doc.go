// Package audio plays the notification alert. A configured WAV, OGG or MP3
// file is played through the beep library; otherwise, or when the file
// cannot be played, a plain beep is sounded.
package audio
