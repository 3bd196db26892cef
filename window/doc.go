// Package window hosts a session in a desktop window through ebiten
// Build with -tags nowindow to leave it out on machines without cgo and a display
package window
