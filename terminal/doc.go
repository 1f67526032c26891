// Package terminal opens the tcell screen the game draws on and restores the
// terminal on exit or panic.
//
// Restoration is two-layered:
//   - tcell Fini on the normal path
//   - raw ANSI reset plus termios repair when Fini cannot run
package terminal
