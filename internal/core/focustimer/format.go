package focustimer

import "fmt"

// FormatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// StatusLabel returns the short status text shown under the clock.
func StatusLabel(state State) string {
	switch state {
	case StateRunning:
		return "Focusing"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Done"
	default:
		return "Ready"
	}
}
