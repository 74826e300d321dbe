package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// hudStatus is the one-line summary shown when the HUD is on.
func hudStatus(fireworks, sparks int, elapsed time.Duration, paused bool) string {
	status := fmt.Sprintf("Fireworks: %d  Sparks: %d  Time: %s", fireworks, sparks, formatDuration(elapsed))
	if paused {
		status += "  [paused - Space to resume]"
	}
	return status
}
