package utils

/**
 * Key formats for Redis entries. Keeps every caller on the same layout
 * instead of repeating "fmt.Sprintf(...)" with the same format string.
 */

import "fmt"

func FormatDrawLockKey(eventID string) string {
	return fmt.Sprintf("event:%s:draw:lock", eventID)
}
