package fastpane

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultCrashLogPath is ~/.fastpane/crash.log, or ./.fastpane/crash.log when
// the home directory is unknown.
func DefaultCrashLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".fastpane", "crash.log")
}

func writeCrashLog(path string, data string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(data), 0o644)
}

func formatCrashLog(frame int, size Size, cursor Point, cause error, placements []Placement) string {
	var crashData strings.Builder
	crashData.WriteString("Crash at ")
	crashData.WriteString(time.Now().Format(time.RFC3339))
	crashData.WriteString("\n")
	crashData.WriteString("Frame: ")
	crashData.WriteString(strconv.Itoa(frame))
	crashData.WriteString("\n")
	crashData.WriteString("Terminal size: ")
	crashData.WriteString(size.String())
	crashData.WriteString("\n")
	crashData.WriteString("Cursor: ")
	crashData.WriteString(cursor.String())
	crashData.WriteString("\n")
	crashData.WriteString("Error: ")
	crashData.WriteString(cause.Error())
	crashData.WriteString("\n\n")
	crashData.WriteString("=== Window placements ===\n")
	for idx, p := range placements {
		crashData.WriteString("[")
		crashData.WriteString(strconv.Itoa(idx))
		crashData.WriteString("] origin=")
		crashData.WriteString(p.Region.Origin.String())
		crashData.WriteString(" size=")
		crashData.WriteString(p.Region.Size.String())
		crashData.WriteString(" wrap=")
		crashData.WriteString(strconv.FormatBool(p.Window.Wrapping()))
		crashData.WriteString("\n")
	}
	return crashData.String()
}
