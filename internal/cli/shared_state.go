package cli

import "context"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Ctx is passed to shell operations. Operations run inside Update,
	// never from a tea.Cmd, so the shell sees one caller at a time.
	Ctx context.Context

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + flash + hints).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 1)
}
