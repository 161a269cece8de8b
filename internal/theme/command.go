package theme

import "github.com/bethropolis/restyle/internal/logger"

// Next activates the theme after the current one in ListThemes order,
// wrapping around, and returns the active theme.
func (m *Manager) Next() *Theme {
	names := m.ListThemes()
	current := m.Current()
	next := names[0]
	for i, name := range names {
		if name == current.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := m.SetTheme(next); err != nil {
		logger.Warnf("theme: cycling to %s: %v", next, err)
	}
	return m.Current()
}
