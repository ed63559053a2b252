// Package fastpane lays out content providers in nested, weighted terminal
// regions and turns their drawing actions into absolute terminal commands.
package fastpane

// Provider is a unit of displayable content that does not know where it is
// placed on screen.
type Provider interface {
	// Render returns the actions needed to draw the provider into a window of
	// the given size, in the window's local frame. It is called once per
	// frame and must only depend on the provider's own state and size; the
	// returned slice is not retained between frames.
	Render(size Size) []Action
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(size Size) []Action

func (f ProviderFunc) Render(size Size) []Action {
	return f(size)
}
