package display

// Nop is the facade of a board without a panel. Every call returns at once.
type Nop struct{}

func (Nop) Initialize() error     { return nil }
func (Nop) Enable(bool)           {}
func (Nop) Printf(string, ...any) {}
func (Nop) RenderNow() error      { return nil }
