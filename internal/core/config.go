package core

// RuntimeConfig is what the platform tells the engine about the session.
// The engine only uses the seed; screen size and tick rate belong to the
// frame driver.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the frame driver
	Seed     int64 // RNG seed; 0 asks the platform for a time-based one
}

// DefaultConfig returns the settings used when nothing else is known:
// a classic 80x24 terminal at 60 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
