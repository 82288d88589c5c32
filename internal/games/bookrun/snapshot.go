package bookrun

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	Level       int
	StoryIndex  int
	Paused      bool
	PlayerX     float64
	PlayerY     float64
	Carrying    bool
	Avatar      Avatar
	ItemX       float64
	ItemY       float64
	ItemVisible bool
	Slots       []int // Filled columns, walls included, ascending
	EnemyCount  int
	EnemyX      []float64
	EnemySpeeds []float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	xs := make([]float64, len(g.enemies))
	speeds := make([]float64, len(g.enemies))
	for i, e := range g.enemies {
		xs[i] = e.Pos.X
		speeds[i] = e.Speed
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        g.session.Mode,
		Level:       g.session.Level,
		StoryIndex:  g.session.StoryIndex,
		Paused:      g.session.Paused,
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		Carrying:    g.player.Carrying,
		Avatar:      g.player.Avatar,
		ItemX:       g.item.Pos.X,
		ItemY:       g.item.Pos.Y,
		ItemVisible: g.item.Visible,
		Slots:       g.slots.Columns(),
		EnemyCount:  len(g.enemies),
		EnemyX:      xs,
		EnemySpeeds: speeds,
	}
}
