package bookrun

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/bookrun/internal/config"
	"github.com/vovakirdan/bookrun/internal/core"
)

// newPlaying returns a game that has gone through the whole intro.
func newPlaying(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultBookrunConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 30})
	for i := 0; i <= LastIntroLine; i++ {
		g.HandleInput(core.IntentAdvanceDialogue)
	}
	if g.Session().Mode != ModePlaying {
		t.Fatalf("mode after intro = %v, expected playing", g.Session().Mode)
	}
	mustValidate(t, g)
	return g
}

func mustValidate(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// deliver walks a carrying player up from the top row of column col and
// resolves the scoring row. Bugs do not move (dt is zero).
func deliver(t *testing.T, g *Game, col int) []Event {
	t.Helper()
	g.item.Pickup()
	g.player.Carrying = true
	g.player.Pos = core.V(ColumnX(col), TopY)
	g.HandleInput(core.IntentMoveUp)
	return g.Update(0)
}

func TestIntroDialogue(t *testing.T) {
	g := New(config.DefaultBookrunConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})

	// Anything but advance is ignored during the intro
	for _, in := range []core.Intent{core.IntentMoveUp, core.IntentRestart, core.IntentTogglePause} {
		if ev := g.HandleInput(in); ev != nil {
			t.Errorf("%v during intro produced %v", in, ev)
		}
	}
	if g.Player().Pos != StartTile || g.Session().StoryIndex != 0 {
		t.Fatal("intro state changed on ignored input")
	}

	speaker := g.Session().Speaker
	if speaker != AvatarMiriam {
		t.Fatalf("first speaker = %v, expected Miriam", speaker)
	}

	for i := 1; i <= LastIntroLine; i++ {
		ev := g.HandleInput(core.IntentAdvanceDialogue)
		if !hasEvent(ev, EventDialogue) {
			t.Fatalf("advance %d: expected dialogue event", i)
		}
		s := g.Session()
		if s.Mode != ModeIntro || s.StoryIndex != i {
			t.Fatalf("advance %d: mode %v index %d", i, s.Mode, s.StoryIndex)
		}
		if s.Speaker == speaker {
			t.Fatalf("advance %d: speaker did not change", i)
		}
		speaker = s.Speaker
	}

	ev := g.HandleInput(core.IntentAdvanceDialogue)
	if !hasEvent(ev, EventStart) {
		t.Fatal("final advance should start the game")
	}
	s := g.Session()
	if s.Mode != ModePlaying || s.StoryIndex != EndingLine || s.Level != 0 {
		t.Errorf("after intro: %+v", s)
	}
	if len(g.Enemies()) != 3 {
		t.Errorf("enemies = %d, expected 3", len(g.Enemies()))
	}
}

func TestFreshBoard(t *testing.T) {
	g := newPlaying(t, 7)

	for i, e := range g.Enemies() {
		lane := i + 1
		if e.Lane != lane || e.Pos.Y != float64(83*lane-21) {
			t.Errorf("bug %d on lane %d at y=%v", i, e.Lane, e.Pos.Y)
		}
		if e.Pos.X != float64(-101*lane) {
			t.Errorf("bug %d starts at x=%v, expected %d", i, e.Pos.X, -101*lane)
		}
		if e.Speed < 100 || e.Speed >= 250 {
			t.Errorf("bug %d speed %v outside [100, 250)", i, e.Speed)
		}
	}

	if p := g.Player(); p.Pos != core.V(303, 404) || p.Carrying || p.Avatar != AvatarMiriam {
		t.Errorf("player = %+v", p)
	}
	if !g.Item().Visible {
		t.Error("book should be on the board")
	}
	if cols := g.slots.Columns(); !reflect.DeepEqual(cols, []int{0, 606}) {
		t.Errorf("slots = %v, expected walls only", cols)
	}
}

func TestEndToEndDelivery(t *testing.T) {
	g := newPlaying(t, 42)
	g.item = Item{Pos: core.V(303, 321), Visible: true}

	g.HandleInput(core.IntentMoveUp)
	ev := g.Update(0)
	if !hasEvent(ev, EventPickup) {
		t.Fatal("expected pickup event")
	}
	if !g.Player().Carrying || g.Item().Visible {
		t.Fatal("player should carry the hidden book")
	}
	mustValidate(t, g)

	for i := 0; i < 3; i++ {
		g.HandleInput(core.IntentMoveUp)
		g.Update(0)
	}
	if g.Player().Pos != core.V(303, 72) {
		t.Fatalf("player at %+v, expected top row", g.Player().Pos)
	}

	g.HandleInput(core.IntentMoveUp)
	mustValidate(t, g) // in flight on the scoring row
	ev = g.Update(0)

	if !hasEvent(ev, EventDelivery) {
		t.Fatal("expected delivery event")
	}
	if cols := g.slots.Columns(); !reflect.DeepEqual(cols, []int{0, 303, 606}) {
		t.Errorf("slots = %v, expected [0 303 606]", cols)
	}
	if g.Session().Level != 1 {
		t.Errorf("level = %d, expected 1", g.Session().Level)
	}
	if n := len(g.Enemies()); n != 4 {
		t.Errorf("enemies = %d, expected 4", n)
	}
	if e := g.Enemies()[3]; e.Lane != 4 || e.Pos.Y != 311 {
		t.Errorf("new bug on lane %d at y=%v, expected lane 4", e.Lane, e.Pos.Y)
	}
	p := g.Player()
	if p.Pos != StartTile || p.Carrying {
		t.Errorf("player after delivery = %+v", p)
	}
	if !g.Item().Visible {
		t.Error("book should be back on the board")
	}
	mustValidate(t, g)
}

func TestBounceOnOccupiedSlot(t *testing.T) {
	g := newPlaying(t, 5)
	deliver(t, g, 2)

	ev := deliver(t, g, 2)
	if !hasEvent(ev, EventBounce) || hasEvent(ev, EventDelivery) {
		t.Fatalf("second delivery to the same slot should bounce, got %v", ev)
	}
	if g.Player().Pos != core.V(202, 72) {
		t.Errorf("player at %+v, expected back on the top row", g.Player().Pos)
	}
	if !g.Player().Carrying {
		t.Error("bounced player should keep the book")
	}
	if g.slots.Count() != 3 {
		t.Errorf("slot count = %d, expected 3", g.slots.Count())
	}
	mustValidate(t, g)
}

func TestBounceOnWall(t *testing.T) {
	g := newPlaying(t, 5)
	ev := deliver(t, g, 0)
	if !hasEvent(ev, EventBounce) {
		t.Fatal("wall slot should bounce")
	}
	if g.Session().Level != 0 {
		t.Error("bounce should not change the level")
	}
}

func TestBounceEmptyHanded(t *testing.T) {
	g := newPlaying(t, 5)
	g.player.Pos = core.V(101, 72)

	g.HandleInput(core.IntentMoveUp)
	// Moves wait for the scoring row to resolve
	g.HandleInput(core.IntentMoveLeft)
	if g.Player().Pos != core.V(101, -11) {
		t.Fatalf("move on the scoring row should be ignored, player at %+v", g.Player().Pos)
	}

	ev := g.Update(0)
	if !hasEvent(ev, EventBounce) {
		t.Fatal("empty-handed arrival should bounce")
	}
	if g.Player().Pos != core.V(101, 72) || g.slots.Count() != 2 {
		t.Errorf("player %+v slots %d", g.Player().Pos, g.slots.Count())
	}
}

func TestSlotUniquenessAndGrowth(t *testing.T) {
	g := newPlaying(t, 9)
	for i, col := range []int{4, 1, 5, 3} {
		before := g.slots.Count()
		deliver(t, g, col)
		if got := g.slots.Count(); got != before+1 {
			t.Fatalf("delivery %d: slots %d -> %d", i+1, before, got)
		}
		cols := g.slots.Columns()
		for j := 1; j < len(cols); j++ {
			if cols[j] == cols[j-1] {
				t.Fatalf("duplicate slot %d", cols[j])
			}
		}
		mustValidate(t, g)
	}
}

func TestProgressionMonotonic(t *testing.T) {
	g := newPlaying(t, 21)
	prev := g.Enemies()

	for i, col := range []int{1, 2, 3, 4} {
		deliver(t, g, col)
		cur := g.Enemies()
		if len(cur) < len(prev) {
			t.Fatalf("delivery %d: bug count dropped %d -> %d", i+1, len(prev), len(cur))
		}
		if len(cur) > LaneCount {
			t.Fatalf("delivery %d: %d bugs exceed the lanes", i+1, len(cur))
		}
		for j := range prev {
			if cur[j].Speed < prev[j].Speed {
				t.Errorf("delivery %d: bug %d slowed %v -> %v", i+1, j, prev[j].Speed, cur[j].Speed)
			}
		}
		for j, e := range cur {
			if e.Pos.X > 0 || e.Pos.X <= -200 {
				t.Errorf("delivery %d: bug %d restarted at x=%v", i+1, j, e.Pos.X)
			}
		}
		if g.Session().Level != i+1 {
			t.Errorf("level = %d, expected %d", g.Session().Level, i+1)
		}
		prev = cur
	}
}

func TestEnemyCapAdvancesLaneInstead(t *testing.T) {
	g := newPlaying(t, 33)
	deliver(t, g, 1) // fourth bug appears
	before := g.Enemies()
	if len(before) != LaneCount {
		t.Fatalf("enemies = %d, expected %d", len(before), LaneCount)
	}

	deliver(t, g, 2)
	after := g.Enemies()
	if len(after) != LaneCount {
		t.Fatalf("enemies = %d after cap, expected %d", len(after), LaneCount)
	}

	// The bug on the first lane of the cycle got two bumps, the rest one.
	inc := 50.0
	if got := after[0].Speed - before[0].Speed; math.Abs(got-2*inc) > 1e-9 {
		t.Errorf("cycled bug sped up by %v, expected %v", got, 2*inc)
	}
	for j := 1; j < LaneCount; j++ {
		if got := after[j].Speed - before[j].Speed; math.Abs(got-inc) > 1e-9 {
			t.Errorf("bug %d sped up by %v, expected %v", j, got, inc)
		}
	}
}

func TestWinCondition(t *testing.T) {
	g := newPlaying(t, 77)

	var ev []Event
	for _, col := range []int{1, 2, 3, 4, 5} {
		if g.Session().Mode != ModePlaying {
			t.Fatalf("game ended early before column %d", col)
		}
		ev = deliver(t, g, col)
	}

	if !hasEvent(ev, EventGameOver) {
		t.Fatal("fifth delivery should end the game")
	}
	if g.slots.Count() != SlotCapacity {
		t.Errorf("slots = %d, expected %d", g.slots.Count(), SlotCapacity)
	}

	s := g.Session()
	if s.Mode != ModeGameOver || s.StoryIndex != EndingLine {
		t.Errorf("session = %+v", s)
	}
	if len(g.Enemies()) != 0 {
		t.Error("bugs should be cleared at game over")
	}
	if g.Item().Visible || g.Player().Carrying || g.Player().Pos != StartTile {
		t.Error("board should be cleared at game over")
	}
	mustValidate(t, g)

	// Game over holds until restart
	for _, in := range []core.Intent{core.IntentMoveUp, core.IntentTogglePause, core.IntentAdvanceDialogue} {
		g.HandleInput(in)
	}
	for i := 0; i < 100; i++ {
		if ev := g.Update(0.05); ev != nil {
			t.Fatalf("update during game over produced %v", ev)
		}
	}
	if g.Session().Mode != ModeGameOver || g.Player().Pos != StartTile {
		t.Fatal("game over state changed without restart")
	}

	ev = g.HandleInput(core.IntentRestart)
	if !hasEvent(ev, EventRestart) || g.Session().Mode != ModePlaying {
		t.Fatal("restart should go straight back to play")
	}
}

func TestCollisionResetsPlayer(t *testing.T) {
	g := newPlaying(t, 3)
	g.player.Pos = core.V(303, 72)
	g.enemies[0].Pos.X = 290

	ev := g.Update(0)
	if !hasEvent(ev, EventCollision) {
		t.Fatal("expected collision")
	}
	if hasEvent(ev, EventDrop) {
		t.Error("empty-handed player has nothing to drop")
	}
	p := g.Player()
	if p.Pos != StartTile {
		t.Errorf("player at %+v, expected start tile", p.Pos)
	}
	if p.Avatar != AvatarMike {
		t.Error("a bug hit should hand over to Mike")
	}
	mustValidate(t, g)
}

func TestCollisionDropsBook(t *testing.T) {
	g := newPlaying(t, 3)
	g.item.Pickup()
	g.player.Carrying = true
	g.player.Pos = core.V(404, 155)
	g.enemies[1].Pos.X = 400

	ev := g.Update(0)
	if !hasEvent(ev, EventDrop) || !hasEvent(ev, EventCollision) {
		t.Fatalf("expected drop and collision, got %v", ev)
	}
	if it := g.Item(); !it.Visible || it.Pos != core.V(404, 155) {
		t.Errorf("book = %+v, expected dropped at (404, 155)", it)
	}
	if g.Player().Carrying {
		t.Error("player should no longer carry the book")
	}
	mustValidate(t, g)
}

func TestSingleResetPerTick(t *testing.T) {
	g := newPlaying(t, 3)
	g.item.Pickup()
	g.player.Carrying = true
	g.player.Pos = core.V(303, 72)
	// Two bugs overlapping the player on the same lane
	g.enemies[0].Pos.X = 290
	g.enemies[1] = NewEnemy(1, 310, 100)

	if n := len(CollidingEnemies(g.player, g.enemies, g.cfg.Collision)); n != 2 {
		t.Fatalf("setup: %d colliders, expected 2", n)
	}

	ev := g.Update(0)
	if n := countEvents(ev, EventCollision); n != 1 {
		t.Errorf("collision events = %d, expected 1", n)
	}
	if n := countEvents(ev, EventDrop); n != 1 {
		t.Errorf("drop events = %d, expected 1", n)
	}
	if g.Player().Avatar != AvatarMike {
		t.Error("avatar should swap exactly once")
	}
}

func TestAvatarSwapsOnlyOnCollision(t *testing.T) {
	g := newPlaying(t, 8)
	deliver(t, g, 3)
	if g.Player().Avatar != AvatarMiriam {
		t.Error("delivery should not swap avatar")
	}

	g.player.Pos = core.V(303, 238)
	g.enemies[2].Pos.X = 300
	g.Update(0)
	if g.Player().Avatar != AvatarMike {
		t.Fatal("collision should swap avatar")
	}

	g.HandleInput(core.IntentRestart)
	if g.Player().Avatar != AvatarMiriam {
		t.Error("restart should bring Miriam back")
	}
}

func TestPauseFreezesBoard(t *testing.T) {
	g := newPlaying(t, 13)
	for i := range g.enemies {
		g.enemies[i].Pos.X = 100
	}

	ev := g.HandleInput(core.IntentTogglePause)
	if !hasEvent(ev, EventPause) || !g.Session().Paused {
		t.Fatal("expected pause")
	}

	before := g.Snapshot()
	g.HandleInput(core.IntentMoveUp)
	for i := 0; i < 30; i++ {
		g.Update(0.05)
	}
	after := g.Snapshot()
	if !reflect.DeepEqual(before.EnemyX, after.EnemyX) {
		t.Error("bugs moved while paused")
	}
	if after.PlayerY != before.PlayerY {
		t.Error("player moved while paused")
	}

	ev = g.HandleInput(core.IntentTogglePause)
	if !hasEvent(ev, EventResume) || g.Session().Paused {
		t.Fatal("expected resume")
	}
	g.Update(0.05)
	if reflect.DeepEqual(before.EnemyX, g.Snapshot().EnemyX) {
		t.Error("bugs should move after resume")
	}
}

func TestDeltaClamp(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"normal", 0.05, 105},
		{"long stall clamps", 5, 110},
		{"negative", -1, 100},
		{"nan", math.NaN(), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlaying(t, 1)
			g.enemies[0].Pos.X = 100
			g.enemies[0].Speed = 100
			g.Update(tc.dt)
			if got := g.Enemies()[0].Pos.X; math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("x = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestEnemiesWrapInPlay(t *testing.T) {
	g := newPlaying(t, 17)
	wrapX := g.cfg.Enemies.WrapX
	prev := g.Enemies()
	wraps := 0

	for i := 0; i < 2000; i++ {
		g.player.Pos = StartTile // out of every lane
		g.Update(0.1)
		cur := g.Enemies()
		for j, e := range cur {
			if e.Pos.X > wrapX {
				t.Fatalf("bug %d at %v beyond wrap point", j, e.Pos.X)
			}
			if e.Pos.X < prev[j].Pos.X {
				wraps++
				if e.Pos.X != g.cfg.Enemies.ReentryX {
					t.Fatalf("bug %d re-entered at %v", j, e.Pos.X)
				}
			}
		}
		prev = cur
	}
	if wraps == 0 {
		t.Error("no bug ever wrapped")
	}
}

func TestRestartIdempotence(t *testing.T) {
	g := newPlaying(t, 99)
	deliver(t, g, 2)
	deliver(t, g, 4)

	for i := 0; i < 2; i++ {
		ev := g.HandleInput(core.IntentRestart)
		if !hasEvent(ev, EventRestart) {
			t.Fatal("expected restart event")
		}
		if g.slots.Count() != 2 {
			t.Errorf("restart %d: slots = %d, expected 2", i, g.slots.Count())
		}
		if len(g.Enemies()) != 3 {
			t.Errorf("restart %d: enemies = %d, expected 3", i, len(g.Enemies()))
		}
		if g.Player().Pos != StartTile || g.Player().Carrying {
			t.Errorf("restart %d: player = %+v", i, g.Player())
		}
		if g.Session().Level != 0 || g.Session().Paused {
			t.Errorf("restart %d: session = %+v", i, g.Session())
		}
		mustValidate(t, g)
	}
}

func TestRestartWhilePaused(t *testing.T) {
	g := newPlaying(t, 4)
	g.HandleInput(core.IntentTogglePause)
	g.HandleInput(core.IntentRestart)
	if g.Session().Paused {
		t.Error("restart should unpause")
	}
}

func TestStepDrainsQueueInOrder(t *testing.T) {
	g := newPlaying(t, 2)
	q := core.NewIntentQueue()
	q.Push(core.IntentMoveUp)
	q.Push(core.IntentMoveUp)
	q.Push(core.IntentMoveRight)

	g.Step(&q, 0)
	if g.Player().Pos != core.V(404, 238) {
		t.Errorf("player at %+v, expected (404, 238)", g.Player().Pos)
	}
	if q.Len() != 0 {
		t.Error("Step() should drain the queue")
	}
	if g.Tick() == 0 {
		t.Error("Step() should advance the tick")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	run := func() Snapshot {
		g := New(config.DefaultBookrunConfig())
		g.Reset(core.RuntimeConfig{Seed: 12345})
		script := rand.New(rand.NewSource(1))
		q := core.NewIntentQueue()
		for i := 0; i < 3000; i++ {
			if i%6 == 0 {
				q.Push(core.Intent(1 + script.Intn(int(core.IntentAdvanceDialogue))))
			}
			g.Step(&q, 1.0/60)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	moves := []core.Intent{core.IntentMoveUp, core.IntentMoveUp, core.IntentMoveLeft, core.IntentMoveRight, core.IntentMoveDown}

	for seed := int64(0); seed < 5; seed++ {
		g := newPlaying(t, seed)
		script := rand.New(rand.NewSource(seed))
		q := core.NewIntentQueue()
		for i := 0; i < 5000; i++ {
			if i%4 == 0 {
				q.Push(moves[script.Intn(len(moves))])
			}
			g.Step(&q, 1.0/30)
			if err := g.Validate(); err != nil {
				t.Fatalf("seed %d tick %d: %v", seed, i, err)
			}
		}
	}
}

func TestValidateReportsViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Game)
		want   error
	}{
		{"player off grid", func(g *Game) { g.player.Pos = core.V(50, 404) }, ErrPlayerOutOfBounds},
		{"too many bugs", func(g *Game) {
			g.enemies = append(g.enemies, NewEnemy(4, 0, 100), NewEnemy(1, 0, 100))
		}, ErrTooManyEnemies},
		{"bug off lane", func(g *Game) { g.enemies[0].Pos.Y = 70 }, ErrEnemyOffLane},
		{"book visible while carried", func(g *Game) { g.player.Carrying = true }, ErrItemState},
		{"book missing in play", func(g *Game) { g.item.Hide() }, ErrItemState},
		{"slot keyed wrong", func(g *Game) { g.slots.byX[101] = Slot{X: 202} }, ErrDuplicateSlot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlaying(t, 1)
			tc.mutate(g)
			if err := g.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}
