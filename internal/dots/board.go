package dots

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/engine"
)

// DefaultUISize is the height of the UI bar in surface pixels.
const DefaultUISize = 40

// ErrInvalidSettings is wrapped by every Settings validation error.
var ErrInvalidSettings = errors.New("dots: invalid settings")

// Phase is the lifecycle phase of a session.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "active"
}

// Outcome is how a session ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Settings configures a session.
type Settings struct {
	Width  int
	Height int
	Moves  int
	Goals  []Goal

	// Script is consumed front to back for the initial fill and every refill.
	Script      []DotColor
	AfterScript Fallback

	// Seed drives the random fallback. Zero picks a time-based seed.
	Seed int64
}

// DefaultSettings is a 6×6 free-play board with 30 moves.
func DefaultSettings() Settings {
	return Settings{
		Width:       6,
		Height:      6,
		Moves:       30,
		AfterScript: FallbackRandom,
	}
}

// Validate checks that the settings describe a playable session.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.Moves <= 0 {
		return fmt.Errorf("%w: moves must be positive, got %d", ErrInvalidSettings, s.Moves)
	}
	for i, g := range s.Goals {
		if g.Color.IsDummy() {
			return fmt.Errorf("%w: goal %d targets the dummy color", ErrInvalidSettings, i)
		}
		if g.Needed <= 0 {
			return fmt.Errorf("%w: goal %d needs %d", ErrInvalidSettings, i, g.Needed)
		}
	}
	return nil
}

// Result describes a finished session.
type Result struct {
	Outcome   Outcome
	Score     int
	MovesUsed int
	Goals     []GoalState
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger for resolution and session events.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithUISize sets the height of the UI bar in surface pixels.
func WithUISize(px float64) Option {
	return func(b *Board) {
		b.layout.UISize = max(px, 0)
	}
}

// Board is the match engine. It owns the grid, the path being traced and all
// session counters; the dots and widgets it registers with the engine only
// raise edges.
type Board struct {
	eng      *engine.Engine
	settings Settings
	logger   *log.Logger
	rng      *rand.Rand
	gen      *ColorGenerator

	layout Layout
	grid   *Grid
	seq    Sequence

	path      *PathObject
	movesBar  *BarElement
	scoreBar  *BarElement
	goalBars  []*BarElement
	endScreen *EndScreen
	onEnd     []func(Result)

	moves   int
	score   int
	goals   []GoalState
	phase   Phase
	outcome Outcome
}

// New creates a session on eng, fills the grid and registers the board as an
// engine listener.
func New(eng *engine.Engine, s Settings, opts ...Option) (*Board, error) {
	if eng == nil {
		return nil, fmt.Errorf("dots: %w", engine.ErrNoSurface)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	b := &Board{
		eng:      eng,
		settings: s,
		logger:   log.New(io.Discard),
		rng:      rng,
		gen:      NewColorGenerator(s.Script, s.AfterScript, rng),
		grid:     NewGrid(s.Width, s.Height),
		layout:   Layout{UISize: DefaultUISize},
	}
	for _, opt := range opts {
		opt(b)
	}

	b.path = &PathObject{seq: &b.seq, layout: &b.layout}
	eng.AddObject(b.path)

	ui := b.layout.UISize
	b.movesBar = &BarElement{Icon: "⇅", Rect: engine.Rect{W: 3 * ui, H: ui}}
	b.scoreBar = &BarElement{Icon: "★", Rect: engine.Rect{X: 3.5 * ui, W: 3 * ui, H: ui}}
	eng.AddObject(b.movesBar)
	eng.AddObject(b.scoreBar)
	for i, g := range s.Goals {
		bar := &BarElement{
			IconColor: g.Color.Primary,
			Rect:      engine.Rect{X: (7 + 3.5*float64(i)) * ui, W: 3 * ui, H: ui},
		}
		b.goalBars = append(b.goalBars, bar)
		eng.AddObject(bar)
	}

	b.reset()
	eng.AddListener(b)

	b.logger.Debug("board created", "width", s.Width, "height", s.Height, "moves", s.Moves, "goals", len(s.Goals), "seed", seed)
	return b, nil
}

// OnEnd registers fn to be called when the session ends.
func (b *Board) OnEnd(fn func(Result)) {
	b.onEnd = append(b.onEnd, fn)
}

// reset puts counters back to the configured values and fills a fresh grid.
func (b *Board) reset() {
	b.moves = b.settings.Moves
	b.score = 0
	b.phase = PhaseActive
	b.outcome = OutcomeNone
	b.goals = b.goals[:0]
	for _, g := range b.settings.Goals {
		b.goals = append(b.goals, GoalState{Goal: g})
	}
	b.seq.Reset()

	for x := 0; x < b.grid.Width(); x++ {
		for y := 0; y < b.grid.Height(); y++ {
			b.spawn(x, y, nil)
		}
	}
	b.refreshBars()
}

func (b *Board) spawn(x, y int, exclude *DotColor) {
	d := newDot(x, y, b.gen.Next(exclude), &b.layout, b.eng.Clock())
	b.grid.set(x, y, d)
	b.eng.AddObject(d)
}

func (b *Board) remove(d *Dot) {
	b.grid.set(d.x, d.y, nil)
	b.eng.RemoveObject(d)
}

// Restart throws the board away and starts a new session with the original
// settings. The color script is not rewound.
func (b *Board) Restart() {
	b.grid.Each(func(d *Dot) { b.eng.RemoveObject(d) })
	b.grid.reset()

	if b.endScreen != nil {
		b.eng.RemoveObject(b.endScreen)
		b.endScreen = nil
	}

	b.reset()
	b.logger.Info("session restarted")
}

// OnFrame recomputes the layout before objects update.
func (b *Board) OnFrame(w, h float64) {
	b.layout.Fit(w, h, b.grid.Width(), b.grid.Height())
}

// OnEdge builds the path from dot edges and restarts on an end screen click.
func (b *Board) OnEdge(ev engine.EdgeEvent) {
	switch t := ev.Target.(type) {
	case *Dot:
		if b.phase != PhaseActive {
			return
		}
		switch {
		case ev.Edge == engine.EdgeDown:
			b.seq.Begin(t)
		case ev.Edge == engine.EdgeEnter && ev.Pointer.Pressed:
			b.seq.TryExtend(t)
		}
	case *EndScreen:
		if ev.Edge == engine.EdgeUp && t == b.endScreen {
			b.Restart()
		}
	}
}

// OnInteraction resolves the path when the pointer is released.
func (b *Board) OnInteraction(kind engine.InteractionKind, p engine.Pointer) {
	if kind != engine.InteractionUp {
		return
	}
	if b.phase != PhaseActive {
		b.seq.Reset()
		return
	}
	b.completeSequence()
}

func (b *Board) completeSequence() {
	defer b.seq.Reset()

	if b.seq.Len() < 2 {
		return
	}

	color := b.seq.First().color
	loop := b.seq.IsLoop()

	added := 0
	if loop {
		var matched []*Dot
		b.grid.Each(func(d *Dot) {
			if d.color == color {
				matched = append(matched, d)
			}
		})
		for _, d := range matched {
			b.remove(d)
		}
		added = len(matched)
	} else {
		for _, d := range b.seq.dots {
			b.remove(d)
		}
		added = b.seq.Len()
	}

	b.score += added
	for i := range b.goals {
		if b.goals[i].Color == color {
			b.goals[i].add(added)
		}
	}

	var exclude *DotColor
	if loop {
		exclude = &color
	}
	b.applyGravity(exclude)

	b.moves--
	b.logger.Debug("move resolved", "color", color, "loop", loop, "points", added, "score", b.score, "moves", b.moves)

	b.refreshBars()
	b.evaluate()
}

// applyGravity slides dots down into empty cells, bottom row first, and
// spawns new dots where a column has nothing left above.
func (b *Board) applyGravity(exclude *DotColor) {
	for y := b.grid.Height() - 1; y >= 0; y-- {
		for x := 0; x < b.grid.Width(); x++ {
			if b.grid.At(x, y) != nil {
				continue
			}
			for k := y - 1; k >= 0; k-- {
				if d := b.grid.At(x, k); d != nil {
					b.grid.set(x, k, nil)
					b.grid.set(x, y, d)
					d.moveTo(y)
					break
				}
			}
			if b.grid.At(x, y) == nil {
				b.spawn(x, y, exclude)
			}
		}
	}
}

func (b *Board) evaluate() {
	allMet := len(b.goals) > 0
	for _, g := range b.goals {
		if !g.Satisfied() {
			allMet = false
			break
		}
	}

	switch {
	case allMet:
		b.end(OutcomeWon)
	case b.moves <= 0 && len(b.goals) == 0:
		b.end(OutcomeWon)
	case b.moves <= 0:
		b.end(OutcomeLost)
	}
}

func (b *Board) end(o Outcome) {
	b.phase = PhaseEnded
	b.outcome = o

	b.grid.Each(func(d *Dot) { d.SetDisabled(true) })

	icon, text := "★", fmt.Sprintf("You won! Score %d", b.score)
	if o == OutcomeLost {
		icon, text = "✗", fmt.Sprintf("Out of moves. Score %d", b.score)
	}
	ui := b.layout.UISize
	b.endScreen = newEndScreen(icon, text, "click to play again", b.eng.Clock())
	b.endScreen.Rect = engine.Rect{W: 6 * ui, H: 3 * ui}
	b.eng.AddObject(b.endScreen)

	res := b.Result()
	b.logger.Info("session ended", "outcome", o, "score", res.Score, "moves_used", res.MovesUsed)
	for _, fn := range b.onEnd {
		fn(res)
	}
}

func (b *Board) refreshBars() {
	b.movesBar.Text = strconv.Itoa(b.MovesRemaining())
	b.scoreBar.Text = strconv.Itoa(b.score)
	for i, bar := range b.goalBars {
		bar.Text = b.goals[i].Progress()
	}
}

// Result returns the session result so far.
func (b *Board) Result() Result {
	return Result{
		Outcome:   b.outcome,
		Score:     b.score,
		MovesUsed: b.settings.Moves - b.MovesRemaining(),
		Goals:     b.Goals(),
	}
}

// MovesRemaining returns the moves left, never negative.
func (b *Board) MovesRemaining() int {
	return max(b.moves, 0)
}

// Score returns the number of dots cleared this session.
func (b *Board) Score() int { return b.score }

// Goals returns a copy of the goal progress.
func (b *Board) Goals() []GoalState {
	out := make([]GoalState, len(b.goals))
	copy(out, b.goals)
	return out
}

// GoalProgress returns goal i as "current/needed".
func (b *Board) GoalProgress(i int) string {
	if i < 0 || i >= len(b.goals) {
		return ""
	}
	return b.goals[i].Progress()
}

// Phase returns the session phase.
func (b *Board) Phase() Phase { return b.phase }

// Outcome returns how the session ended, or OutcomeNone while active.
func (b *Board) Outcome() Outcome { return b.outcome }

// Grid returns the board's grid.
func (b *Board) Grid() *Grid { return b.grid }

// DotAt returns the dot at (x, y).
func (b *Board) DotAt(x, y int) *Dot { return b.grid.At(x, y) }

// Sequence returns the path being traced.
func (b *Board) Sequence() []*Dot { return b.seq.Dots() }

// Settings returns the settings the board was created with.
func (b *Board) Settings() Settings { return b.settings }

// EndScreen returns the end screen while the session is over, else nil.
func (b *Board) EndScreen() *EndScreen { return b.endScreen }

// Layout returns the layout computed for the last frame.
func (b *Board) Layout() Layout { return b.layout }
