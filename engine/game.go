package engine

// GameState is the public state of one hand. It never holds the players'
// hands: those belong to the caller, which passes a hand wherever a rule
// needs one. GameState is a flat value type; copy it to branch a search.
type GameState struct {
	Rules        ChargingRules // 1 byte
	Phase        GamePhase     // 1 byte
	Done         DoneState     // 1 byte
	ChargeCount  uint8         // 1 byte
	Charges      ChargeState   // 2 bytes
	NextActor    Seat          // 1 byte, NoSeat when undetermined
	Played       Cards         // 8 bytes
	Claims       ClaimState    // 2 bytes
	Won          WonState      // 4 bytes
	LedSuits     Suits         // 1 byte
	CurrentTrick Trick         // 8 bytes
}

// NewGameState returns the state of a game before anyone sits down.
func NewGameState() GameState {
	return GameState{
		Rules:        Classic,
		Phase:        PhasePassLeft,
		NextActor:    NoSeat,
		CurrentTrick: EmptyTrick,
	}
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsComplete reports whether the game is over.
func (g *GameState) IsComplete() bool { return g.Phase.IsComplete() }

// Unplayed returns the cards not yet played this hand.
func (g *GameState) Unplayed() Cards { return AllCards &^ g.Played }

// CanCharge reports whether seat may charge now as far as turn order goes.
func (g *GameState) CanCharge(seat Seat) bool {
	return g.NextActor == NoSeat || g.NextActor == seat
}

// HeartsPlayed reports whether any heart has left a hand this hand.
func (g *GameState) HeartsPlayed() bool { return g.Played.ContainsAny(AllHearts) }

// FirstTrick reports whether the current trick is the hand's first.
func (g *GameState) FirstTrick() bool { return g.CurrentTrick.Cards().Contains(TwoClubs) }

// ---------------------------------------------------------------------------
// Snapshot Undo (Save / Restore)
// ---------------------------------------------------------------------------

// Snapshot is a value copy of GameState.
type Snapshot GameState

// Save returns a snapshot of the current game state.
func (g *GameState) Save() Snapshot { return Snapshot(*g) }

// Restore replaces the game state with the given snapshot.
func (g *GameState) Restore(s Snapshot) { *g = GameState(s) }
