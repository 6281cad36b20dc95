package core

// IntentKind represents a decoded player intent, abstracted from physical keys.
// The front end turns key presses into intents; the simulation never sees keys.
type IntentKind int

const (
	IntentNone               IntentKind = iota
	IntentJump                          // Jump pressed (edge, not level)
	IntentDuck                          // Duck held or released, see Intent.Held
	IntentPause                         // Toggle pause
	IntentSelectDifficulty              // Pick a difficulty and start a run
	IntentRestart                       // Start a fresh run on the current difficulty
	IntentMenu                          // Abandon the run and return to the menu
	IntentQuit                          // Leave the process
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "None"
	case IntentJump:
		return "JumpPressed"
	case IntentDuck:
		return "DuckHeld"
	case IntentPause:
		return "PauseToggled"
	case IntentSelectDifficulty:
		return "DifficultySelected"
	case IntentRestart:
		return "Restart"
	case IntentMenu:
		return "ReturnToMenu"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is a single decoded command. Held is only meaningful for IntentDuck
// and Difficulty only for IntentSelectDifficulty.
type Intent struct {
	Kind       IntentKind
	Held       bool
	Difficulty Difficulty
}

// JumpPressed returns a jump intent.
func JumpPressed() Intent { return Intent{Kind: IntentJump} }

// DuckHeld returns a duck intent; held=false releases the duck.
func DuckHeld(held bool) Intent { return Intent{Kind: IntentDuck, Held: held} }

// PauseToggled returns a pause toggle intent.
func PauseToggled() Intent { return Intent{Kind: IntentPause} }

// DifficultySelected returns an intent that starts a run on d.
func DifficultySelected(d Difficulty) Intent {
	return Intent{Kind: IntentSelectDifficulty, Difficulty: d}
}

// Restart returns a restart intent.
func Restart() Intent { return Intent{Kind: IntentRestart} }

// ReturnToMenu returns a back-to-menu intent.
func ReturnToMenu() Intent { return Intent{Kind: IntentMenu} }

// Quit returns a quit intent.
func Quit() Intent { return Intent{Kind: IntentQuit} }
