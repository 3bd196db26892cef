package sim

// State is the spider behavior tag
type State uint8

const (
	StateWandering State = iota
	StateChasing
	StatePouncing
)

var stateNames = [...]string{
	StateWandering: "wandering",
	StateChasing:   "chasing",
	StatePouncing:  "pouncing",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// Valid reports whether s is one of the three behavior tags
func (s State) Valid() bool {
	return s <= StatePouncing
}

// MarshalText renders the state by name in traces
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Transition records a state change of one spider during one tick
type Transition struct {
	Tick     uint64
	SpiderID int
	From     State
	To       State
}

// legalTransitions is the complete edge set of the behavior machine
var legalTransitions = map[[2]State]bool{
	{StateWandering, StateChasing}: true,
	{StateChasing, StatePouncing}:  true,
	{StatePouncing, StateChasing}:  true,
}

// Legal reports whether the transition is an edge of the behavior machine
func (t Transition) Legal() bool {
	return legalTransitions[[2]State{t.From, t.To}]
}
