package ride

// Status is the client-side view of a ride's progress.
type Status string

const (
	StatusSearching  Status = "searching"
	StatusAccepted   Status = "accepted"
	StatusPickup     Status = "pickup"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
)

var statusRank = map[Status]int{
	StatusSearching:  0,
	StatusAccepted:   1,
	StatusPickup:     2,
	StatusInProgress: 3,
	StatusCompleted:  4,
}

// Transition is a single allowed edge in the ride status machine.
type Transition struct {
	From Status
	To   Status
}

var transitionsTable = []Transition{
	{From: StatusSearching, To: StatusAccepted},
	{From: StatusAccepted, To: StatusPickup},
	{From: StatusPickup, To: StatusInProgress},
	{From: StatusInProgress, To: StatusCompleted},
}

// Allowed reports whether advancing from one status to another keeps the
// monotonic order. Staying in place and skipping forward are both legal: a
// poller that observes the clock late may jump several stages at once.
func Allowed(from, to Status) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// Next returns the adjacent status after the given one, or the same status if
// it is terminal.
func Next(from Status) Status {
	for _, t := range transitionsTable {
		if t.From == from {
			return t.To
		}
	}
	return from
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted
}
