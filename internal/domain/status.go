package domain

// Status - временное состояние сущности.
type Status uint8

const (
	StatusConfused Status = iota + 1
)

var statusToString = map[Status]string{
	StatusConfused: "CONFUSED",
}

func (s Status) String() string {
	if val, ok := statusToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// Statuses - оставшееся число ходов для каждого активного состояния.
type Statuses map[Status]uint32

func (s Statuses) Has(st Status) bool {
	return s[st] > 0
}

// Apply выставляет длительность, не сокращая уже действующую.
func (s Statuses) Apply(st Status, turns uint32) {
	s[st] = max(s[st], turns)
}

// Tick уменьшает все счётчики на один ход и убирает истёкшие.
func (s Statuses) Tick() {
	for st, left := range s {
		if left <= 1 {
			delete(s, st)
			continue
		}
		s[st] = left - 1
	}
}
