package domain

// Outcome - результат попытки действия.
type Outcome uint8

const (
	// CannotAct - действие невозможно, состояние мира не изменилось.
	CannotAct Outcome = iota
	// Declined - действие допустимо, но делать нечего (удар в пустую клетку).
	// Ход не потрачен, вызывающий может выбрать другое действие.
	Declined
	// Acted - действие выполнено, ход потрачен.
	Acted
)

func (o Outcome) String() string {
	switch o {
	case CannotAct:
		return "CANNOT_ACT"
	case Declined:
		return "DECLINED"
	case Acted:
		return "ACTED"
	}
	return "UNKNOWN"
}

// Ok - ход потрачен.
func (o Outcome) Ok() bool {
	return o == Acted
}
