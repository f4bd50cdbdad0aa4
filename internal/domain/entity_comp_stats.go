package domain

// TakeDamage наносит урон. Возвращает true, если удар оказался смертельным.
func (h *Health) TakeDamage(amount int32) bool {
	if h.IsDead() {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	h.HP -= amount
	return h.HP <= 0
}

// Heal лечит, не превышая MaxHP. Мёртвых не лечим.
func (h *Health) Heal(amount int32) {
	if h.IsDead() {
		return
	}
	h.HP = min(h.HP+amount, h.MaxHP)
}

func (h Health) IsDead() bool {
	return h.HP <= 0
}
