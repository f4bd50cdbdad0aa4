package domain

// AnimState - вид анимации.
type AnimState uint8

const (
	AnimMob AnimState = iota
	AnimMobHurt
	AnimMobBump
	AnimExplosion
	AnimFirespell
	AnimGib
)

var animStateToString = map[AnimState]string{
	AnimMob:       "MOB",
	AnimMobHurt:   "MOB_HURT",
	AnimMobBump:   "MOB_BUMP",
	AnimExplosion: "EXPLOSION",
	AnimFirespell: "FIRESPELL",
	AnimGib:       "GIB",
}

// IsTransient - анимация принадлежит короткоживущей сущности-эффекту.
func (a AnimState) IsTransient() bool {
	switch a {
	case AnimExplosion, AnimFirespell, AnimGib:
		return true
	}
	return false
}

// IsOneShot - разовая анимация моба, после проигрывания возвращается к AnimMob.
func (a AnimState) IsOneShot() bool {
	return a == AnimMobHurt || a == AnimMobBump
}

// OneShotDuration - длительность разовой анимации моба в тиках анимации.
const OneShotDuration = 6

func (a AnimState) String() string {
	if val, ok := animStateToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
