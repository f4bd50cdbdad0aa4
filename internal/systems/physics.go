package systems

import (
	"math"

	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HexLine возвращает клетки отрезка от a до b включительно.
// Клетки разных уровней отрезком не соединяются.
func HexLine(a, b domain.Location) []domain.Location {
	if a.Z != b.Z {
		return nil
	}
	n := a.Distance(b)
	if n == 0 {
		return []domain.Location{a}
	}

	// Переходим к кубическим координатам: q = x, r = -y, s = y - x.
	aq, ar := float64(a.X), -float64(a.Y)
	bq, br := float64(b.X), -float64(b.Y)

	// Небольшой сдвиг, чтобы точки на границе клеток округлялись одинаково.
	const nudge = 1e-6

	out := make([]domain.Location, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q := aq + (bq-aq)*t + nudge
		r := ar + (br-ar)*t + nudge
		rq, rr := cubeRound(q, r, -q-r)
		out = append(out, domain.Location{X: int16(rq), Y: int16(-rr), Z: a.Z})
	}
	return out
}

func cubeRound(q, r, s float64) (int, int) {
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return int(rq), int(rr)
}

// HasLineOfSight проверяет прямую видимость между двумя клетками.
// Концы отрезка не проверяются: можно видеть стену и стоять в дверях.
func HasLineOfSight(terrain TerrainMap, a, b domain.Location) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": a,
		"end_pos":   b,
	})

	line := HexLine(a, b)
	if line == nil {
		losLogger.Debug("Check finished: different levels. Result: false")
		return false
	}
	if len(line) <= 2 {
		return true
	}

	for _, loc := range line[1 : len(line)-1] {
		if terrain.Terrain(loc).BlocksSight() {
			losLogger.WithField("blocking_point", loc).Debug("Check finished: line is blocked. Result: false")
			return false
		}
	}
	return true
}
