package systems

import (
	"github.com/bisarnacki/magog/internal/domain"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ComputeFov возвращает клетки, видимые из origin в пределах radius.
//
// Гексагональный shadowcasting: шесть секторов, в секторе s клетка
// кольца r с номером j - это origin + dir[s]*r + dir[s+2]*j.
// Непрозрачная местность сама видна, но закрывает всё за собой.
// Сущности обзор не перекрывают.
func ComputeFov(terrain TerrainMap, origin domain.Location, radius int) domain.LocationSet {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := make(domain.LocationSet)
	if radius < 0 {
		fovLogger.Warn("FOV calculation skipped for negative radius.")
		return visible
	}

	// 1. Центр виден всегда
	visible.Add(origin)

	// 2. Сканируем шесть секторов
	c := caster{terrain: terrain, origin: origin, radius: radius, visible: visible}
	for s := range domain.Directions {
		c.sextant = s
		c.scan(1, 0.0, 1.0)
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete.")
	return visible
}

type caster struct {
	terrain TerrainMap
	origin  domain.Location
	radius  int
	sextant int
	visible domain.LocationSet
}

func (c *caster) cell(r, j int) domain.Location {
	side := domain.Directions[c.sextant]
	along := side.Rotate(2)
	return c.origin.Step(side, r).Step(along, j)
}

// scan просматривает кольца начиная с row в угловом интервале [start, end),
// где 0 и 1 - границы сектора.
func (c *caster) scan(row int, start, end float64) {
	if start >= end {
		return
	}

	for r := row; r <= c.radius; r++ {
		blocked := false
		for j := 0; j <= r; j++ {
			lo := (float64(j) - 0.5) / float64(r)
			hi := (float64(j) + 0.5) / float64(r)
			if hi <= start {
				continue
			}
			if lo >= end {
				break
			}

			loc := c.cell(r, j)
			c.visible.Add(loc)
			opaque := c.terrain.Terrain(loc).BlocksSight()

			if blocked {
				// Стена кончилась, дальше снова светло
				if !opaque {
					blocked = false
					start = lo
				}
			} else if opaque {
				// Наткнулись на стену: всё до неё продолжаем следующим кольцом
				blocked = true
				if r < c.radius {
					c.scan(r+1, start, lo)
				}
			}
		}
		if blocked {
			return
		}
	}
}
