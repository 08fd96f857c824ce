package system

import (
	"github.com/younwookim/centipede/internal/domain/entity"
	"github.com/younwookim/centipede/internal/infrastructure/config"
)

// LoadArena converts the arena config into entity geometry
func LoadArena(cfg config.ArenaConfig) entity.Arena {
	return entity.Arena{
		GridSize:      cfg.GridSize,
		Size:          entity.Vec2{X: cfg.Width, Y: cfg.Height},
		CentipedeArea: toRect(cfg.Centipede),
		MushroomArea:  toRect(cfg.Mushrooms),
		SpiderArea:    toRect(cfg.Spider),
		PlayerArea:    toRect(cfg.Player),
	}
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.NewRect(r.Left, r.Top, r.Width, r.Height)
}

// SegmentParamsFrom builds the shared segment rules from config
func SegmentParamsFrom(cfg config.CentipedeConfig, gridSize float64) entity.SegmentParams {
	return entity.SegmentParams{
		Speed:       cfg.Speed,
		AnimStep:    cfg.AnimStep,
		EdgeSpacing: cfg.EdgeSpacing,
		Size:        cfg.SegmentSize,
		GridSize:    gridSize,
		BandRows:    cfg.BandRows,
	}
}
