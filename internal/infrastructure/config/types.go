package config

// GameConfig is the root config for centipede.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Arena     ArenaConfig     `yaml:"arena"`
	Centipede CentipedeConfig `yaml:"centipede"`
	Mushrooms MushroomConfig  `yaml:"mushrooms"`
	Laser     LaserConfig     `yaml:"laser"`
	Spider    SpiderConfig    `yaml:"spider"`
	Player    PlayerConfig    `yaml:"player"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

type DisplayConfig struct {
	Scale     int `yaml:"scale"`
	Framerate int `yaml:"framerate"`
}

// RectConfig is an axis-aligned area in arena pixels
type RectConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArenaConfig is the play-field geometry. The four bands restrict where each
// entity kind may move or spawn.
type ArenaConfig struct {
	GridSize  float64    `yaml:"gridSize"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Centipede RectConfig `yaml:"centipede"`
	Mushrooms RectConfig `yaml:"mushrooms"`
	Spider    RectConfig `yaml:"spider"`
	Player    RectConfig `yaml:"player"`
}

type CentipedeConfig struct {
	Length      int     `yaml:"length"`
	Speed       float64 `yaml:"speed"`       // px/s while cruising
	AnimStep    float64 `yaml:"animStep"`    // px per descent animation tick
	EdgeSpacing float64 `yaml:"edgeSpacing"` // wall/mushroom trigger distance
	SegmentSize float64 `yaml:"segmentSize"`
	BandRows    int     `yaml:"bandRows"` // rows of the bottom bounce band
}

type MushroomConfig struct {
	Count int     `yaml:"count"`
	Size  float64 `yaml:"size"`
}

type LaserConfig struct {
	PoolSize int     `yaml:"poolSize"`
	Speed    float64 `yaml:"speed"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	FireRate float64 `yaml:"fireRate"` // shots per second
}

type SpiderConfig struct {
	Speed           float64 `yaml:"speed"`
	MoveDuration    float64 `yaml:"moveDuration"`    // seconds between direction changes
	RespawnDuration float64 `yaml:"respawnDuration"` // seconds dead before respawning
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
}

type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Lives  int     `yaml:"lives"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringConfig holds points awarded per kill
type ScoringConfig struct {
	Head     int `yaml:"head"`
	Body     int `yaml:"body"`
	Spider   int `yaml:"spider"`
	Mushroom int `yaml:"mushroom"`
}

// Default returns the arcade rules
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Scale:     3,
			Framerate: 60,
		},
		Arena: ArenaConfig{
			GridSize:  8,
			Width:     240,
			Height:    256,
			Centipede: RectConfig{Left: 0, Top: 8, Width: 240, Height: 240},
			Mushrooms: RectConfig{Left: 0, Top: 32, Width: 240, Height: 208},
			Spider:    RectConfig{Left: 0, Top: 128, Width: 240, Height: 120},
			Player:    RectConfig{Left: 0, Top: 216, Width: 240, Height: 32},
		},
		Centipede: CentipedeConfig{
			Length:      12,
			Speed:       120,
			AnimStep:    2,
			EdgeSpacing: 3,
			SegmentSize: 8,
			BandRows:    4,
		},
		Mushrooms: MushroomConfig{
			Count: 30,
			Size:  8,
		},
		Laser: LaserConfig{
			PoolSize: 30,
			Speed:    420,
			Width:    1,
			Height:   6,
			FireRate: 6.5,
		},
		Spider: SpiderConfig{
			Speed:           60,
			MoveDuration:    0.5,
			RespawnDuration: 5,
			Width:           15,
			Height:          8,
		},
		Player: PlayerConfig{
			Speed:  400,
			Lives:  3,
			Width:  7,
			Height: 8,
		},
		Scoring: ScoringConfig{
			Head:     100,
			Body:     10,
			Spider:   300,
			Mushroom: 1,
		},
	}
}
