// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 760
	ScreenHeight = 680
	CellSize     = 48.0 // пикселей на клетку, в этих же единицах живут позиции сущностей
	GridOffsetX  = 20
	GridOffsetY  = 60

	MaxDeltaTime  = 0.06
	ClickCooldown = 300

	StartLives = 20
	StartMoney = 100
	KillReward = 15

	SellRefundPercent = 50  // Доля вложенных денег, возвращаемая при продаже
	UpgradeDuration   = 2.0 // секунд

	FirstWaveDelay = 0.7  // секунд до первой волны
	NextWaveDelay  = 0.95 // пауза между волнами
	AutoStartWaves = true

	DefaultSpawnInterval = 0.6 // секунд между врагами волны
	BaseWaveSize         = 2   // врагов в сгенерированной волне: BaseWaveSize + WaveSizeStep*номер
	WaveSizeStep         = 2
	HealthPerWave        = 3 // прибавка здоровья за номер волны

	EnemyRadius         = 12.0
	DamageFlashDuration = 0.12 // секунд

	TurretTurnSpeed = 8.0 // доля оставшегося угла за секунду
	TurretLength    = 16.0

	ProjectileSpeed      = 360.0 // пикселей в секунду
	ProjectileRadius     = 5.0
	ProjectileHitEpsilon = 4.0 // пикселей

	TowerStrokeWidth = 2.0

	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 12.0
)

// PathPolicy — когда враги пересчитывают путь
type PathPolicy int

const (
	// PathRecomputeOnChange — при каждой установке или продаже башни все живые враги
	// перестраивают оставшуюся часть пути.
	PathRecomputeOnChange PathPolicy = iota
	// PathSpawnOnly — путь считается один раз при появлении врага и дальше не меняется.
	PathSpawnOnly
)

func (p PathPolicy) String() string {
	switch p {
	case PathRecomputeOnChange:
		return "recompute"
	case PathSpawnOnly:
		return "spawn-only"
	default:
		return "unknown"
	}
}

// ParsePathPolicy разбирает значение флага командной строки
func ParsePathPolicy(s string) (PathPolicy, bool) {
	switch s {
	case "recompute", "":
		return PathRecomputeOnChange, true
	case "spawn-only", "spawn":
		return PathSpawnOnly, true
	default:
		return PathRecomputeOnChange, false
	}
}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	CellColor        = color.RGBA{52, 58, 64, 255}
	CellBorderColor  = color.RGBA{40, 48, 66, 255}
	WallColor        = color.RGBA{37, 103, 231, 255}
	CoordTextColor   = color.RGBA{255, 228, 56, 255}
	SpawnColor       = color.RGBA{255, 224, 102, 255}
	ExitColor        = color.RGBA{163, 19, 34, 255}
	SelectColor      = color.RGBA{51, 122, 217, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	BuildStateColor  = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	GameOverColor    = color.RGBA{90, 90, 90, 220}
	EnemyColor       = color.RGBA{232, 52, 56, 255}
	HealthBarColor   = color.RGBA{232, 52, 56, 255}
	HealthBackColor  = color.RGBA{30, 30, 30, 200}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{80, 146, 255, 112}
	ProjectileColor  = color.RGBA{255, 255, 255, 255}
	UpgradeColor     = color.RGBA{255, 215, 0, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
