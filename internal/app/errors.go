// internal/app/errors.go
package app

import "errors"

// Причины отказа. Наружу они выходят обёрнутыми через %w, сравнивать нужно через errors.Is.
var (
	ErrOutOfBounds        = errors.New("cell is out of bounds")
	ErrCellOccupied       = errors.New("cell is occupied by a tower")
	ErrCellNotPlaceable   = errors.New("cell is not placeable")
	ErrPathWouldBeBlocked = errors.New("placement would block the path")
	ErrInsufficientFunds  = errors.New("not enough money")
	ErrNoPathAvailable    = errors.New("no path available")
	ErrNotSpawnCell       = errors.New("cell is not a spawn cell")
	ErrUnknownTowerKind   = errors.New("unknown tower kind")
	ErrUnknownPreset      = errors.New("unknown enemy preset")
	ErrInvalidEnemy       = errors.New("invalid enemy parameters")
	ErrNoTower            = errors.New("no tower at cell")
	ErrMaxLevel           = errors.New("tower is at max level")
	ErrUpgradeInProgress  = errors.New("upgrade already in progress")
	ErrWaveInProgress     = errors.New("wave is in progress")
	ErrGameOver           = errors.New("game over")
)

var messages = []struct {
	err  error
	text string
}{
	{ErrGameOver, "Game over"},
	{ErrPathWouldBeBlocked, "That would block the path"},
	{ErrInsufficientFunds, "Not enough money"},
	{ErrCellOccupied, "Cell already has a tower"},
	{ErrCellNotPlaceable, "Can't build here"},
	{ErrOutOfBounds, "Outside the field"},
	{ErrNoTower, "No tower here"},
	{ErrMaxLevel, "Tower is fully upgraded"},
	{ErrUpgradeInProgress, "Upgrade in progress"},
	{ErrWaveInProgress, "Wave in progress"},
	{ErrNoPathAvailable, "No path to an exit"},
	{ErrNotSpawnCell, "Enemies enter only at spawn cells"},
	{ErrUnknownTowerKind, "Unknown tower"},
	{ErrUnknownPreset, "Unknown enemy"},
	{ErrInvalidEnemy, "Invalid enemy"},
}

// Describe возвращает короткое сообщение об отказе для строки статуса. nil — пустая строка.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.text
		}
	}
	return err.Error()
}
