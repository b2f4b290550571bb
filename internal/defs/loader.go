// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-grid-defense/internal/config"
)

type presetFile struct {
	Orders []presetRecord `json:"orders"`
}

type presetRecord struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	HP     int     `json:"hp"`
	Speed  float64 `json:"speed"`
	Reward int     `json:"reward"`
}

// LoadEnemyPresets reads the enemy preset file and builds a PresetLibrary.
func LoadEnemyPresets(path string) (*PresetLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy presets file: %w", err)
	}
	return ParseEnemyPresets(file)
}

// ParseEnemyPresets разбирает JSON вида {"orders": [{"id": ..., "hp": ...}, ...]}.
// Записи без id пропускаются, неизвестный kind — ошибка.
func ParseEnemyPresets(data []byte) (*PresetLibrary, error) {
	var pf presetFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy presets: %w", err)
	}
	if pf.Orders == nil {
		return nil, fmt.Errorf("enemy presets: missing \"orders\" array")
	}

	presets := make([]EnemyPreset, 0, len(pf.Orders))
	for i, rec := range pf.Orders {
		if rec.ID == "" {
			log.Printf("Preset #%d has no id, skipped", i)
			continue
		}
		kind, ok := ParseEnemyKind(rec.Kind)
		if !ok {
			return nil, fmt.Errorf("enemy preset %q: unknown kind %q", rec.ID, rec.Kind)
		}
		presets = append(presets, EnemyPreset{
			ID:     rec.ID,
			Name:   rec.Name,
			Kind:   kind,
			HP:     rec.HP,
			Speed:  rec.Speed,
			Reward: rec.Reward,
		})
	}

	lib := NewPresetLibrary(presets...)
	log.Printf("Loaded %d enemy presets", lib.Len())
	return lib, nil
}

// LoadGridConfig reads a grid configuration file and validates it.
func LoadGridConfig(path string) (config.GridConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return config.GridConfig{}, fmt.Errorf("failed to read grid config file: %w", err)
	}
	var cfg config.GridConfig
	if err := json.Unmarshal(file, &cfg); err != nil {
		return config.GridConfig{}, fmt.Errorf("failed to unmarshal grid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.GridConfig{}, fmt.Errorf("invalid grid config %s: %w", path, err)
	}
	return cfg, nil
}
