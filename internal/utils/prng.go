// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-grid-defense/internal/defs"
)

// PRNGService — единственный источник случайности партии: разброс врагов и состав волн.
// Один и тот же сид даёт одну и ту же игру.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт генератор; сид 0 берётся из часов
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Below — случайное целое в [0, n), ноль при n <= 0
func (s *PRNGService) Below(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Jitter — случайная добавка в [0, max), ноль при max <= 0
func (s *PRNGService) Jitter(max float64) float64 {
	if max <= 0 {
		return 0
	}
	return s.rng.Float64() * max
}

// ChooseWeighted выбирает ID врага из таблицы волны. Записи с весом <= 0 не выпадают,
// если веса нет ни у кого, берётся первая запись.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}
	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 {
		return entries[0].EnemyID
	}

	r := s.rng.Intn(total)
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		if r < e.Weight {
			return e.EnemyID
		}
		r -= e.Weight
	}
	return entries[len(entries)-1].EnemyID
}
