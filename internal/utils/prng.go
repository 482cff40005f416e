// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактический сид (для логов и воспроизведения).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// ShuffleStrings перемешивает срез на месте (Fisher–Yates).
func (s *PRNGService) ShuffleStrings(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
