// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// ChooseWeighted выполняет взвешенный случайный выбор и возвращает индекс
// выбранного элемента. Он суммирует все веса, выбирает случайное число
// в этом диапазоне, а затем находит элемент, которому оно соответствует.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	if len(weights) == 0 {
		return 0
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	if totalWeight <= 0 {
		return 0
	}

	r := s.Intn(totalWeight)
	upto := 0
	for i, w := range weights {
		if upto+w > r {
			return i
		}
		upto += w
	}

	// Этот код не должен быть достижим, но на всякий случай
	return len(weights) - 1
}
