package chooser

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Source - источник случайных индексов
type Source interface {
	Intn(n int) int
}

// NewSource создает источник случайности.
// При seed == 0 генератор инициализируется из текущего времени.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Pick возвращает равновероятно выбранный элемент candidates
func Pick(src Source, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("empty candidate list: %w", ErrInvalidArgument)
	}

	idx := src.Intn(len(candidates))
	if idx < 0 || idx >= len(candidates) {
		return "", fmt.Errorf("source returned index %d for %d candidates: %w", idx, len(candidates), ErrInvalidArgument)
	}

	return candidates[idx], nil
}
