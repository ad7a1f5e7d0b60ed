// internal/storage/highscore.go
package storage

import (
	"os"
	"strconv"
	"strings"
)

// HighScoreStore хранит единственное число — рекорд — в текстовом файле.
// Отсутствие или порча файла не ошибка геймплея: вызывающая сторона
// трактует это как «рекорда нет» и продолжает игру.
type HighScoreStore struct {
	path string
}

func NewHighScoreStore(path string) *HighScoreStore {
	return &HighScoreStore{path: path}
}

// Load читает рекорд из файла.
func (s *HighScoreStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, err
	}
	return score, nil
}

// Save записывает рекорд в файл.
func (s *HighScoreStore) Save(score int) error {
	return os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0644)
}
