package order

import (
	"math/rand"
	"sync"
	"time"
)

// confirmationNumberBound — верхняя (исключая) граница номера подтверждения.
const confirmationNumberBound = 999999999

// confirmationSource выдаёт псевдослучайные номера подтверждения заказа.
// Уникальность не гарантируется: номер — отображаемый идентификатор,
// а не первичный ключ.
type confirmationSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newConfirmationSource() *confirmationSource {
	return &confirmationSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next возвращает номер в диапазоне [0, 999999999).
func (s *confirmationSource) Next() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int32(s.rng.Intn(confirmationNumberBound))
}
