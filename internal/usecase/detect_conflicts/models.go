package detect_conflicts

import (
	"time"
)

// Request модель запроса на поиск конфликтов
type Request struct {
	TripID int64     // ID маршрута
	Date   time.Time // Календарная дата (без времени)
}

// Response модель ответа со списком найденных конфликтов
type Response struct {
	TripID    int64      // ID маршрута
	Date      time.Time  // Дата, на которую искались конфликты
	Conflicts []Conflict // Найденные пары пересечений (может быть пустым)
}

// Conflict одна пара пересекающихся позиций
// Вычисляется заново при каждом вызове, нигде не сохраняется
type Conflict struct {
	ItemID1        int64 // Позиция с меньшим ID
	ItemID2        int64 // Позиция с большим ID
	OverlapMinutes int   // Длина пересечения в минутах, всегда > 0
}
