package resolve_conflict

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// Request модель запроса вариантов разрешения конфликта пары позиций
type Request struct {
	TripID  int64     // ID маршрута
	Date    time.Time // Дата, на которой конфликтуют позиции
	ItemID1 int64     // Первая позиция пары
	ItemID2 int64     // Вторая позиция пары
}

// Suggestion вариант разрешения для одной позиции пары
//
// ProposedStartTime - самое раннее время дня, в которое позицию можно
// передвинуть без пересечений с остальным расписанием. nil означает, что
// свободного окна в дне нет и для этой позиции остается только удаление
type Suggestion struct {
	ItemID            int64             // Позиция, которую предлагается передвинуть
	ProposedStartTime *types.TimeString // Новое время начала, nil - окна нет
}

// Response модель ответа с вариантами разрешения
// Оба варианта считаются независимо, выбор за путешественником
type Response struct {
	TripID      int64        // ID маршрута
	Date        time.Time    // Дата конфликта
	Suggestions []Suggestion // Ровно два варианта: для ItemID1 и для ItemID2
}
