package experiencecatalog

// Experience read-only модель впечатления из каталога
// Движку конфликтов нужна только длительность; остальные поля - справочные
type Experience struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Duration string  `json:"duration"` // Человекочитаемая строка: "2 hours", "45 minutes"
	Price    float64 `json:"price"`
	Location string  `json:"location"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
