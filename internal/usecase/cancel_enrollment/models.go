package cancel_enrollment

// Request запрос на отмену записи по коду
type Request struct {
	Code string
}

// Response ответ на отмену записи
type Response struct {
	DeletedCount int64 `json:"deletedCount"`
	Instructor   bool  `json:"instructor"`
}
