package get_available_dates

// DateInfo доступная для записи дата
type DateInfo struct {
	Date          string `json:"date"`
	OccupiedCount int    `json:"occupiedCount"`
	FreeSlots     int    `json:"freeSlots"`
}

// Response список доступных дат на ближайший горизонт
type Response struct {
	Dates []DateInfo `json:"dates"`
}
