package mailer

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// party адресат или отправитель письма
type party struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// sendRequest тело запроса к transactional email API
type sendRequest struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

// Confirmation данные для письма-подтверждения записи
type Confirmation struct {
	FirstName    string
	LastName     string
	Email        string
	Date         string
	StartTime    string
	Code         string
	IsInstructor bool
}
