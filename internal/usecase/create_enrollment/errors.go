package create_enrollment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_enrollment: invalid input data")

	// ErrOutsideTimeWindow возвращается, когда время вне окна работы лаборатории
	ErrOutsideTimeWindow = errors.New("create_enrollment: time is outside the lab session window")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_enrollment: invalid enrollment date")

	// ErrDateBlocked возвращается, когда дата заблокирована администратором
	ErrDateBlocked = errors.New("create_enrollment: date is blocked")

	// ErrDuplicateEnrollment возвращается при повторной записи на ту же дату
	ErrDuplicateEnrollment = errors.New("create_enrollment: email already enrolled on this date")

	// ErrNoSlotsAvailable возвращается, когда все слоты на дату заняты
	ErrNoSlotsAvailable = errors.New("create_enrollment: no slots available")

	// ErrDateAlreadyHasEnrollments возвращается, когда преподаватель пытается
	// занять день, на который уже есть записи
	ErrDateAlreadyHasEnrollments = errors.New("create_enrollment: date already has enrollments")

	// ErrCodeGeneration возвращается, когда не удалось подобрать свободные коды
	ErrCodeGeneration = errors.New("create_enrollment: failed to generate unique codes")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_enrollment: internal error")
)
