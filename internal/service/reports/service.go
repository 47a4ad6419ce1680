package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// EnrollmentRepository интерфейс репозитория записей
type EnrollmentRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Enrollment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Report сгенерированный PDF отчет
type Report struct {
	Filename string
	Content  []byte
}

// Service сервис PDF отчетов для админ-панели
type Service struct {
	enrollmentRepo EnrollmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(enrollmentRepo EnrollmentRepository, logger Logger) *Service {
	return &Service{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// Daily генерирует PDF отчет по записям на указанную дату.
// Пустой день дает валидный отчет без карточек.
func (s *Service) Daily(ctx context.Context, date time.Time) (*Report, error) {
	enrollments, err := s.enrollmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("Daily: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Daily - repository error: %v", ErrInternal, err)
	}

	content, err := s.render(date, enrollments)
	if err != nil {
		s.logger.Error("Daily: render error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, err
	}

	s.logger.Info("Daily: report generated for date=%s, %d enrollments", date.Format(domain.DateFormat), len(enrollments))

	return &Report{
		Filename: fmt.Sprintf("enrollments_%s.pdf", date.Format(domain.DateFormat)),
		Content:  content,
	}, nil
}

// render собирает PDF документ: шапка, сводка по слотам, карточка на каждую
// запись, колонтитул с номером страницы.
func (s *Service) render(date time.Time, enrollments []*domain.Enrollment) ([]byte, error) {
	const (
		pageWidth  = 210.0
		marginLeft = 15.0
		bandHeight = 28.0
		cardHeight = 26.0
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Laboratory enrollments %s", date.Format(domain.DateFormat)), false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Шапка
	pdf.SetFillColor(30, 58, 95)
	pdf.Rect(0, 0, pageWidth, bandHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(marginLeft, 7)
	pdf.CellFormat(0, 8, "Laboratory enrollments", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 7, date.Format("Monday, 2 January 2006"), "", 1, "L", false, 0, "")

	// Сводка по слотам
	pdf.SetY(bandHeight + 8)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 7,
		fmt.Sprintf("Slots used: %d of %d   |   Free: %d",
			len(enrollments), domain.DailyCapacity, domain.DailyCapacity-len(enrollments)),
		"", 1, "L", false, 0, "")
	pdf.Ln(3)

	if len(enrollments) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(110, 110, 110)
		pdf.SetX(marginLeft)
		pdf.CellFormat(0, 8, "No enrollments for this date.", "", 1, "L", false, 0, "")
	}

	// Карточки записей
	for _, e := range enrollments {
		if pdf.GetY()+cardHeight > 277 {
			pdf.AddPage()
			pdf.SetY(20)
		}

		top := pdf.GetY()

		pdf.SetFillColor(244, 246, 249)
		pdf.SetDrawColor(210, 215, 222)
		pdf.Rect(marginLeft, top, pageWidth-2*marginLeft, cardHeight, "FD")

		pdf.SetXY(marginLeft+4, top+3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(30, 58, 95)
		pdf.CellFormat(120, 6, fmt.Sprintf("%s %s", e.FirstName, e.LastName), "", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(0, 6, e.StartTime.String(), "", 1, "R", false, 0, "")

		pdf.SetX(marginLeft + 4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(70, 70, 70)
		pdf.CellFormat(0, 6, e.Email, "", 1, "L", false, 0, "")

		pdf.SetX(marginLeft + 4)
		pdf.CellFormat(120, 6, fmt.Sprintf("Year: %s", e.AcademicYear), "", 0, "L", false, 0, "")
		pdf.SetFont("Courier", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Code: %s", e.Code), "", 1, "R", false, 0, "")

		pdf.SetY(top + cardHeight + 4)
	}

	// Подпись о времени генерации
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(130, 130, 130)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated at %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderPDF, err)
	}

	return buf.Bytes(), nil
}
