package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mainlycc/aw/internal/booking"
	"github.com/mainlycc/aw/internal/model"
	"github.com/mainlycc/aw/internal/repository"
	pkgerrors "github.com/mainlycc/aw/pkg/errors"
)

// ── export module errors ──

var (
	ErrExportMonthNotFound = errors.New("billing month to export not found")
	ErrExportNoEntries     = errors.New("billing month has no entries to export")
	ErrExportGenerateFail  = errors.New("generating the Excel file failed")
)

// ExportService renders billing data as downloadable files. The buffer is
// returned to the handler, which sets the response headers and streams it.
type ExportService interface {
	ExportBillingMonth(ctx context.Context, monthID, actorID, actorRole string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var polishMonths = [...]string{
	"", "Styczen", "Luty", "Marzec", "Kwiecien", "Maj", "Czerwiec",
	"Lipiec", "Sierpien", "Wrzesien", "Pazdziernik", "Listopad", "Grudzien",
}

// ExportBillingMonth renders one billing month as an .xlsx sheet: one row
// per logged lesson plus a totals row derived from the enrollment's rate.
func (s *exportService) ExportBillingMonth(ctx context.Context, monthID, actorID, actorRole string) (*bytes.Buffer, string, error) {
	month, err := s.repo.Billing.GetMonthByID(ctx, monthID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportMonthNotFound
		}
		s.logger.Error("load billing month for export failed", zap.Error(err))
		return nil, "", err
	}
	if actorRole != model.RoleAdmin && (month.Enrollment == nil || month.Enrollment.TutorID != actorID) {
		return nil, "", pkgerrors.ErrForbidden
	}
	if len(month.Entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	tutorName, studentName, subjectName, levelName := "-", "-", "-", "-"
	rate := 0.0
	if e := month.Enrollment; e != nil {
		rate = e.HourlyRate
		if e.Tutor != nil {
			tutorName = e.Tutor.FirstName + " " + e.Tutor.LastName
		}
		if e.Student != nil {
			studentName = e.Student.FirstName + " " + e.Student.LastName
		}
		if subj, ok := booking.SubjectByID(e.SubjectID); ok {
			subjectName = subj.Name
		}
		if lvl, ok := booking.LevelByID(e.LevelID); ok {
			levelName = lvl.Name
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Rozliczenie"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	title := fmt.Sprintf("%s %d — %s / %s", polishMonths[month.Month], month.Year, subjectName, levelName)
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	f.SetCellValue(sheetName, "A2", "Korepetytor")
	f.SetCellValue(sheetName, "B2", tutorName)
	f.SetCellValue(sheetName, "A3", "Uczen")
	f.SetCellValue(sheetName, "B3", studentName)
	f.SetCellValue(sheetName, "A4", "Stawka (PLN/h)")
	f.SetCellValue(sheetName, "B4", rate)

	row := 6
	f.SetCellValue(sheetName, cell("A", row), "Data")
	f.SetCellValue(sheetName, cell("B", row), "Godziny")
	f.SetCellValue(sheetName, cell("C", row), "Kwota")
	f.SetCellValue(sheetName, cell("D", row), "Notatka")
	f.SetCellStyle(sheetName, cell("A", row), cell("D", row), headerStyle)

	totalHours := 0.0
	row = 7
	for _, entry := range month.Entries {
		totalHours += entry.Hours
		f.SetCellValue(sheetName, cell("A", row), entry.EntryDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("B", row), entry.Hours)
		f.SetCellValue(sheetName, cell("C", row), entry.Hours*rate)
		f.SetCellValue(sheetName, cell("D", row), entry.Note)
		row++
	}

	f.SetCellValue(sheetName, cell("A", row), "Razem")
	f.SetCellValue(sheetName, cell("B", row), totalHours)
	f.SetCellValue(sheetName, cell("C", row), totalHours*rate)
	f.SetCellStyle(sheetName, cell("A", row), cell("D", row), headerStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write Excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("rozliczenie_%d_%02d.xlsx", month.Year, month.Month)
	return buf, filename, nil
}

// ── helpers ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
