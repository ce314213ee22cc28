package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kintai-app/timeclock-backend-go/internal/domain/timerecord"
	timerecordservice "github.com/kintai-app/timeclock-backend-go/internal/service/timerecord"
)

// Service streams time records as CSV for payroll handoff.
type Service interface {
	// WriteRecordsCSV writes records to w. When employeeID is set the export
	// is limited to that employee, optionally narrowed to a year/month.
	WriteRecordsCSV(ctx context.Context, w io.Writer, employeeID, year, month string) error
}

var csvHeader = []string{
	"employee_id",
	"employee_name",
	"department",
	"record_date",
	"clock_in_time",
	"clock_out_time",
	"status",
	"work_hours",
	"is_manual_entry",
}

type ExportServiceImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewExportService(timeRecordService timerecord.TimeRecordService) Service {
	return &ExportServiceImpl{timeRecordService: timeRecordService}
}

// WriteRecordsCSV implements Service.
func (s *ExportServiceImpl) WriteRecordsCSV(ctx context.Context, w io.Writer, employeeID, year, month string) error {
	var (
		records []timerecord.TimeRecordResponse
		err     error
	)
	if employeeID != "" {
		records, err = s.timeRecordService.ListEmployeeRecords(ctx, employeeID, year, month)
	} else {
		records, err = s.timeRecordService.ListRecords(ctx)
	}
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.EmployeeID,
			strOrEmpty(rec.EmployeeName),
			strOrEmpty(rec.Department),
			rec.RecordDate,
			strOrEmpty(rec.ClockInTime),
			strOrEmpty(rec.ClockOutTime),
			rec.Status,
			strconv.FormatFloat(timerecordservice.RoundHours(rec.WorkHours), 'f', 2, 64),
			strconv.FormatBool(rec.IsManualEntry),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
