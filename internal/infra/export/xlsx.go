// Package export renders reservation listings as XLSX workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/TennisCourtBooking/internal/domain"
)

const (
	// SheetName имя листа с бронированиями
	SheetName = "Reservations"

	// ContentType MIME-тип выгрузки
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	timeLayout = "2006-01-02 15:04"
)

var header = []string{
	"ID", "User ID", "Court", "Start (UTC)", "End (UTC)", "Hours", "Attendees", "Total Cost", "Status", "Payment Ref", "Created At",
}

// XLSXExporter выгружает бронирования в книгу Excel
type XLSXExporter struct{}

// NewXLSXExporter создает экспортер
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// WriteReservations записывает бронирования на один лист и сериализует книгу в w
func (e *XLSXExporter) WriteReservations(w io.Writer, reservations []*domain.Reservation) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrWriteSheet, err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := writeRow(file, 1, headerRow); err != nil {
		return err
	}

	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = file.SetCellStyle(SheetName, "A1", last, style)
	}

	for i, r := range reservations {
		row := []interface{}{
			r.ID,
			r.UserID,
			r.CourtID,
			r.StartTime.UTC().Format(timeLayout),
			r.EndTime.UTC().Format(timeLayout),
			r.Hours(),
			r.Attendees,
			r.TotalCost,
			string(r.Status),
			r.PaymentRef,
			r.CreatedAt.UTC().Format(timeLayout),
		}
		if err := writeRow(file, i+2, row); err != nil {
			return err
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}

func writeRow(file *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrWriteSheet, rowNum, err)
	}
	if err := file.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrWriteSheet, rowNum, err)
	}
	return nil
}
