package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dost/internal/domains/booking/model/dto"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	exportSheetName = "Bookings"
)

// Export is a rendered booking export ready to be streamed to the client.
type Export struct {
	Content     []byte
	Filename    string
	ContentType string
}

var exportHeader = []string{"ID", "Guest", "Room", "Check-in", "Check-out", "Amount", "Status", "Payment"}

func exportRow(booking dto.BookingResponse) []string {
	return []string{
		booking.ID,
		booking.User.FullName,
		booking.Room.RoomName,
		booking.CheckIn,
		booking.CheckOut,
		strconv.FormatInt(booking.TotalPrice, 10),
		booking.BookingStatus,
		booking.PaymentStatus,
	}
}

// Export renders the currently filtered bookings as CSV or, with
// format=xlsx, as a spreadsheet.
func (s *serviceImpl) Export(ctx context.Context, term, status, format string) (res Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	bookings, err := s.GetAll(ctx, params, term, status)
	if err != nil {
		return res, err
	}

	switch format {
	case FormatXLSX:
		content, err := renderXLSX(bookings.Bookings)
		if err != nil {
			return res, err
		}

		return Export{
			Content:     content,
			Filename:    "bookings.xlsx",
			ContentType: constant.ContentTypeXLSX,
		}, nil
	case FormatCSV, constant.Empty:
		content, err := renderCSV(bookings.Bookings)
		if err != nil {
			return res, err
		}

		return Export{
			Content:     content,
			Filename:    "bookings.csv",
			ContentType: constant.ContentTypeCSV,
		}, nil
	default:
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported export format: %s", format)) //nolint:wrapcheck
	}
}

func renderCSV(bookings []dto.BookingResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, booking := range bookings {
		if err := writer.Write(exportRow(booking)); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}

	return buf.Bytes(), nil
}

func renderXLSX(bookings []dto.BookingResponse) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	for col, name := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}

		_ = file.SetCellValue(exportSheetName, cell, name)
	}

	for rowIdx, booking := range bookings {
		for col, value := range exportRow(booking) {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}

			_ = file.SetCellValue(exportSheetName, cell, value)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render spreadsheet: %w", err)
	}

	return buf.Bytes(), nil
}
