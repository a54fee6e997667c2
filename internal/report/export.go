package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetTransactions = "Transações"
	sheetSummary      = "Resumo"
)

// WriteXLSX renders every transaction plus a summary sheet.
func WriteXLSX(txs []models.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	writeRow := func(sheet string, row int, values []any) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	writeHeaders := func(sheet string, headers []string) error {
		values := make([]any, len(headers))
		for i, h := range headers {
			values[i] = h
		}
		if err := writeRow(sheet, 1, values); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return err
		}
		return f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	// --------------------------------------------------
	// Detalhe
	// --------------------------------------------------
	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeHeaders(sheetTransactions, []string{
		"Data", "Cliente", "Serviços", "Pagamento", "Subtotal", "Desconto", "Valor",
	}); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	for i, tx := range txs {
		if err := writeRow(sheetTransactions, i+2, []any{
			DisplayDate(tx.Date),
			tx.ClientName,
			tx.Service,
			tx.PaymentMethod,
			tx.Subtotal.InexactFloat64(),
			tx.Discount.InexactFloat64(),
			tx.Value.InexactFloat64(),
		}); err != nil {
			return nil, fmt.Errorf("write transaction row: %w", err)
		}
	}

	// --------------------------------------------------
	// Resumo
	// --------------------------------------------------
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	if err := writeHeaders(sheetSummary, []string{"Indicador", "Valor"}); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	st := Stats(txs)
	summary := [][]any{
		{"Receita Total", st.TotalRevenue.InexactFloat64()},
		{"Número de Atendimentos", st.ServicesCompleted},
		{"Ticket Médio", st.AverageTicket.InexactFloat64()},
	}
	for i, r := range summary {
		if err := writeRow(sheetSummary, i+2, r); err != nil {
			return nil, fmt.Errorf("write summary row: %w", err)
		}
	}

	if err := f.SetPanes(sheetTransactions, &excelize.Panes{Freeze: true, Split: true, YSplit: 1}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
