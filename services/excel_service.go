package services

import (
	"fmt"
	"time"

	"github.com/fadhlanhapp/sharetab-checkout/models"
	"github.com/fadhlanhapp/sharetab-checkout/utils"
	"github.com/xuri/excelize/v2"
)

const (
	receiptSheet = "Receipt"
	policySheet  = "Policy"
)

// ExcelService handles Excel export functionality
type ExcelService struct{}

// NewExcelService creates a new Excel service
func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ExportCalculation generates a receipt workbook for a calculated cart
func (s *ExcelService) ExportCalculation(calc *models.CartCalculation, policy models.Policy) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := s.createReceiptSheet(f, calc); err != nil {
		return nil, "", fmt.Errorf("failed to create receipt sheet: %v", err)
	}

	if err := s.createPolicySheet(f, policy); err != nil {
		return nil, "", fmt.Errorf("failed to create policy sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	created := time.UnixMilli(calc.CreationTime)
	filename := fmt.Sprintf("%s.xlsx", utils.CleanFileName(
		fmt.Sprintf("Receipt %s %s", created.Format("2006-01-02"), shortID(calc.ID))))

	return f, filename, nil
}

// createReceiptSheet creates Sheet 1: line items followed by the totals
func (s *ExcelService) createReceiptSheet(f *excelize.File, calc *models.CartCalculation) error {
	if _, err := f.NewSheet(receiptSheet); err != nil {
		return err
	}
	sheetIndex, err := f.GetSheetIndex(receiptSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(sheetIndex)

	// Set headers
	headers := []string{"Item", "Category", "Unit Price", "Quantity", "Line Total"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(receiptSheet, cell, header)
	}

	// Style headers
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	f.SetCellStyle(receiptSheet, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, line := range calc.Lines {
		row := i + 2
		f.SetCellValue(receiptSheet, fmt.Sprintf("A%d", row), line.Name)
		f.SetCellValue(receiptSheet, fmt.Sprintf("B%d", row), utils.FormatNameForDisplay(line.Category))
		f.SetCellValue(receiptSheet, fmt.Sprintf("C%d", row), line.UnitPrice.InexactFloat64())
		f.SetCellValue(receiptSheet, fmt.Sprintf("D%d", row), line.Quantity)
		f.SetCellValue(receiptSheet, fmt.Sprintf("E%d", row), line.LineTotal.InexactFloat64())
	}

	// Totals section
	totals := []struct {
		label  string
		amount float64
	}{
		{"Subtotal", calc.Subtotal.InexactFloat64()},
		{"Member Discount", -calc.MemberDiscount.InexactFloat64()},
		{"Big Spender Discount", -calc.BigSpenderDiscount.InexactFloat64()},
		{"Coupon Discount", -calc.CouponDiscount.InexactFloat64()},
		{"Tax", calc.Tax.InexactFloat64()},
		{"Total", calc.Total.InexactFloat64()},
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	totalsStartRow := len(calc.Lines) + 3
	for i, t := range totals {
		row := totalsStartRow + i
		f.SetCellValue(receiptSheet, fmt.Sprintf("D%d", row), t.label)
		f.SetCellValue(receiptSheet, fmt.Sprintf("E%d", row), t.amount)
	}
	lastRow := totalsStartRow + len(totals) - 1
	f.SetCellStyle(receiptSheet, fmt.Sprintf("D%d", lastRow), fmt.Sprintf("E%d", lastRow), boldStyle)
	f.SetCellValue(receiptSheet, fmt.Sprintf("D%d", lastRow+1), "Display")
	f.SetCellValue(receiptSheet, fmt.Sprintf("E%d", lastRow+1), calc.Display)

	f.SetColWidth(receiptSheet, "A", "A", 24)
	f.SetColWidth(receiptSheet, "D", "D", 22)

	return nil
}

// createPolicySheet creates Sheet 2: the rates the receipt was priced with
func (s *ExcelService) createPolicySheet(f *excelize.File, policy models.Policy) error {
	if _, err := f.NewSheet(policySheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Setting", "Value"},
		{"Tax Rate", policy.TaxRate},
		{"Member Discount Rate", policy.MemberDiscountRate},
		{"Coupon Discount Rate", policy.CouponDiscountRate},
		{"Big Spender Discount", policy.BigSpenderFlatDiscount},
		{"Big Spender Threshold", policy.BigSpenderThreshold},
		{"Coupon Stage", string(policy.CouponStage)},
		{"Currency", policy.CurrencySymbol},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(policySheet, cell, &row); err != nil {
			return err
		}
	}
	f.SetColWidth(policySheet, "A", "A", 24)

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
