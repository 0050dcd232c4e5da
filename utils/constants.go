package utils

const (
	// HTTP status messages
	ErrInvalidRequest   = "Invalid request"
	ErrCalculation      = "Error in calculation!"
	ErrFailedToExport   = "Failed to export receipt"
	ErrFailedToGenerate = "Failed to generate receipt"

	// Decimal places kept for monetary amounts
	MoneyPlaces = 2

	// Spreadsheet content type for receipt exports
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
