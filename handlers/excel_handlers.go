package handlers

import (
	"fmt"
	"net/http"

	"github.com/fadhlanhapp/sharetab-checkout/models"
	"github.com/fadhlanhapp/sharetab-checkout/utils"
	"github.com/gin-gonic/gin"
)

// ExportCartToExcel calculates a cart and returns the receipt as a spreadsheet
func ExportCartToExcel(c *gin.Context) {
	var request models.CalculateCartRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	calculationService := handlerServices.CalculationService
	calc, err := calculationService.CalculateCart(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Generate Excel file
	excelFile, filename, err := handlerServices.ExcelService.ExportCalculation(calc, calculationService.Policy())
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToGenerate))
		return
	}
	defer excelFile.Close()

	// Set headers for file download
	c.Header("Content-Type", utils.XLSXContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response. Once bytes are out a JSON error would corrupt the download.
	if err := excelFile.Write(c.Writer); err != nil {
		ctx := handlerServices.Log.WithField(c.Request.Context(), "filename", filename)
		handlerServices.Log.Error(ctx, utils.ErrFailedToExport, err)
		if !c.Writer.Written() {
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}
}
