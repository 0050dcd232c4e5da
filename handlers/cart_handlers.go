package handlers

import (
	"github.com/fadhlanhapp/sharetab-checkout/logger"
	"github.com/fadhlanhapp/sharetab-checkout/models"
	"github.com/fadhlanhapp/sharetab-checkout/services"
	"github.com/fadhlanhapp/sharetab-checkout/utils"

	"github.com/gin-gonic/gin"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	CalculationService *services.CalculationService
	ExcelService       *services.ExcelService
	Log                *logger.Logger
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(calculationService *services.CalculationService, log *logger.Logger) *HandlerServices {
	if log == nil {
		log = logger.Nop()
	}
	return &HandlerServices{
		CalculationService: calculationService,
		ExcelService:       services.NewExcelService(),
		Log:                log,
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(svc *HandlerServices) {
	handlerServices = svc
}

// Health reports that the API is up
func Health(c *gin.Context) {
	utils.HandleSuccess(c, models.HealthResponse{Status: "ok"})
}

// GetPricingPolicy returns the rates applied to every calculation
func GetPricingPolicy(c *gin.Context) {
	utils.HandleSuccess(c, handlerServices.CalculationService.Policy())
}

// CalculateCart handles cart total calculation
func CalculateCart(c *gin.Context) {
	var request models.CalculateCartRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.CalculationService.CalculateCart(c.Request.Context(), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}
