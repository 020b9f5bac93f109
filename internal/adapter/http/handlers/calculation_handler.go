package handlers

import (
	"context"
	"errors"
	"fmt"
	request "insumos_limpeza/internal/adapter/http/dto/request"
	response "insumos_limpeza/internal/adapter/http/dto/response"
	"insumos_limpeza/internal/usecase"
	"insumos_limpeza/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCalculationPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATION_INPUT", "Invalid calculation payload", http.StatusBadRequest)
)

// CalculationHandler handles HTTP requests for supplies calculations.
type CalculationHandler struct {
	usecase usecase.ICalculationUseCase
}

func NewCalculationHandler(uc usecase.ICalculationUseCase) *CalculationHandler {
	return &CalculationHandler{usecase: uc}
}

// CreateCalculation godoc
// @Summary      Calculate and store a supplies estimate
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        body  body      request.CalculationCreateRequest  true  "Intake form"
// @Success      201   {object}  response.CalculationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calculations [post]
func (h *CalculationHandler) CreateCalculation(c *gin.Context) {
	var payload request.CalculationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[calculation][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCalculationPayload.HTTPStatus, errInvalidCalculationPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Calculate(c.Request.Context(), payload.ToInput(), payload.Contato.ToContact())
	if err != nil {
		log.Printf("[calculation][handler] create failed err=%v", err)
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[calculation][handler] create success id=%s", rec.ID)

	c.JSON(http.StatusCreated, response.FromCalculationRecord(rec))
}

// PreviewCalculation godoc
// @Summary      Calculate a supplies estimate without storing it
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        body  body      request.CalculatorInputRequest  true  "Intake form"
// @Success      200   {object}  entities.CalculationResult
// @Failure      400   {object}  pkg.HTTPError
// @Router       /calculations/preview [post]
func (h *CalculationHandler) PreviewCalculation(c *gin.Context) {
	var payload request.CalculatorInputRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[calculation][handler] invalid preview payload err=%v", err)
		c.JSON(errInvalidCalculationPayload.HTTPStatus, errInvalidCalculationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Preview(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetCalculation godoc
// @Summary      Get a stored calculation
// @Tags         calculations
// @Produce      json
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {object}  response.CalculationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /calculations/{id} [get]
func (h *CalculationHandler) GetCalculation(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculationRecord(rec))
}

// DownloadPDF godoc
// @Summary      Download the calculation report as PDF
// @Tags         calculations
// @Produce      application/pdf
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /calculations/{id}/report.pdf [get]
func (h *CalculationHandler) DownloadPDF(c *gin.Context) {
	h.download(c, "pdf", usecase.ContentTypePDF, h.usecase.RenderPDF)
}

// DownloadXLSX godoc
// @Summary      Download the calculation report as XLSX
// @Tags         calculations
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /calculations/{id}/report.xlsx [get]
func (h *CalculationHandler) DownloadXLSX(c *gin.Context) {
	h.download(c, "xlsx", usecase.ContentTypeXLSX, h.usecase.RenderXLSX)
}

func (h *CalculationHandler) download(
	c *gin.Context,
	ext string,
	contentType string,
	render func(ctx context.Context, id string) ([]byte, error),
) {
	id := c.Param("id")
	b, err := render(c.Request.Context(), id)
	if err != nil {
		log.Printf("[calculation][handler] render %s failed id=%s err=%v", ext, id, err)
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="relatorio-%s.%s"`, id, ext))
	c.Data(http.StatusOK, contentType, b)
}

// DeliverReport godoc
// @Summary      E-mail the calculation report to the lead (at most once)
// @Tags         calculations
// @Produce      json
// @Param        id   path      string  true  "Calculation ID"
// @Success      200  {object}  response.ReportDeliveryResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /calculations/{id}/report [post]
func (h *CalculationHandler) DeliverReport(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[calculation][handler] deliver start id=%s", id)

	rec, err := h.usecase.DeliverReport(c.Request.Context(), id)
	if err != nil {
		log.Printf("[calculation][handler] deliver failed id=%s err=%v", id, err)
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[calculation][handler] deliver success id=%s status=%s", id, rec.ReportStatus)

	c.JSON(http.StatusOK, response.FromReportDelivery(rec))
}

func mapCalculationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCalculatorInput):
		return pkg.NewDomainError("INVALID_CALCULATION_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCalculationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContact):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT", "Invalid contact", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCalculationNotFound):
		return pkg.NewDomainErrorSimple("CALCULATION_NOT_FOUND", "Calculation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportAlreadyDelivered):
		return pkg.NewDomainErrorSimple("REPORT_ALREADY_DELIVERED", "Report already delivered or in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrReportDeliveryFailed):
		return pkg.NewDomainError("REPORT_DELIVERY_FAILED", "Report delivery failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrReportRendererNotConfig), errors.Is(err, usecase.ErrReportSenderNotConfig):
		return pkg.NewDomainErrorSimple("REPORT_NOT_CONFIGURED", "Report delivery not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
