package handler

import (
	"net/http"

	"fabricpos/internal/dto"
	"fabricpos/internal/service"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct{ svc service.BillingService }

func NewBillingHandler(svc service.BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

func (h *BillingHandler) CreateBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateBill(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
