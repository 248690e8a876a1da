package handler

import (
	"net/http"
	"strconv"

	"fabricpos/internal/apierror"
	"fabricpos/internal/dto"
	"fabricpos/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

func (h *StockHandler) AddStock(c *gin.Context) {
	var req dto.AddStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddStock(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) UpdateStock(c *gin.Context) {
	id, ok := lotID(c)
	if !ok {
		return
	}
	var req dto.UpdateStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStock(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	id, ok := lotID(c)
	if !ok {
		return
	}
	resp, err := h.svc.DeleteStock(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) GetInventory(c *gin.Context) {
	resp, err := h.svc.ListInventory(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) GetInventorySimple(c *gin.Context) {
	resp, err := h.svc.ListInventorySimple(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func lotID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid stock id"))
		return 0, false
	}
	return uint(id), true
}
