package handlers

import (
	"errors"
	"net/http"

	"call2fa/internal/middleware"
	"call2fa/internal/models"
	"call2fa/internal/repositories"
	"call2fa/internal/services"
	"call2fa/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CallHandler struct {
	callService *services.CallService
	log         *logger.Logger
}

func NewCallHandler(callService *services.CallService, log *logger.Logger) *CallHandler {
	return &CallHandler{callService: callService, log: log}
}

// Call handles POST /:version/call/.
func (h *CallHandler) Call(c *gin.Context) {
	var req models.CallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	call, err := h.callService.Call(c.Request.Context(), middleware.Login(c), req)
	h.respondCreated(c, call, err)
}

// PoolCall handles POST /:version/pool/:pool_id/call/.
func (h *CallHandler) PoolCall(c *gin.Context) {
	h.poolCall(c, false)
}

// PoolCallSixDigits handles POST /:version/pool/:pool_id/call/six-digits/.
func (h *CallHandler) PoolCallSixDigits(c *gin.Context) {
	h.poolCall(c, true)
}

func (h *CallHandler) poolCall(c *gin.Context, sixDigits bool) {
	var req models.PoolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	call, err := h.callService.CallViaPool(c.Request.Context(), middleware.Login(c), c.Param("pool_id"), sixDigits, req)
	if err != nil {
		h.respondCreated(c, nil, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"call_id": call.ID, "number": call.Number, "code": call.Code})
}

// CodeCall handles POST /:version/code/call/.
func (h *CallHandler) CodeCall(c *gin.Context) {
	var req models.CodeCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	call, err := h.callService.CallWithCode(c.Request.Context(), middleware.Login(c), req)
	h.respondCreated(c, call, err)
}

// Info handles GET /:version/call/:call_id/.
func (h *CallHandler) Info(c *gin.Context) {
	call, err := h.callService.Info(c.Request.Context(), middleware.Login(c), c.Param("call_id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "call not found"})
			return
		}
		h.log.Errorf("Call info failed: call_id=%s, error=%v", c.Param("call_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, call)
}

func (h *CallHandler) respondCreated(c *gin.Context, call *models.Call, err error) {
	if err != nil {
		h.log.Errorf("Call failed: path=%s, error=%v", c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"call_id": call.ID})
}
