package company

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/company", h.Get)
	r.PUT("/company", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get()
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(ErrInvalid("invalid json")))
		return
	}
	p, err := h.svc.Update(req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newErrDTO(err error) errDTO {
	var e errDTO
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = ErrInternal(err.Error())
	}
	e.Error.Code = apiErr.Code
	e.Error.Message = apiErr.Message
	return e
}
