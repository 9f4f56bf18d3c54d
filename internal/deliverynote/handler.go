package deliverynote

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/delivery-notes", h.GenerateSingle)
	r.POST("/delivery-notes/batch", h.GenerateBatch)
	r.POST("/delivery-notes/mail", h.Mail)
}

// POST /delivery-notes
func (h *Handler) GenerateSingle(c *gin.Context) {
	var req SingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(bindError(err, "item")))
		return
	}
	doc, err := h.svc.GenerateSingle(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	writePDF(c, doc)
}

// POST /delivery-notes/batch
func (h *Handler) GenerateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(bindError(err, "items")))
		return
	}
	doc, err := h.svc.GenerateBatch(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	writePDF(c, doc)
}

// POST /delivery-notes/mail
func (h *Handler) Mail(c *gin.Context) {
	var req MailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(bindError(err, "items")))
		return
	}
	res, err := h.svc.Mail(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func writePDF(c *gin.Context, doc *Document) {
	c.Header("Content-Disposition", ContentDisposition(doc.Filename, doc.ASCIIFilename))
	c.Header("X-Page-Count", strconv.Itoa(doc.Pages))
	c.Data(http.StatusOK, "application/pdf", doc.Body)
}

// bindError 明細フィールドが配列/オブジェクトでない場合は明細なしとして扱う
func bindError(err error, itemsField string) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field == itemsField {
		return ErrMissingItems
	}
	return ErrInvalid("invalid json")
}

// ===== helpers =====
type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newErrDTO(err error) errDTO {
	var e errDTO
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		e.Error.Code = apiErr.Code
		e.Error.Message = apiErr.Message
		return e
	}
	e.Error.Code = CodeInternal
	e.Error.Message = err.Error()
	return e
}
