package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rtodo/internal/adapter/http/dto"
	"rtodo/internal/adapter/http/middleware"
	"rtodo/pkg/apierrors"
	"rtodo/pkg/nonce"
)

type NonceHandler struct {
	source *nonce.Source
}

func NewNonceHandler(source *nonce.Source) *NonceHandler {
	return &NonceHandler{source: source}
}

// IssueNonce hands the caller a token for one action, e.g.
// GET /api/nonce?action=save_task.
func (h *NonceHandler) IssueNonce(c *gin.Context) {
	lang := middleware.GetLang(c)

	action := strings.TrimSpace(c.Query("action"))
	if action == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidNonceAction, lang),
		)
		return
	}

	token := h.source.Create(middleware.GetUserID(c), action)
	c.JSON(http.StatusOK, dto.NonceResponse{Nonce: token})
}
