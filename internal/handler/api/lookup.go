package api

import (
	"net/http"

	"assistance-console/internal/handler/httperr"
	"assistance-console/internal/infra"
	"assistance-console/internal/infra/gateway"
	"assistance-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	lookups *gateway.LookupCache
}

func NewLookupHandler(lookups *gateway.LookupCache) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

// List serves one reference catalog (zones, intervention-types,
// technicians) as {id, label} pairs, from the TTL cache.
func (h *LookupHandler) List(c *gin.Context) {
	kind := c.Param("kind")
	if !gateway.KnownLookupKind(kind) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrUnknownLookupKind, "Unknown lookup kind", nil)
		return
	}

	items, err := h.lookups.Items(c.Request.Context(), kind)
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthorized) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Backend session expired", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Backend unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, items)
}
