package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"household-relay/internal/voice"
)

func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return routeReq{}, errTextRequired
	}
	if strings.TrimSpace(req.Text) == "" {
		return routeReq{}, errTextRequired
	}
	return req, nil
}

func (h *handler) processExecuteReq(c *gin.Context) (executeReq, error) {
	var req executeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return executeReq{}, errIntentRequired
	}
	if req.Slots == nil {
		req.Slots = map[string]string{}
	}
	return req, nil
}

func (h *handler) processUndoReq(c *gin.Context) (undoReq, error) {
	var req undoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return undoReq{}, errTokenRequired
	}
	return req, nil
}

// validDomains are the deferred domains a pending endpoint may address.
var validDomains = map[string]voice.Domain{
	"meals":    voice.DomainMeals,
	"finances": voice.DomainFinances,
	"pets":     voice.DomainPets,
	"notes":    voice.DomainNotes,
	"family":   voice.DomainFamily,
}

func (h *handler) processDomainParam(c *gin.Context) (voice.Domain, error) {
	domain, ok := validDomains[strings.ToLower(c.Param("domain"))]
	if !ok {
		return "", errUnknownDomain
	}
	return domain, nil
}
