package handlers

import (
	"net/http"

	"github.com/norce-drilling/field-service/internal/adapters/primary/http/dto"
	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// Conversion Set Queries
// ============================================================================

func (h *Handler) ListConversionSetIDs(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllConversionSetID)

	ids, err := h.conversionSetSvc.ListIDs(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list conversion set ids failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *Handler) ListConversionSetMetaInfo(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllConversionSetMetaInfo)

	metas, err := h.conversionSetSvc.ListMetaInfo(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list conversion set meta info failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMetaInfoResponses(metas))
}

func (h *Handler) GetConversionSet(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetConversionSetByID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	set, err := h.conversionSetSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionSetResponse(set))
}

func (h *Handler) ListConversionSetsLight(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllConversionSetLight)

	sets, err := h.conversionSetSvc.ListLight(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list light conversion sets failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionSetLightResponses(sets))
}

func (h *Handler) ListConversionSets(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllConversionSet)

	sets, err := h.conversionSetSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list conversion sets failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionSetResponses(sets))
}

// ============================================================================
// Conversion Set Commands
// ============================================================================

// CreateConversionSet stores a new set after its coordinates were computed by the
// projection service. Projection failures answer 500 and nothing is stored.
func (h *Handler) CreateConversionSet(c *gin.Context) {
	h.usageSvc.Increment(domain.UsagePostConversionSet)

	var req dto.ConversionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := dto.ToConversionSet(&req)
	if err := h.conversionSetSvc.Add(c.Request.Context(), set); err != nil {
		log.WithError(err).WithField("conversion_set_id", set.ID()).Error("create conversion set failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) UpdateConversionSet(c *gin.Context) {
	h.usageSvc.Increment(domain.UsagePutConversionSetByID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ConversionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.conversionSetSvc.UpdateByID(c.Request.Context(), id, dto.ToConversionSet(&req)); err != nil {
		log.WithError(err).WithField("conversion_set_id", id).Error("update conversion set failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) DeleteConversionSet(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageDeleteConversionSetByID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.conversionSetSvc.DeleteByID(c.Request.Context(), id); err != nil {
		log.WithError(err).WithField("conversion_set_id", id).Error("delete conversion set failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
