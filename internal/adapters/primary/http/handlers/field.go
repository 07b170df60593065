package handlers

import (
	"net/http"

	"github.com/norce-drilling/field-service/internal/adapters/primary/http/dto"
	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// Field Queries
// ============================================================================

func (h *Handler) ListFieldIDs(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllFieldID)

	ids, err := h.fieldSvc.ListIDs(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list field ids failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

func (h *Handler) ListFieldMetaInfo(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllFieldMetaInfo)

	metas, err := h.fieldSvc.ListMetaInfo(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list field meta info failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMetaInfoResponses(metas))
}

func (h *Handler) GetField(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetFieldByID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	field, err := h.fieldSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFieldResponse(field))
}

func (h *Handler) ListFields(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageGetAllField)

	fields, err := h.fieldSvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list fields failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFieldResponses(fields))
}

// ============================================================================
// Field Commands
// ============================================================================

func (h *Handler) CreateField(c *gin.Context) {
	h.usageSvc.Increment(domain.UsagePostField)

	var req dto.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	field := dto.ToField(&req)
	if err := h.fieldSvc.Add(c.Request.Context(), field); err != nil {
		log.WithError(err).WithField("field_id", field.ID()).Error("create field failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) UpdateField(c *gin.Context) {
	h.usageSvc.Increment(domain.UsagePutFieldByID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.fieldSvc.UpdateByID(c.Request.Context(), id, dto.ToField(&req)); err != nil {
		log.WithError(err).WithField("field_id", id).Error("update field failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) DeleteField(c *gin.Context) {
	h.usageSvc.Increment(domain.UsageDeleteFieldByID)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.fieldSvc.DeleteByID(c.Request.Context(), id); err != nil {
		log.WithError(err).WithField("field_id", id).Error("delete field failed")
		mapDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
