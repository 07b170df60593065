package handlers

import (
	"net/http"

	"github.com/norce-drilling/field-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	fieldSvc         *services.FieldService
	conversionSetSvc *services.ConversionSetService
	usageSvc         *services.UsageService
}

func New(
	fieldSvc *services.FieldService,
	conversionSetSvc *services.ConversionSetService,
	usageSvc *services.UsageService,
) *Handler {
	return &Handler{
		fieldSvc:         fieldSvc,
		conversionSetSvc: conversionSetSvc,
		usageSvc:         usageSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Fields
	r.GET("/Field", h.ListFieldIDs)
	r.GET("/Field/MetaInfo", h.ListFieldMetaInfo)
	r.GET("/Field/HeavyData", h.ListFields)
	r.GET("/Field/:id", h.GetField)
	r.POST("/Field", h.CreateField)
	r.PUT("/Field/:id", h.UpdateField)
	r.DELETE("/Field/:id", h.DeleteField)

	// Field Cartographic Conversion Sets
	r.GET("/FieldCartographicConversionSet", h.ListConversionSetIDs)
	r.GET("/FieldCartographicConversionSet/MetaInfo", h.ListConversionSetMetaInfo)
	r.GET("/FieldCartographicConversionSet/LightData", h.ListConversionSetsLight)
	r.GET("/FieldCartographicConversionSet/HeavyData", h.ListConversionSets)
	r.GET("/FieldCartographicConversionSet/:id", h.GetConversionSet)
	r.POST("/FieldCartographicConversionSet", h.CreateConversionSet)
	r.PUT("/FieldCartographicConversionSet/:id", h.UpdateConversionSet)
	r.DELETE("/FieldCartographicConversionSet/:id", h.DeleteConversionSet)

	// Usage
	r.GET("/FieldUsageStatistics", h.GetUsageStatistics)
}

// parseID reads the :id path parameter, answering 400 when it is not a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return uuid.Nil, false
	}
	return id, true
}
