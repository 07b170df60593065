package dto

import (
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
)

// ============================================================================
// Request DTOs
// ============================================================================

// ConversionSetRequest carries either the cartesian or the geodetic part of each
// coordinate; the other part is computed before the set is stored.
type ConversionSetRequest struct {
	MetaInfo                   *MetaInfoDTO                    `json:"MetaInfo" binding:"required"`
	Name                       string                          `json:"Name"`
	Description                string                          `json:"Description"`
	CreationDate               *time.Time                      `json:"CreationDate"`
	LastModificationDate       *time.Time                      `json:"LastModificationDate"`
	FieldID                    *uuid.UUID                      `json:"FieldID"`
	CartographicCoordinateList []domain.CartographicCoordinate `json:"CartographicCoordinateList"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type ConversionSetResponse struct {
	MetaInfo                   *MetaInfoDTO                    `json:"MetaInfo"`
	Name                       string                          `json:"Name"`
	Description                string                          `json:"Description"`
	CreationDate               *time.Time                      `json:"CreationDate"`
	LastModificationDate       *time.Time                      `json:"LastModificationDate"`
	FieldID                    *uuid.UUID                      `json:"FieldID"`
	CartographicCoordinateList []domain.CartographicCoordinate `json:"CartographicCoordinateList"`
}

type ConversionSetLightResponse struct {
	MetaInfo             *MetaInfoDTO `json:"MetaInfo"`
	Name                 string       `json:"Name"`
	Description          string       `json:"Description"`
	CreationDate         *time.Time   `json:"CreationDate"`
	LastModificationDate *time.Time   `json:"LastModificationDate"`
	FieldName            string       `json:"FieldName"`
	FieldDescription     string       `json:"FieldDescription"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToConversionSet(req *ConversionSetRequest) *domain.FieldCartographicConversionSet {
	return &domain.FieldCartographicConversionSet{
		MetaInfo:                   ToMetaInfo(req.MetaInfo),
		Name:                       req.Name,
		Description:                req.Description,
		CreationDate:               req.CreationDate,
		LastModificationDate:       req.LastModificationDate,
		FieldID:                    req.FieldID,
		CartographicCoordinateList: req.CartographicCoordinateList,
	}
}

func ToConversionSetResponse(s *domain.FieldCartographicConversionSet) ConversionSetResponse {
	return ConversionSetResponse{
		MetaInfo:                   ToMetaInfoResponse(s.MetaInfo),
		Name:                       s.Name,
		Description:                s.Description,
		CreationDate:               s.CreationDate,
		LastModificationDate:       s.LastModificationDate,
		FieldID:                    s.FieldID,
		CartographicCoordinateList: s.CartographicCoordinateList,
	}
}

func ToConversionSetResponses(sets []*domain.FieldCartographicConversionSet) []ConversionSetResponse {
	out := make([]ConversionSetResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, ToConversionSetResponse(s))
	}
	return out
}

func ToConversionSetLightResponses(sets []*domain.FieldCartographicConversionSetLight) []ConversionSetLightResponse {
	out := make([]ConversionSetLightResponse, 0, len(sets))
	for _, s := range sets {
		out = append(out, ConversionSetLightResponse{
			MetaInfo:             ToMetaInfoResponse(s.MetaInfo),
			Name:                 s.Name,
			Description:          s.Description,
			CreationDate:         s.CreationDate,
			LastModificationDate: s.LastModificationDate,
			FieldName:            s.FieldName,
			FieldDescription:     s.FieldDescription,
		})
	}
	return out
}
