package dto

import (
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
)

// ============================================================================
// Request DTOs
// ============================================================================

type MetaInfoDTO struct {
	ID               uuid.UUID `json:"ID" binding:"required"`
	Creator          string    `json:"Creator,omitempty"`
	Version          string    `json:"Version,omitempty"`
	HTTPHostName     string    `json:"HttpHostName,omitempty"`
	HTTPHostBasePath string    `json:"HttpHostBasePath,omitempty"`
	HTTPEndPoint     string    `json:"HttpEndPoint,omitempty"`
}

type FieldRequest struct {
	MetaInfo                 *MetaInfoDTO `json:"MetaInfo" binding:"required"`
	Name                     string       `json:"Name"`
	Description              string       `json:"Description"`
	CreationDate             *time.Time   `json:"CreationDate"`
	LastModificationDate     *time.Time   `json:"LastModificationDate"`
	CartographicProjectionID *uuid.UUID   `json:"CartographicProjectionID"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type FieldResponse struct {
	MetaInfo                 *MetaInfoDTO `json:"MetaInfo"`
	Name                     string       `json:"Name"`
	Description              string       `json:"Description"`
	CreationDate             *time.Time   `json:"CreationDate"`
	LastModificationDate     *time.Time   `json:"LastModificationDate"`
	CartographicProjectionID *uuid.UUID   `json:"CartographicProjectionID"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToMetaInfo(m *MetaInfoDTO) *domain.MetaInfo {
	if m == nil {
		return nil
	}
	return &domain.MetaInfo{
		ID:               m.ID,
		Creator:          m.Creator,
		Version:          m.Version,
		HTTPHostName:     m.HTTPHostName,
		HTTPHostBasePath: m.HTTPHostBasePath,
		HTTPEndPoint:     m.HTTPEndPoint,
	}
}

func ToMetaInfoResponse(m *domain.MetaInfo) *MetaInfoDTO {
	if m == nil {
		return nil
	}
	return &MetaInfoDTO{
		ID:               m.ID,
		Creator:          m.Creator,
		Version:          m.Version,
		HTTPHostName:     m.HTTPHostName,
		HTTPHostBasePath: m.HTTPHostBasePath,
		HTTPEndPoint:     m.HTTPEndPoint,
	}
}

func ToMetaInfoResponses(metas []*domain.MetaInfo) []*MetaInfoDTO {
	out := make([]*MetaInfoDTO, 0, len(metas))
	for _, m := range metas {
		out = append(out, ToMetaInfoResponse(m))
	}
	return out
}

func ToField(req *FieldRequest) *domain.Field {
	return &domain.Field{
		MetaInfo:                 ToMetaInfo(req.MetaInfo),
		Name:                     req.Name,
		Description:              req.Description,
		CreationDate:             req.CreationDate,
		LastModificationDate:     req.LastModificationDate,
		CartographicProjectionID: req.CartographicProjectionID,
	}
}

func ToFieldResponse(f *domain.Field) FieldResponse {
	return FieldResponse{
		MetaInfo:                 ToMetaInfoResponse(f.MetaInfo),
		Name:                     f.Name,
		Description:              f.Description,
		CreationDate:             f.CreationDate,
		LastModificationDate:     f.LastModificationDate,
		CartographicProjectionID: f.CartographicProjectionID,
	}
}

func ToFieldResponses(fields []*domain.Field) []FieldResponse {
	out := make([]FieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, ToFieldResponse(f))
	}
	return out
}
