package domain

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// Value Objects
// ============================================================================

// OctreeCode locates a WGS84 position in the octree at the given depth.
type OctreeCode struct {
	CodeHigh uint64 `json:"CodeHigh"`
	CodeLow  uint64 `json:"CodeLow"`
	Depth    byte   `json:"Depth"`
}

// GeodeticCoordinate holds a position in the field's geodetic datum and in WGS84.
type GeodeticCoordinate struct {
	LatitudeDatum      *float64    `json:"LatitudeDatum"`
	LongitudeDatum     *float64    `json:"LongitudeDatum"`
	VerticalDepthDatum *float64    `json:"VerticalDepthDatum"`
	LatitudeWGS84      *float64    `json:"LatitudeWGS84"`
	LongitudeWGS84     *float64    `json:"LongitudeWGS84"`
	VerticalDepthWGS84 *float64    `json:"VerticalDepthWGS84"`
	OctreeDepth        *int        `json:"OctreeDepth"`
	OctreeCode         *OctreeCode `json:"OctreeCode"`
}

// CartographicCoordinate is one point of a conversion set. Callers provide either the
// cartesian part or the geodetic part; the projection service computes the other.
type CartographicCoordinate struct {
	Northing             *float64            `json:"Northing"`
	Easting              *float64            `json:"Easting"`
	VerticalDepth        *float64            `json:"VerticalDepth"`
	GeodeticCoordinate   *GeodeticCoordinate `json:"GeodeticCoordinate"`
	GridConvergenceDatum *float64            `json:"GridConvergenceDatum"`
	GridConvergenceWGS84 *float64            `json:"GridConvergenceWGS84"`
}

// ============================================================================
// Entities
// ============================================================================

// FieldCartographicConversionSet is a batch of coordinates expressed in the
// cartographic projection of its owning field.
type FieldCartographicConversionSet struct {
	MetaInfo                   *MetaInfo                `json:"MetaInfo"`
	Name                       string                   `json:"Name"`
	Description                string                   `json:"Description"`
	CreationDate               *time.Time               `json:"CreationDate"`
	LastModificationDate       *time.Time               `json:"LastModificationDate"`
	FieldID                    *uuid.UUID               `json:"FieldID"`
	CartographicCoordinateList []CartographicCoordinate `json:"CartographicCoordinateList"`
}

// ID returns the set identifier, or uuid.Nil when the MetaInfo block is missing.
func (s *FieldCartographicConversionSet) ID() uuid.UUID {
	if s == nil || s.MetaInfo == nil {
		return uuid.Nil
	}
	return s.MetaInfo.ID
}

// NeedsConversion reports whether the set references a field and carries coordinates.
func (s *FieldCartographicConversionSet) NeedsConversion() bool {
	return s.FieldID != nil && len(s.CartographicCoordinateList) > 0
}

// Touch stamps the modification date with the server clock.
func (s *FieldCartographicConversionSet) Touch(now time.Time) {
	t := now.UTC()
	s.LastModificationDate = &t
}

// FieldCartographicConversionSetLight is the list-view projection of a conversion set,
// denormalized with the owning field's name and description.
type FieldCartographicConversionSetLight struct {
	MetaInfo             *MetaInfo  `json:"MetaInfo"`
	Name                 string     `json:"Name"`
	Description          string     `json:"Description"`
	CreationDate         *time.Time `json:"CreationDate"`
	LastModificationDate *time.Time `json:"LastModificationDate"`
	FieldName            string     `json:"FieldName"`
	FieldDescription     string     `json:"FieldDescription"`
}

// FieldSummary is the part of a Field copied into the light-view columns.
type FieldSummary struct {
	Name        string
	Description string
}

// ============================================================================
// Remote (CartographicProjection service) Entities
// ============================================================================

// CartographicProjection is the projection definition owned by the projection service.
type CartographicProjection struct {
	MetaInfo             *MetaInfo  `json:"MetaInfo"`
	Name                 string     `json:"Name"`
	Description          string     `json:"Description"`
	CreationDate         *time.Time `json:"CreationDate"`
	LastModificationDate *time.Time `json:"LastModificationDate"`
}

// CartographicConversionSet is the transient job submitted to the projection service.
type CartographicConversionSet struct {
	MetaInfo                   *MetaInfo                `json:"MetaInfo"`
	Name                       string                   `json:"Name"`
	Description                string                   `json:"Description"`
	CreationDate               *time.Time               `json:"CreationDate"`
	LastModificationDate       *time.Time               `json:"LastModificationDate"`
	CartographicProjectionID   *uuid.UUID               `json:"CartographicProjectionID"`
	CartographicCoordinateList []CartographicCoordinate `json:"CartographicCoordinateList"`
}
