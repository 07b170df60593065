package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetaInfo identifies a persisted record and carries its provenance.
type MetaInfo struct {
	ID               uuid.UUID `json:"ID"`
	Creator          string    `json:"Creator,omitempty"`
	Version          string    `json:"Version,omitempty"`
	HTTPHostName     string    `json:"HttpHostName,omitempty"`
	HTTPHostBasePath string    `json:"HttpHostBasePath,omitempty"`
	HTTPEndPoint     string    `json:"HttpEndPoint,omitempty"`
}

// Field is a named drilling site with an optional reference to a cartographic projection.
type Field struct {
	MetaInfo                 *MetaInfo  `json:"MetaInfo"`
	Name                     string     `json:"Name"`
	Description              string     `json:"Description"`
	CreationDate             *time.Time `json:"CreationDate"`
	LastModificationDate     *time.Time `json:"LastModificationDate"`
	CartographicProjectionID *uuid.UUID `json:"CartographicProjectionID"`
}

// ID returns the field identifier, or uuid.Nil when the MetaInfo block is missing.
func (f *Field) ID() uuid.UUID {
	if f == nil || f.MetaInfo == nil {
		return uuid.Nil
	}
	return f.MetaInfo.ID
}

// HasProjection reports whether the field references a cartographic projection.
func (f *Field) HasProjection() bool {
	return f.CartographicProjectionID != nil && *f.CartographicProjectionID != uuid.Nil
}

// Touch stamps the modification date with the server clock.
func (f *Field) Touch(now time.Time) {
	t := now.UTC()
	f.LastModificationDate = &t
}
