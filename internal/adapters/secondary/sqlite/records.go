package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/google/uuid"
)

const timeLayout = time.RFC3339Nano

func encodeTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timeLayout), Valid: true}
}

func decodeTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", s.String, err)
	}
	return &t, nil
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encodeMetaInfo(m *domain.MetaInfo) (sql.NullString, error) {
	if m == nil {
		return sql.NullString{}, nil
	}
	s, err := encodeJSON(m)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode meta info: %w", err)
	}
	return sql.NullString{String: s, Valid: true}, nil
}

func decodeMetaInfo(s sql.NullString) (*domain.MetaInfo, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var m domain.MetaInfo
	if err := json.Unmarshal([]byte(s.String), &m); err != nil {
		return nil, fmt.Errorf("decode meta info: %w", err)
	}
	return &m, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse stored id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeMetaInfoList(raw []sql.NullString) ([]*domain.MetaInfo, error) {
	out := make([]*domain.MetaInfo, 0, len(raw))
	for _, s := range raw {
		m, err := decodeMetaInfo(s)
		if err != nil {
			return nil, err
		}
		if m != nil {
			out = append(out, m)
		}
	}
	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// ============================================================================
// Field rows
// ============================================================================

type fieldRow struct {
	ID                   string         `db:"id"`
	MetaInfo             sql.NullString `db:"meta_info"`
	Name                 sql.NullString `db:"name"`
	Description          sql.NullString `db:"description"`
	CreationDate         sql.NullString `db:"creation_date"`
	LastModificationDate sql.NullString `db:"last_modification_date"`
	Data                 string         `db:"data"`
}

func newFieldRow(f *domain.Field) (*fieldRow, error) {
	meta, err := encodeMetaInfo(f.MetaInfo)
	if err != nil {
		return nil, err
	}
	data, err := encodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("encode field: %w", err)
	}
	return &fieldRow{
		ID:                   f.ID().String(),
		MetaInfo:             meta,
		Name:                 nullString(f.Name),
		Description:          nullString(f.Description),
		CreationDate:         encodeTime(f.CreationDate),
		LastModificationDate: encodeTime(f.LastModificationDate),
		Data:                 data,
	}, nil
}

func decodeField(data string) (*domain.Field, error) {
	var f domain.Field
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return nil, fmt.Errorf("decode field: %w", err)
	}
	return &f, nil
}

// ============================================================================
// Conversion set rows
// ============================================================================

type conversionSetRow struct {
	ID                   string         `db:"id"`
	MetaInfo             sql.NullString `db:"meta_info"`
	Name                 sql.NullString `db:"name"`
	Description          sql.NullString `db:"description"`
	CreationDate         sql.NullString `db:"creation_date"`
	LastModificationDate sql.NullString `db:"last_modification_date"`
	FieldID              sql.NullString `db:"field_id"`
	FieldName            sql.NullString `db:"field_name"`
	FieldDescription     sql.NullString `db:"field_description"`
	Data                 string         `db:"data"`
}

func newConversionSetRow(set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) (*conversionSetRow, error) {
	meta, err := encodeMetaInfo(set.MetaInfo)
	if err != nil {
		return nil, err
	}
	data, err := encodeJSON(set)
	if err != nil {
		return nil, fmt.Errorf("encode conversion set: %w", err)
	}

	row := &conversionSetRow{
		ID:                   set.ID().String(),
		MetaInfo:             meta,
		Name:                 nullString(set.Name),
		Description:          nullString(set.Description),
		CreationDate:         encodeTime(set.CreationDate),
		LastModificationDate: encodeTime(set.LastModificationDate),
		FieldName:            nullString(owner.Name),
		FieldDescription:     nullString(owner.Description),
		Data:                 data,
	}
	if set.FieldID != nil {
		row.FieldID = nullString(set.FieldID.String())
	}
	return row, nil
}

func decodeConversionSet(data string) (*domain.FieldCartographicConversionSet, error) {
	var set domain.FieldCartographicConversionSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, fmt.Errorf("decode conversion set: %w", err)
	}
	return &set, nil
}

// light builds the list-view projection from the scalar columns only.
func (r *conversionSetRow) light() (*domain.FieldCartographicConversionSetLight, error) {
	meta, err := decodeMetaInfo(r.MetaInfo)
	if err != nil {
		return nil, err
	}
	created, err := decodeTime(r.CreationDate)
	if err != nil {
		return nil, err
	}
	modified, err := decodeTime(r.LastModificationDate)
	if err != nil {
		return nil, err
	}
	return &domain.FieldCartographicConversionSetLight{
		MetaInfo:             meta,
		Name:                 r.Name.String,
		Description:          r.Description.String,
		CreationDate:         created,
		LastModificationDate: modified,
		FieldName:            r.FieldName.String,
		FieldDescription:     r.FieldDescription.String,
	}, nil
}
