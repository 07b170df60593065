package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/norce-drilling/field-service/internal/core/domain"
	ports "github.com/norce-drilling/field-service/internal/core/ports/output"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type conversionSetRepo struct {
	gw *Gateway
}

// NewConversionSetRepository creates a conversion set repository backed by the gateway's database.
func NewConversionSetRepository(gw *Gateway) ports.ConversionSetRepository {
	return &conversionSetRepo{gw: gw}
}

func (r *conversionSetRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := db.SelectContext(ctx, &raw, `SELECT id FROM field_cartographic_conversion_set ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list conversion set ids: %w", err)
	}
	return parseIDs(raw)
}

func (r *conversionSetRepo) ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var raw []sql.NullString
	if err := db.SelectContext(ctx, &raw, `SELECT meta_info FROM field_cartographic_conversion_set ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list conversion set meta info: %w", err)
	}
	return decodeMetaInfoList(raw)
}

func (r *conversionSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldCartographicConversionSet, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var data string
	err = db.GetContext(ctx, &data, `SELECT data FROM field_cartographic_conversion_set WHERE id = ?`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversionSetNotFound
		}
		return nil, fmt.Errorf("get conversion set by id: %w", err)
	}

	set, err := decodeConversionSet(data)
	if err != nil {
		return nil, err
	}
	if set.ID() != id {
		return nil, fmt.Errorf("conversion set %s: %w", id, domain.ErrCorruptRecord)
	}
	return set, nil
}

func (r *conversionSetRepo) List(ctx context.Context) ([]*domain.FieldCartographicConversionSet, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := db.SelectContext(ctx, &raw, `SELECT data FROM field_cartographic_conversion_set ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list conversion sets: %w", err)
	}

	sets := make([]*domain.FieldCartographicConversionSet, 0, len(raw))
	for _, data := range raw {
		set, err := decodeConversionSet(data)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// ListLight serves the list view from the scalar columns without decoding documents.
func (r *conversionSetRepo) ListLight(ctx context.Context) ([]*domain.FieldCartographicConversionSetLight, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, meta_info, name, description, creation_date, last_modification_date,
			field_id, field_name, field_description, '' AS data
		FROM field_cartographic_conversion_set
		ORDER BY rowid
	`
	var rows []conversionSetRow
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list light conversion sets: %w", err)
	}

	out := make([]*domain.FieldCartographicConversionSetLight, 0, len(rows))
	for i := range rows {
		light, err := rows[i].light()
		if err != nil {
			return nil, err
		}
		out = append(out, light)
	}
	return out, nil
}

func (r *conversionSetRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return false, err
	}
	return countByID(ctx, db, `SELECT COUNT(*) FROM field_cartographic_conversion_set WHERE id = ?`, id)
}

func (r *conversionSetRepo) Create(ctx context.Context, set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) error {
	row, err := newConversionSetRow(set, owner)
	if err != nil {
		return err
	}

	return r.gw.WithTx(ctx, func(tx *sqlx.Tx) error {
		exists, err := countByID(ctx, tx, `SELECT COUNT(*) FROM field_cartographic_conversion_set WHERE id = ?`, set.ID())
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrConversionSetAlreadyExists
		}

		query := `
			INSERT INTO field_cartographic_conversion_set (
				id, meta_info, name, description, creation_date, last_modification_date,
				field_id, field_name, field_description, data
			) VALUES (
				:id, :meta_info, :name, :description, :creation_date, :last_modification_date,
				:field_id, :field_name, :field_description, :data
			)
		`
		res, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("insert conversion set: %w", err)
		}
		return requireOneRow(res, "insert conversion set")
	})
}

func (r *conversionSetRepo) Update(ctx context.Context, set *domain.FieldCartographicConversionSet, owner domain.FieldSummary) error {
	row, err := newConversionSetRow(set, owner)
	if err != nil {
		return err
	}

	return r.gw.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE field_cartographic_conversion_set
			SET meta_info = :meta_info, name = :name, description = :description,
				creation_date = :creation_date, last_modification_date = :last_modification_date,
				field_id = :field_id, field_name = :field_name, field_description = :field_description,
				data = :data
			WHERE id = :id
		`
		res, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("update conversion set: %w", err)
		}
		return rowsOrNotFound(res, domain.ErrConversionSetNotFound)
	})
}

func (r *conversionSetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.gw.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM field_cartographic_conversion_set WHERE id = ?`, id.String())
		if err != nil {
			return fmt.Errorf("delete conversion set: %w", err)
		}
		return rowsOrNotFound(res, domain.ErrConversionSetNotFound)
	})
}
