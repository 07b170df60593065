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

type fieldRepo struct {
	gw *Gateway
}

// NewFieldRepository creates a field repository backed by the gateway's database.
func NewFieldRepository(gw *Gateway) ports.FieldRepository {
	return &fieldRepo{gw: gw}
}

// ============================================================================
// Queries
// ============================================================================

func (r *fieldRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := db.SelectContext(ctx, &raw, `SELECT id FROM field ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list field ids: %w", err)
	}
	return parseIDs(raw)
}

func (r *fieldRepo) ListMetaInfo(ctx context.Context) ([]*domain.MetaInfo, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var raw []sql.NullString
	if err := db.SelectContext(ctx, &raw, `SELECT meta_info FROM field ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list field meta info: %w", err)
	}
	return decodeMetaInfoList(raw)
}

func (r *fieldRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Field, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var data string
	err = db.GetContext(ctx, &data, `SELECT data FROM field WHERE id = ?`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFieldNotFound
		}
		return nil, fmt.Errorf("get field by id: %w", err)
	}

	field, err := decodeField(data)
	if err != nil {
		return nil, err
	}
	if field.ID() != id {
		return nil, fmt.Errorf("field %s: %w", id, domain.ErrCorruptRecord)
	}
	return field, nil
}

func (r *fieldRepo) List(ctx context.Context) ([]*domain.Field, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := db.SelectContext(ctx, &raw, `SELECT data FROM field ORDER BY rowid`); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	fields := make([]*domain.Field, 0, len(raw))
	for _, data := range raw {
		field, err := decodeField(data)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (r *fieldRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return false, err
	}
	return countByID(ctx, db, `SELECT COUNT(*) FROM field WHERE id = ?`, id)
}

// ============================================================================
// Commands
// ============================================================================

func (r *fieldRepo) Create(ctx context.Context, field *domain.Field) error {
	row, err := newFieldRow(field)
	if err != nil {
		return err
	}

	return r.gw.WithTx(ctx, func(tx *sqlx.Tx) error {
		exists, err := countByID(ctx, tx, `SELECT COUNT(*) FROM field WHERE id = ?`, field.ID())
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrFieldAlreadyExists
		}

		query := `
			INSERT INTO field (id, meta_info, name, description, creation_date, last_modification_date, data)
			VALUES (:id, :meta_info, :name, :description, :creation_date, :last_modification_date, :data)
		`
		res, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("insert field: %w", err)
		}
		return requireOneRow(res, "insert field")
	})
}

func (r *fieldRepo) Update(ctx context.Context, field *domain.Field) error {
	row, err := newFieldRow(field)
	if err != nil {
		return err
	}

	return r.gw.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE field
			SET meta_info = :meta_info, name = :name, description = :description,
				creation_date = :creation_date, last_modification_date = :last_modification_date, data = :data
			WHERE id = :id
		`
		res, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return fmt.Errorf("update field: %w", err)
		}
		return rowsOrNotFound(res, domain.ErrFieldNotFound)
	})
}

func (r *fieldRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.gw.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM field WHERE id = ?`, id.String())
		if err != nil {
			return fmt.Errorf("delete field: %w", err)
		}
		return rowsOrNotFound(res, domain.ErrFieldNotFound)
	})
}

// ============================================================================
// Helpers
// ============================================================================

func countByID(ctx context.Context, q sqlx.QueryerContext, query string, id uuid.UUID) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, query, id.String()); err != nil {
		return false, fmt.Errorf("count by id: %w", err)
	}
	return count > 0, nil
}

func requireOneRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n != 1 {
		return fmt.Errorf("%s: expected 1 affected row, got %d", op, n)
	}
	return nil
}

func rowsOrNotFound(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
