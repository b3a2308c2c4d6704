package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	helper "coursehub_backend/internals/helpers"
)

// ErrNotFound is returned when the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// ConflictError reports a unique-field collision. Field names the first
// colliding field so the client gets something machine-readable.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// UniqueField maps a unique database column to its payload field name.
type UniqueField struct {
	Column string
	Name   string
}

// UniqueValue is a candidate value for one unique field of a record being
// created or updated.
type UniqueValue struct {
	Field UniqueField
	Value string
}

// Schema declares, per entity, what the generic contract needs to know:
// the id column, the unique-field set, the searchable-field allow-list,
// the default ordering, and the relations resolved on reads.
type Schema struct {
	Entity       string
	IDColumn     string
	UniqueFields []UniqueField
	SearchFields []string
	DefaultSort  string
	Preloads     []string
}

// Resource implements the uniform list/get/create/update/delete contract
// over one GORM model. One instance per entity.
type Resource[T any] struct {
	db     *gorm.DB
	schema Schema
}

func NewResource[T any](db *gorm.DB, schema Schema) *Resource[T] {
	return &Resource[T]{db: db, schema: schema}
}

func (r *Resource[T]) Schema() Schema { return r.schema }

// =============================
// List
// =============================
// List returns one page of records plus the total matching count. A search
// term matches case-insensitively, substring semantics, OR-combined across
// the schema's searchable columns.
func (r *Resource[T]) List(ctx context.Context, paging helper.Paging, search string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	q := r.db.WithContext(ctx).Model(new(T)).Scopes(scopes...)

	if s := strings.TrimSpace(search); s != "" && len(r.schema.SearchFields) > 0 {
		conds := make([]string, 0, len(r.schema.SearchFields))
		args := make([]any, 0, len(r.schema.SearchFields))
		for _, col := range r.schema.SearchFields {
			conds = append(conds, col+" ILIKE ?")
			args = append(args, "%"+s+"%")
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, p := range r.schema.Preloads {
		q = q.Preload(p)
	}
	if r.schema.DefaultSort != "" {
		q = q.Order(r.schema.DefaultSort)
	}

	var rows []T
	if err := q.Offset(paging.Offset()).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// =============================
// Get by ID
// =============================
func (r *Resource[T]) GetByID(ctx context.Context, id string) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, p := range r.schema.Preloads {
		q = q.Preload(p)
	}

	var row T
	if err := q.First(&row, r.schema.IDColumn+" = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// =============================
// Create
// =============================
// Create inserts after a cosmetic conflict pre-check. The unique index at
// the storage layer is authoritative: a duplicate that slips between the
// check and the insert still comes back as a ConflictError.
func (r *Resource[T]) Create(ctx context.Context, row *T, uniques []UniqueValue) error {
	if conflict, err := r.findConflict(ctx, uniques, ""); err != nil {
		return err
	} else if conflict != nil {
		return conflict
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if conflict := r.translateDuplicate(err); conflict != nil {
			return conflict
		}
		return err
	}
	return nil
}

// =============================
// Update by ID
// =============================
// Update applies a partial update. The conflict check runs only when a
// unique field is being touched, and excludes the target record itself.
func (r *Resource[T]) Update(ctx context.Context, id string, updates map[string]any, uniques []UniqueValue) (*T, error) {
	var existing T
	if err := r.db.WithContext(ctx).First(&existing, r.schema.IDColumn+" = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(uniques) > 0 {
		if conflict, err := r.findConflict(ctx, uniques, id); err != nil {
			return nil, err
		} else if conflict != nil {
			return nil, conflict
		}
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).Model(new(T)).
			Where(r.schema.IDColumn+" = ?", id).
			Updates(updates).Error
		if err != nil {
			if conflict := r.translateDuplicate(err); conflict != nil {
				return nil, conflict
			}
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

// =============================
// Delete by ID
// =============================
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(new(T), r.schema.IDColumn+" = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// findConflict checks each supplied unique value one column at a time so
// the resulting error can name which field collided. excludeID != "" skips
// the record being updated.
func (r *Resource[T]) findConflict(ctx context.Context, uniques []UniqueValue, excludeID string) (*ConflictError, error) {
	for _, u := range uniques {
		if strings.TrimSpace(u.Value) == "" {
			continue
		}
		q := r.db.WithContext(ctx).Model(new(T)).Where(u.Field.Column+" = ?", u.Value)
		if excludeID != "" {
			q = q.Where(r.schema.IDColumn+" <> ?", excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return r.conflict(u.Field.Name), nil
		}
	}
	return nil, nil
}

// IsDuplicateKey reports whether err is a unique-constraint violation,
// whether it arrives as a raw pgconn error or already translated by GORM.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translateDuplicate maps a storage-level unique violation to the same
// ConflictError the pre-check produces.
func (r *Resource[T]) translateDuplicate(err error) *ConflictError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		for _, f := range r.schema.UniqueFields {
			if strings.Contains(pgErr.ConstraintName, f.Column) {
				return r.conflict(f.Name)
			}
		}
		return r.conflict("")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.conflict("")
	}
	return nil
}

func (r *Resource[T]) conflict(field string) *ConflictError {
	names := make([]string, 0, len(r.schema.UniqueFields))
	for _, f := range r.schema.UniqueFields {
		names = append(names, f.Name)
	}
	return &ConflictError{
		Field:   field,
		Message: fmt.Sprintf("%s with this %s already exists", r.schema.Entity, strings.Join(names, " or ")),
	}
}
