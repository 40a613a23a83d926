package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skateshop-backend/internal/domains/design"
)

const designColumns = `
        id, deck_uid, deck_url, wheel_uid, wheel_url,
        griptape_uid, griptape_url, truck_color, bolt_color,
        customer_email, notes, preview_url, status, created_at`

type designRepository struct {
	pool *pgxpool.Pool
}

func NewDesignRepository(pool *pgxpool.Pool) design.Repository {
	return &designRepository{pool: pool}
}

func (r *designRepository) Create(ctx context.Context, d *design.Design) error {
	query := `
        INSERT INTO designs (
            deck_uid, deck_url, wheel_uid, wheel_url,
            griptape_uid, griptape_url, truck_color, bolt_color,
            customer_email, notes, preview_url, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at
    `

	err := r.pool.QueryRow(
		ctx, query,
		d.DeckUID,
		d.DeckURL,
		d.WheelUID,
		d.WheelURL,
		d.GriptapeUID,
		d.GriptapeURL,
		d.TruckColor,
		d.BoltColor,
		d.CustomerEmail,
		d.Notes,
		d.PreviewURL,
		d.Status,
	).Scan(&d.ID, &d.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create design: %w", err)
	}

	return nil
}

func (r *designRepository) List(ctx context.Context, limit int) ([]design.Design, error) {
	query := `
        SELECT` + designColumns + `
        FROM designs
        ORDER BY created_at DESC
        LIMIT $1
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer rows.Close()

	designs := []design.Design{}
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate designs: %w", err)
	}

	return designs, nil
}

func (r *designRepository) GetByID(ctx context.Context, id uuid.UUID) (*design.Design, error) {
	query := `
        SELECT` + designColumns + `
        FROM designs
        WHERE id = $1
    `

	row := r.pool.QueryRow(ctx, query, id)
	d, err := scanDesign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, design.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

// UpdatePartial build SET clause động từ các field non-nil
func (r *designRepository) UpdatePartial(ctx context.Context, id uuid.UUID, req design.UpdateDesignRequest) (*design.Design, error) {
	sets := []string{}
	args := []interface{}{id}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}
	if req.CustomerEmail != nil {
		addSet("customer_email", *req.CustomerEmail)
	}
	if req.PreviewURL != nil {
		addSet("preview_url", *req.PreviewURL)
	}

	if len(sets) == 0 {
		// Không có gì để update → trả row hiện tại
		return r.GetByID(ctx, id)
	}

	query := `
        UPDATE designs
        SET ` + strings.Join(sets, ", ") + `
        WHERE id = $1
        RETURNING` + designColumns + `
    `

	row := r.pool.QueryRow(ctx, query, args...)
	d, err := scanDesign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, design.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (r *designRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete design: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return design.ErrNotFound
	}

	return nil
}

func scanDesign(row pgx.Row) (*design.Design, error) {
	d := &design.Design{}
	err := row.Scan(
		&d.ID,
		&d.DeckUID,
		&d.DeckURL,
		&d.WheelUID,
		&d.WheelURL,
		&d.GriptapeUID,
		&d.GriptapeURL,
		&d.TruckColor,
		&d.BoltColor,
		&d.CustomerEmail,
		&d.Notes,
		&d.PreviewURL,
		&d.Status,
		&d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pgx.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan design: %w", err)
	}
	return d, nil
}
