package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const costCenterColumns = `cost_center_id, workplace_id, code, name, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCostCenterRepository struct {
	BaseRepository
}

func newPgxCostCenterRepository(pool *pgxpool.Pool) portsrepo.CostCenterRepositoryFacade {
	return &PgxCostCenterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

func scanCostCenter(row pgx.Row) (models.CostCenter, error) {
	var m models.CostCenter
	err := row.Scan(
		&m.CostCenterID,
		&m.WorkplaceID,
		&m.Code,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCostCenterRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	m := mapping.ToModelCostCenter(costCenter)
	query := `INSERT INTO cost_centers (` + costCenterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	_, err := r.Pool.Exec(ctx, query,
		m.CostCenterID, m.WorkplaceID, m.Code, m.Name, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: cost center with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save cost center %s: %w", m.CostCenterID, err)
	}
	return nil
}

func (r *PgxCostCenterRepository) FindCostCentersByIDs(ctx context.Context, workplaceID string, ids []string) (map[string]domain.CostCenter, error) {
	if len(ids) == 0 {
		return map[string]domain.CostCenter{}, nil
	}
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE workplace_id = $1 AND cost_center_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, workplaceID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centers by IDs: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.CostCenter, len(ids))
	for rows.Next() {
		m, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost center row: %w", err)
		}
		found[m.CostCenterID] = mapping.ToDomainCostCenter(m)
	}
	return found, rows.Err()
}

func (r *PgxCostCenterRepository) ListCostCenters(ctx context.Context, workplaceID string) ([]domain.CostCenter, error) {
	query := `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE workplace_id = $1 ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers for workplace %s: %w", workplaceID, err)
	}
	defer rows.Close()

	out := make([]domain.CostCenter, 0)
	for rows.Next() {
		m, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost center row: %w", err)
		}
		out = append(out, mapping.ToDomainCostCenter(m))
	}
	return out, rows.Err()
}
