package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/barra-pro/internal/domain"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
	"github.com/tu-usuario/barra-pro/internal/domain/repository"
)

var _ repository.StockRuleRepository = (*StockRuleRepo)(nil)

// StockRuleRepo implementación de StockRuleRepository sobre PostgreSQL.
type StockRuleRepo struct {
	q Querier
}

// NewStockRuleRepository construye el adaptador de reglas de reposición.
func NewStockRuleRepository(q Querier) *StockRuleRepo {
	return &StockRuleRepo{q: q}
}

const stockRuleColumns = `id, ingredient_id, ingredient_name, min_stock, reorder_quantity, active, created_at, updated_at`

// Create persiste una regla. Una regla por ingrediente (constraint único).
func (r *StockRuleRepo) Create(ctx context.Context, rule *entity.StockRule) error {
	query := `
		INSERT INTO stock_rules (` + stockRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		rule.ID, rule.IngredientID, rule.IngredientName, rule.MinStock,
		rule.ReorderQuantity, rule.Active, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock rule: %w", err)
	}
	return nil
}

// Update actualiza una regla existente.
func (r *StockRuleRepo) Update(ctx context.Context, rule *entity.StockRule) error {
	query := `
		UPDATE stock_rules
		SET ingredient_name = $2, min_stock = $3, reorder_quantity = $4, active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		rule.ID, rule.IngredientName, rule.MinStock, rule.ReorderQuantity, rule.Active, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una regla por ID. Devuelve (nil, nil) si no existe.
func (r *StockRuleRepo) GetByID(ctx context.Context, id string) (*entity.StockRule, error) {
	query := `SELECT ` + stockRuleColumns + ` FROM stock_rules WHERE id = $1`
	var rule entity.StockRule
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rule.ID, &rule.IngredientID, &rule.IngredientName, &rule.MinStock,
		&rule.ReorderQuantity, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock rule by id: %w", err)
	}
	return &rule, nil
}

// List devuelve todas las reglas (activas e inactivas).
func (r *StockRuleRepo) List(ctx context.Context) ([]entity.StockRule, error) {
	query := `SELECT ` + stockRuleColumns + ` FROM stock_rules ORDER BY ingredient_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock rules: %w", err)
	}
	defer rows.Close()

	var list []entity.StockRule
	for rows.Next() {
		var rule entity.StockRule
		if err := rows.Scan(
			&rule.ID, &rule.IngredientID, &rule.IngredientName, &rule.MinStock,
			&rule.ReorderQuantity, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock rule: %w", err)
		}
		list = append(list, rule)
	}
	return list, rows.Err()
}
