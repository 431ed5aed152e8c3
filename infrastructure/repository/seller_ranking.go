// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	sellerRankingTable = "seller_ranking sr"
)

type SellerRankingRepository interface {
	// GetRanking retorna nil, nil quando o período ainda não foi sincronizado
	GetRanking(year int, month domain.Month) (*domain.SellerRankingResponse, error)
	SaveOrUpdateSellerRanking(rankings []*domain.SellerRankingItem) error
}

type sellerRankingRepository struct {
	conn postgres.Queryer
}

func NewSellerRankingRepository(conn postgres.Queryer) SellerRankingRepository {
	return &sellerRankingRepository{
		conn: conn,
	}
}

func (r *sellerRankingRepository) GetRanking(year int, month domain.Month) (*domain.SellerRankingResponse, error) {
	queryBuilder := squirrel.
		Select(
			"sr.id",
			"sr.year",
			"sr.month",
			"sr.seller",
			"sr.seller_name",
			"sr.realized",
			"sr.position",
			"sr.position_change",
			"sr.previous_position",
			"sr.created_at",
			"sr.updated_at",
		).
		From(sellerRankingTable).
		Where(squirrel.Eq{"sr.year": year, "sr.month": month.Key()}).
		OrderBy("sr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.SellerRankingItem, 0, domain.SellerCount)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := r.scanSellerRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(rankings) == 0 {
		return nil, nil
	}

	return &domain.SellerRankingResponse{
		Year:       year,
		Month:      month,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *sellerRankingRepository) SaveOrUpdateSellerRanking(rankings []*domain.SellerRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("seller_ranking").
		Columns(
			"year",
			"month",
			"seller",
			"seller_name",
			"realized",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.Year,
			ranking.Month.Key(),
			ranking.Seller.Key(),
			ranking.SellerName,
			ranking.Realized,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	// upsert por período e vendedor
	query = query.Suffix(`
		ON CONFLICT (year, month, seller) DO UPDATE SET
			seller_name = EXCLUDED.seller_name,
			realized = EXCLUDED.realized,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *sellerRankingRepository) scanSellerRankingItem(rows *sql.Rows) (*domain.SellerRankingItem, error) {
	item := &domain.SellerRankingItem{}
	var monthKey, sellerKey string

	err := rows.Scan(
		&item.ID,
		&item.Year,
		&monthKey,
		&sellerKey,
		&item.SellerName,
		&item.Realized,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	month, ok := domain.ParseMonth(monthKey)
	if !ok {
		return nil, fmt.Errorf("mês inválido no ranking: %q", monthKey)
	}
	seller, ok := domain.ParseSeller(sellerKey)
	if !ok {
		return nil, fmt.Errorf("vendedor inválido no ranking: %q", sellerKey)
	}

	item.Month = month
	item.Seller = seller

	return item, nil
}
