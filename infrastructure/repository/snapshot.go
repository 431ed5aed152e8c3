package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

const (
	salesSnapshotTable = "sales_snapshot ss"

	// DefaultSnapshotID identifica o snapshot único da organização
	DefaultSnapshotID = "default"
)

// SnapshotRepository guarda o snapshot serializado. O formato do payload é do domínio;
// o repositório só armazena os bytes.
type SnapshotRepository interface {
	// Load retorna nil, nil quando não existe snapshot persistido
	Load() ([]byte, error)
	Save(payload []byte) error
}

type snapshotRepository struct {
	conn postgres.Queryer
	id   string
}

func NewSnapshotRepository(conn postgres.Queryer) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
		id:   DefaultSnapshotID,
	}
}

func (r *snapshotRepository) Load() ([]byte, error) {
	query, args, err := squirrel.
		Select("ss.payload").
		From(salesSnapshotTable).
		Where(squirrel.Eq{"ss.id": r.id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	err = r.conn.QueryRow(query, args...).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return payload, nil
}

func (r *snapshotRepository) Save(payload []byte) error {
	revision, err := utils.NewRevision()
	if err != nil {
		return fmt.Errorf("erro ao gerar revisão do snapshot: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("sales_snapshot").
		Columns("id", "revision", "payload").
		Values(r.id, revision, payload).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				revision = EXCLUDED.revision,
				payload = EXCLUDED.payload,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
