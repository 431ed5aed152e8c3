// Script de migração: cria as tabelas do snapshot e do ranking de vendedores e, opcionalmente,
// importa um snapshot em JSON. Uso: go run ./infrastructure/migration/script [snapshot.json]
package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/reference"
	"github.com/vfg2006/sales-performance-api/internal/usecases/hydrating"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var migrations = []struct {
	name      string
	statement string
}{
	{
		name: "sales_snapshot",
		statement: `
			CREATE TABLE IF NOT EXISTS sales_snapshot (
				id         VARCHAR(32) PRIMARY KEY,
				revision   VARCHAR(16) NOT NULL,
				payload    JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		name: "seller_ranking",
		statement: `
			CREATE TABLE IF NOT EXISTS seller_ranking (
				id                SERIAL PRIMARY KEY,
				year              INTEGER NOT NULL,
				month             VARCHAR(3) NOT NULL,
				seller            VARCHAR(32) NOT NULL,
				seller_name       VARCHAR(64) NOT NULL,
				realized          NUMERIC(14, 2) NOT NULL DEFAULT 0,
				position          INTEGER NOT NULL,
				position_change   INTEGER NOT NULL DEFAULT 0,
				previous_position INTEGER NOT NULL DEFAULT 0,
				created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createTables(tx *sql.Tx) error {
	for _, m := range migrations {
		logrus.WithField("table", m.name).Info("Criando tabela, se necessário")
		if _, err := tx.Exec(m.statement); err != nil {
			return err
		}
	}
	return nil
}

// addUniqueConstraintToSellerRanking garante a chave do upsert (year, month, seller)
func addUniqueConstraintToSellerRanking(tx *sql.Tx) error {
	var constraintExists bool
	err := tx.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_name = 'seller_ranking'
			AND constraint_type = 'UNIQUE'
			AND constraint_name = 'seller_ranking_period_seller_unique'
		)
	`).Scan(&constraintExists)
	if err != nil {
		return err
	}

	if constraintExists {
		logrus.Info("Constraint UNIQUE já existe na tabela seller_ranking")
		return nil
	}

	_, err = tx.Exec("ALTER TABLE seller_ranking ADD CONSTRAINT seller_ranking_period_seller_unique UNIQUE (year, month, seller)")
	if err != nil {
		return err
	}

	logrus.Info("Constraint UNIQUE adicionada na tabela seller_ranking")
	return nil
}

// importSnapshot lê o arquivo, normaliza pelo mesmo caminho da inicialização da API e grava
func importSnapshot(tx *sql.Tx, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	snapshot, stats := hydrating.Hydrate(raw, reference.TopClients())
	logrus.WithFields(logrus.Fields{
		"file":     path,
		"loaded":   stats.Loaded,
		"defaults": stats.Defaults,
	}).Info("Snapshot lido")

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return repository.NewSnapshotRepository(tx).Save(payload)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createTables(tx); err != nil {
			return err
		}

		if err := addUniqueConstraintToSellerRanking(tx); err != nil {
			return err
		}

		if len(os.Args) > 1 {
			return importSnapshot(tx, os.Args[1])
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na migração, transação revertida")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída")
}
