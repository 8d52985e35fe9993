// migrate aplica el esquema embebido (schema.sql) sobre la base configurada.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

//go:embed schema.sql
var schema string

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	connCfg, err := pgx.ParseConfig(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("parse DSN")
	}
	// El esquema trae varias sentencias separadas por ';': requiere el
	// protocolo simple, el extendido solo acepta una sentencia por Exec.
	connCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema aplicado")
}
