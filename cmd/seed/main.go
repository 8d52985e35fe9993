// seed puebla el catálogo desde un CSV y crea el usuario administrador inicial.
//
// Formato del CSV (con o sin encabezado): name,description,price,category
// Algunos exports de hojas de cálculo llegan en ISO-8859-1; -charset los
// transcodifica a UTF-8 antes de parsear.
//
// Uso:
//
//	go run ./cmd/seed -csv productos.csv [-charset iso-8859-1] \
//	    -admin-email admin@example.com -admin-password <password>
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "", "ruta al CSV de productos (opcional)")
	charset := flag.String("charset", "utf-8", "utf-8 | iso-8859-1")
	adminUser := flag.String("admin-username", "admin", "username del administrador inicial")
	adminEmail := flag.String("admin-email", "", "email del administrador inicial")
	adminPassword := flag.String("admin-password", "", "password del administrador inicial")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *adminEmail != "" && *adminPassword != "" {
		seedAdmin(ctx, log, postgres.NewUserRepository(pool), *adminUser, *adminEmail, *adminPassword)
	}
	if *csvPath != "" {
		seedProducts(ctx, log, postgres.NewProductRepository(pool), *csvPath, *charset)
	}
}

func seedAdmin(ctx context.Context, log *logger.Logger, repo *postgres.UserRepo, username, email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password del admin")
	}
	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, user); err != nil {
		if err == domain.ErrEmailAlreadyExists {
			log.Info().Str("email", email).Msg("el admin ya existe, se omite")
			return
		}
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Int64("id", user.ID).Str("email", email).Msg("admin creado")
}

func seedProducts(ctx context.Context, log *logger.Logger, repo *postgres.ProductRepo, path, charset string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("csv", path).Msg("abrir CSV")
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.EqualFold(charset, "iso-8859-1") || strings.EqualFold(charset, "iso8859-1") {
		reader = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		log.Fatal().Err(err).Msg("parsear CSV")
	}

	inserted := 0
	for i, rec := range records {
		if len(rec) < 4 {
			log.Warn().Int("fila", i+1).Msg("fila incompleta, se omite")
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			if i == 0 {
				continue // encabezado
			}
			log.Warn().Int("fila", i+1).Str("price", rec[2]).Msg("precio inválido, se omite")
			continue
		}
		now := time.Now()
		product := &entity.Product{
			Name:        strings.TrimSpace(rec[0]),
			Description: strings.TrimSpace(rec[1]),
			Price:       price,
			Category:    strings.TrimSpace(rec[3]),
			Status:      entity.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repo.Create(ctx, product); err != nil {
			log.Fatal().Err(err).Int("fila", i+1).Msg("insertar producto")
		}
		inserted++
	}
	log.Info().Int("productos", inserted).Str("csv", path).Msg("catálogo sembrado")
}
