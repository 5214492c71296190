package db

import (
  "fmt"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
  "github.com/feiracoletiva/feira-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "feira_coletiva", log)

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
    TranslateError:                           true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Category{},
    &types.Client{},
    &types.Seller{},
    &types.PickupLocation{},
    &types.Offer{},
    &types.Product{},
    &types.Publication{},
    &types.Participant{},
    &types.Order{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  foreignKeys := []struct {
    name string
    ddl  string
  }{
    {"fk_produtos_id_oferta", `
      ALTER TABLE "produtos"
      ADD CONSTRAINT "fk_produtos_id_oferta"
      FOREIGN KEY ("id_oferta")
      REFERENCES "ofertas"("id")
      ON DELETE CASCADE
    `},
    {"fk_produtos_id_categoria", `
      ALTER TABLE "produtos"
      ADD CONSTRAINT "fk_produtos_id_categoria"
      FOREIGN KEY ("id_categoria")
      REFERENCES "categorias"("id")
    `},
    {"fk_ofertas_id_vendedor", `
      ALTER TABLE "ofertas"
      ADD CONSTRAINT "fk_ofertas_id_vendedor"
      FOREIGN KEY ("id_vendedor")
      REFERENCES "vendedores"("id")
    `},
    {"fk_publicacoes_id_oferta", `
      ALTER TABLE "publicacoes"
      ADD CONSTRAINT "fk_publicacoes_id_oferta"
      FOREIGN KEY ("id_oferta")
      REFERENCES "ofertas"("id")
    `},
    {"fk_publicacoes_id_local_de_retirada", `
      ALTER TABLE "publicacoes"
      ADD CONSTRAINT "fk_publicacoes_id_local_de_retirada"
      FOREIGN KEY ("id_local_de_retirada")
      REFERENCES "locais_de_retirada"("id")
    `},
    {"fk_participantes_id_publicacao", `
      ALTER TABLE "participantes"
      ADD CONSTRAINT "fk_participantes_id_publicacao"
      FOREIGN KEY ("id_publicacao")
      REFERENCES "publicacoes"("id")
      ON DELETE CASCADE
    `},
    {"fk_participantes_id_cliente", `
      ALTER TABLE "participantes"
      ADD CONSTRAINT "fk_participantes_id_cliente"
      FOREIGN KEY ("id_cliente")
      REFERENCES "clientes"("id")
    `},
    {"fk_pedidos_id_participante", `
      ALTER TABLE "pedidos"
      ADD CONSTRAINT "fk_pedidos_id_participante"
      FOREIGN KEY ("id_participante")
      REFERENCES "participantes"("id")
      ON DELETE CASCADE
    `},
    {"fk_pedidos_id_produto", `
      ALTER TABLE "pedidos"
      ADD CONSTRAINT "fk_pedidos_id_produto"
      FOREIGN KEY ("id_produto")
      REFERENCES "produtos"("id")
    `},
  }
  for _, fk := range foreignKeys {
    var count int64
    if err := s.db.Raw(
      `SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?`, fk.name,
    ).Scan(&count).Error; err != nil {
      return fmt.Errorf("Failed to check constraint %s: %w", fk.name, err)
    }
    if count > 0 {
      continue
    }
    if err := s.db.Exec(fk.ddl).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", fk.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
