package redis

import (
  "context"
  "encoding/json"
  "fmt"
  "os"
  "strings"
  "time"

  "github.com/google/uuid"
  goredis "github.com/redis/go-redis/v9"

  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
)

// PublicationCache is a cache-aside store for the publication detail read
// model. It is optional: a nil cache is a no-op, so the services work the
// same with redis absent.
type PublicationCache interface {
  GetDetail(ctx context.Context, publicationID uuid.UUID) (*dto.PublicationDetail, bool)
  SetDetail(ctx context.Context, detail *dto.PublicationDetail)
  InvalidateDetail(ctx context.Context, publicationID uuid.UUID)
  Close() error
}

type publicationCache struct {
  log *logger.Logger
  rdb *goredis.Client
  ttl time.Duration
}

func NewPublicationCache(log *logger.Logger) (PublicationCache, error) {
  if log == nil {
    return nil, fmt.Errorf("logger required")
  }

  addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
  if addr == "" {
    return nil, fmt.Errorf("missing REDIS_ADDR")
  }
  ttl := 60 * time.Second
  if raw := strings.TrimSpace(os.Getenv("REDIS_PUBLICATION_TTL_SECONDS")); raw != "" {
    if parsed, err := time.ParseDuration(raw + "s"); err == nil {
      ttl = parsed
    }
  }

  rdb := goredis.NewClient(&goredis.Options{
    Addr:        addr,
    DialTimeout: 5 * time.Second,
  })

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := rdb.Ping(ctx).Err(); err != nil {
    _ = rdb.Close()
    return nil, fmt.Errorf("redis ping: %w", err)
  }

  return &publicationCache{
    log: log.With("service", "PublicationCache"),
    rdb: rdb,
    ttl: ttl,
  }, nil
}

func detailKey(publicationID uuid.UUID) string {
  return "publication:detail:" + publicationID.String()
}

func (c *publicationCache) GetDetail(ctx context.Context, publicationID uuid.UUID) (*dto.PublicationDetail, bool) {
  if c == nil || c.rdb == nil {
    return nil, false
  }
  raw, err := c.rdb.Get(ctx, detailKey(publicationID)).Bytes()
  if err != nil {
    if err != goredis.Nil {
      c.log.Warn("publication cache read failed", "error", err, "publication_id", publicationID)
    }
    return nil, false
  }
  var detail dto.PublicationDetail
  if err := json.Unmarshal(raw, &detail); err != nil {
    c.log.Warn("publication cache payload corrupt, dropping", "error", err, "publication_id", publicationID)
    _ = c.rdb.Del(ctx, detailKey(publicationID)).Err()
    return nil, false
  }
  return &detail, true
}

func (c *publicationCache) SetDetail(ctx context.Context, detail *dto.PublicationDetail) {
  if c == nil || c.rdb == nil || detail == nil {
    return
  }
  raw, err := json.Marshal(detail)
  if err != nil {
    c.log.Warn("publication cache marshal failed", "error", err, "publication_id", detail.ID)
    return
  }
  if err := c.rdb.Set(ctx, detailKey(detail.ID), raw, c.ttl).Err(); err != nil {
    c.log.Warn("publication cache write failed", "error", err, "publication_id", detail.ID)
  }
}

func (c *publicationCache) InvalidateDetail(ctx context.Context, publicationID uuid.UUID) {
  if c == nil || c.rdb == nil {
    return
  }
  if err := c.rdb.Del(ctx, detailKey(publicationID)).Err(); err != nil {
    c.log.Warn("publication cache invalidation failed", "error", err, "publication_id", publicationID)
  }
}

func (c *publicationCache) Close() error {
  if c == nil || c.rdb == nil {
    return nil
  }
  return c.rdb.Close()
}
