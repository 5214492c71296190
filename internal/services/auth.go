package services

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/requestdata"
  "github.com/feiracoletiva/feira-backend/internal/types"
  "github.com/feiracoletiva/feira-backend/internal/utils"
)

type RegisterClientInput struct {
  Name     string `json:"name" binding:"required"`
  Email    string `json:"email" binding:"required,email"`
  Phone    string `json:"phone" binding:"required"`
  Password string `json:"password" binding:"required"`
}

type AuthService interface {
  RegisterClient(ctx context.Context, input RegisterClientInput) (*types.Client, error)
  // LoginClient validates credentials and issues a bearer token carrying
  // the client identity.
  LoginClient(ctx context.Context, email, password string) (string, error)
  // SetContextFromToken verifies the token and stores the resolved client
  // identity in the request context.
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
  db           *gorm.DB
  log          *logger.Logger
  clientRepo   repos.ClientRepo
  jwtSecretKey string
  accessTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  clientRepo repos.ClientRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
) AuthService {
  return &authService{
    db:           db,
    log:          baseLog.With("service", "AuthService"),
    clientRepo:   clientRepo,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
  }
}

func (s *authService) RegisterClient(ctx context.Context, input RegisterClientInput) (*types.Client, error) {
  email := strings.ToLower(strings.TrimSpace(input.Email))
  exists, err := s.clientRepo.EmailExists(ctx, nil, email)
  if err != nil {
    s.log.Error("RegisterClient: email check failed", "error", err)
    return nil, err
  }
  if exists {
    return nil, apierr.InvalidInput(fmt.Errorf("email %s is already registered", email))
  }

  hashed, err := utils.HashPassword(input.Password)
  if err != nil {
    return nil, apierr.InvalidInput(err)
  }

  client := &types.Client{
    ID:       uuid.New(),
    Name:     strings.TrimSpace(input.Name),
    Email:    email,
    Phone:    strings.TrimSpace(input.Phone),
    Password: hashed,
  }
  if _, err := s.clientRepo.Create(ctx, nil, []*types.Client{client}); err != nil {
    s.log.Error("RegisterClient: create failed", "error", err)
    return nil, err
  }
  return client, nil
}

func (s *authService) LoginClient(ctx context.Context, email, password string) (string, error) {
  email = strings.ToLower(strings.TrimSpace(email))
  client, err := s.clientRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    s.log.Error("LoginClient: lookup failed", "error", err)
    return "", err
  }
  if client == nil || !utils.CheckPassword(client.Password, password) {
    return "", apierr.Unauthorized(fmt.Errorf("invalid email or password"))
  }

  now := time.Now()
  claims := jwt.MapClaims{
    "sub":   client.ID.String(),
    "email": client.Email,
    "iat":   now.Unix(),
    "exp":   now.Add(s.accessTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(s.jwtSecretKey))
  if err != nil {
    s.log.Error("LoginClient: token signing failed", "error", err)
    return "", err
  }
  return signed, nil
}

func (s *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
    }
    return []byte(s.jwtSecretKey), nil
  })
  if err != nil || !parsed.Valid {
    return ctx, apierr.Unauthorized(fmt.Errorf("invalid token"))
  }
  claims, ok := parsed.Claims.(jwt.MapClaims)
  if !ok {
    return ctx, apierr.Unauthorized(fmt.Errorf("invalid token claims"))
  }
  sub, _ := claims["sub"].(string)
  clientID, err := uuid.Parse(sub)
  if err != nil {
    return ctx, apierr.Unauthorized(fmt.Errorf("invalid subject claim"))
  }
  email, _ := claims["email"].(string)

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    ClientID:    clientID,
    Email:       email,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}
