package utils

import (
  "fmt"

  "golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
  if plain == "" {
    return "", fmt.Errorf("password must not be empty")
  }
  hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
  if err != nil {
    return "", fmt.Errorf("hash password: %w", err)
  }
  return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
  return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
