// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	authModel "lingkunganku_backend/internals/features/users/auth/model"
	userModel "lingkunganku_backend/internals/features/users/user/model"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// IssueAccessToken membuat JWT access token untuk user.
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET belum diset")
	}
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken membuat refresh token + simpan hash-nya di DB.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", fmt.Errorf("JWT_REFRESH_SECRET belum diset")
	}
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(refreshTokenTTL).Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	rt := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(signed),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// ValidateRefreshToken memverifikasi JWT refresh + keberadaan hash di DB.
func ValidateRefreshToken(db *gorm.DB, refresh string) (uuid.UUID, error) {
	tok, err := jwt.Parse(refresh, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("refresh token invalid")
	}

	var count int64
	if err := db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", computeRefreshHash(refresh)).
		Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, fmt.Errorf("refresh token tidak dikenal")
	}
	return userID, nil
}

// RevokeRefreshToken menghapus refresh token lama (rotasi / logout).
func RevokeRefreshToken(db *gorm.DB, refresh string) error {
	return db.Where("token_hash = ?", computeRefreshHash(refresh)).
		Delete(&authModel.RefreshToken{}).Error
}

// BlacklistAccessToken memasukkan access token ke blacklist (logout).
func BlacklistAccessToken(db *gorm.DB, tokenString string, expiredAt time.Time) error {
	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}

func computeRefreshHash(token string) []byte {
	sum := sha256.Sum256([]byte(token + configs.JWTRefreshSecret))
	return sum[:]
}
