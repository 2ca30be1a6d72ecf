// File: internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"personal-blog/internal/cache"
	"personal-blog/internal/database"
	"personal-blog/internal/model"
	"personal-blog/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// SessionCookieName 瀏覽器端保存 session token 的 cookie
	SessionCookieName = "blog_session"
	// SessionTTL session 有效期限
	SessionTTL = 7 * 24 * time.Hour

	sessionKeyPrefix = "session:"
)

// SessionClaims 定義 session cookie 內 JWT 的負載
type SessionClaims struct {
	UserID  int    `json:"uid"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	newSessionID    = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
	getUserByID     = store.GetUserByID
)

func sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// IssueSessionToken 依使用者與 session id 產生簽章後的 JWT
func IssueSessionToken(user model.User, sid string, ttl time.Duration) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := SessionClaims{
		UserID:  user.ID,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifySessionToken 驗證並解析 session JWT
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// StartSession 在 Redis 登記新的 session 並回傳 cookie 用的 token
func StartSession(ctx context.Context, c cache.Cache, user model.User, ttl time.Duration) (string, error) {
	sid := newSessionID()
	token, err := IssueSessionToken(user, sid, ttl)
	if err != nil {
		return "", err
	}
	if err := c.Set(ctx, sessionKey(sid), user.ID, ttl).Err(); err != nil {
		return "", fmt.Errorf("StartSession: %w", err)
	}
	return token, nil
}

// LoadSession 驗證 token、確認 session 仍存在於 Redis (未登出)，
// 並重新讀取使用者；帳號已被刪除 (ban) 或停用時視為過期並清掉 session
func LoadSession(ctx context.Context, c cache.Cache, db database.DB, token string) (*SessionClaims, error) {
	claims, err := VerifySessionToken(token)
	if err != nil {
		return nil, err
	}
	key := sessionKey(claims.ID)
	val, err := c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("LoadSession: %w", err)
	}
	if val != strconv.Itoa(claims.UserID) {
		return nil, ErrSessionExpired
	}

	user, err := getUserByID(ctx, db, claims.UserID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !user.Active) {
		if err := c.Del(ctx, key).Err(); err != nil {
			return nil, fmt.Errorf("LoadSession: %w", err)
		}
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("LoadSession: %w", err)
	}
	claims.Name = user.Name
	claims.IsAdmin = user.IsAdmin
	return claims, nil
}

// EndSession 刪除 Redis 內的 session；token 無效時視為已登出
func EndSession(ctx context.Context, c cache.Cache, token string) error {
	claims, err := VerifySessionToken(token)
	if err != nil {
		return nil
	}
	if err := c.Del(ctx, sessionKey(claims.ID)).Err(); err != nil {
		return fmt.Errorf("EndSession: %w", err)
	}
	return nil
}
