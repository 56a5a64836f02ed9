package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrRefreshExpired = errors.New("refresh expired")
	ErrRefreshInvalid = errors.New("refresh invalid")
)

// Claims access/refresh 共用同一套声明和密钥，只有有效期不同
type Claims struct {
	UserID uint64 `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenManager 密钥和有效期由配置注入
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *TokenManager) sign(userID uint64, email, role, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   subject,
		},
	})
	return token.SignedString(m.secret)
}

func (m *TokenManager) MakeAccess(userID uint64, email, role string) (string, error) {
	return m.sign(userID, email, role, "access", m.accessTTL)
}

func (m *TokenManager) MakeRefresh(userID uint64, email, role string) (string, error) {
	return m.sign(userID, email, role, "refresh", m.refreshTTL)
}

func (m *TokenManager) GeneratePair(userID uint64, email, role string) (*Pair, error) {
	access, err := m.MakeAccess(userID, email, role)
	if err != nil {
		return nil, err
	}
	refresh, err := m.MakeRefresh(userID, email, role)
	if err != nil {
		return nil, err
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

// ParseAccess 解析 access
func (m *TokenManager) ParseAccess(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, "access", ErrTokenExpired, ErrTokenInvalid)
}

// ParseRefresh 解析 refresh，错误种类区分开便于中间件分支
func (m *TokenManager) ParseRefresh(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, "refresh", ErrRefreshExpired, ErrRefreshInvalid)
}

func (m *TokenManager) parse(tokenStr, subject string, expired, invalid error) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, expired
		}
		return nil, invalid
	}
	if !token.Valid {
		return nil, invalid
	}
	claims := token.Claims.(*Claims)
	// 两种令牌共用一个密钥，靠 sub 区分，refresh 不能当 access 用
	if claims.Subject != subject {
		return nil, invalid
	}
	return claims, nil
}
