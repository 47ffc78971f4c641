package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/DerrickJaguar/rent/internal/domain/models"
	"github.com/DerrickJaguar/rent/internal/infrastructure/config"
	"github.com/DerrickJaguar/rent/internal/infrastructure/storage"
)

// CredentialVerifier 把凭证校验做成可替换的接口，
// 换成真实认证后端时不需要动核心代码。
type CredentialVerifier interface {
	Verify(email, password string) (*models.User, error)
}

// InterfaceAuthService 定义认证服务接口
type InterfaceAuthService interface {
	Login(email, password string) (*LoginResult, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// AuthClaims 定义JWT令牌的声明结构
type AuthClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService 提供认证相关服务
type AuthService struct {
	secretKey string
	issuer    string
	verifier  CredentialVerifier
	nowFn     func() time.Time
}

// NewAuthService 创建一个新的认证服务，凭证校验走注入的verifier
func NewAuthService(cfg *config.Config, verifier CredentialVerifier, now func() time.Time) InterfaceAuthService {
	return &AuthService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "rent-console",
		verifier:  verifier,
		nowFn:     now,
	}
}

// 1. Login 校验凭证并签发令牌
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.verifier.Verify(email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
	}, nil
}

// 2. GenerateToken 生成JWT令牌
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	// 令牌有效期为24小时
	now := s.nowFn()
	expirationTime := now.Add(24 * time.Hour)

	claims := &AuthClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 3. ValidateToken 验证JWT令牌
func (s *AuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// StoreCredentialVerifier 用存储中的账户做bcrypt校验
type StoreCredentialVerifier struct {
	Store *storage.Store
}

// NewStoreCredentialVerifier 创建基于存储的凭证校验器
func NewStoreCredentialVerifier(store *storage.Store) CredentialVerifier {
	return &StoreCredentialVerifier{Store: store}
}

// Verify 校验邮箱与密码
func (v *StoreCredentialVerifier) Verify(email, password string) (*models.User, error) {
	user, err := v.Store.GetUser()
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || user.Email != email {
		return nil, ErrUserNotFound
	}
	if !user.CheckPassword(password) {
		return nil, ErrPasswordIncorrect
	}
	return user, nil
}
