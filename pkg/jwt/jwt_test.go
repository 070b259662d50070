package jwt

import (
	"testing"
	"time"

	apperrors "github.com/xiebiao/booklibrary/pkg/errors"
)

// TestGenerateAndParse 生成后解析，Claims往返一致
func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "reader@example.com", "书虫")
	if err != nil {
		t.Fatalf("生成Token期望成功，实际失败: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Token对不应为空")
	}
	if pair.ExpiresIn != int64((2 * time.Hour).Seconds()) {
		t.Errorf("期望有效期7200秒，实际%d", pair.ExpiresIn)
	}

	claims, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("解析期望成功，实际失败: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "reader@example.com" || claims.Nickname != "书虫" {
		t.Errorf("Claims往返不一致: %+v", claims)
	}
	if claims.Issuer != "booklibrary" {
		t.Errorf("期望签发者booklibrary，实际%s", claims.Issuer)
	}
}

// TestParseToken_Expired 过期Token
func TestParseToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Hour, 7*24*time.Hour) // 生成即过期

	pair, err := m.GenerateToken(42, "reader@example.com", "书虫")
	if err != nil {
		t.Fatalf("生成Token期望成功: %v", err)
	}

	if _, err := m.ParseToken(pair.AccessToken); err != apperrors.ErrTokenExpired {
		t.Errorf("期望ErrTokenExpired，实际%v", err)
	}
}

// TestParseToken_WrongSecret 密钥不匹配
func TestParseToken_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)
	other := NewManager("other-secret", 2*time.Hour, 7*24*time.Hour)

	pair, _ := m.GenerateToken(42, "reader@example.com", "书虫")

	if _, err := other.ParseToken(pair.AccessToken); err != apperrors.ErrInvalidToken {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// TestParseToken_Garbage 非法字符串
func TestParseToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	if _, err := m.ParseToken("not.a.token"); err != apperrors.ErrInvalidToken {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// TestRefreshAccessToken 用Refresh Token换新的Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, _ := m.GenerateToken(42, "reader@example.com", "书虫")

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("刷新期望成功，实际失败: %v", err)
	}

	claims, err := m.ParseToken(newAccess)
	if err != nil {
		t.Fatalf("新Access Token应可解析: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("期望UserID=42，实际%d", claims.UserID)
	}
}

// TestRefreshAccessToken_Expired 过期的Refresh Token不能续签
func TestRefreshAccessToken_Expired(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, -time.Hour)

	pair, _ := m.GenerateToken(42, "reader@example.com", "书虫")

	if _, err := m.RefreshAccessToken(pair.RefreshToken); err != apperrors.ErrTokenExpired {
		t.Errorf("期望ErrTokenExpired，实际%v", err)
	}
}
