// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
)

// Config 啟動時載入一次的應用設定，之後以指標傳入各元件，
// 請求處理期間不再讀取環境變數。
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`

	// JWT 簽章設定
	SecretKey                string `env:"SECRET_KEY,required"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`

	// Redis（健康檢查用）
	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	Port int `env:"PORT" envDefault:"8080"`
}

// AccessTokenTTL 回傳設定的存取令牌有效期間。
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// Addr 回傳 echo 監聽位址。
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load 解析環境變數並驗證簽章演算法必須為 HMAC 家族。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.AccessTokenExpireMinutes <= 0 {
		return nil, fmt.Errorf("無效的 ACCESS_TOKEN_EXPIRE_MINUTES: %d", cfg.AccessTokenExpireMinutes)
	}
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("不支援的 ALGORITHM: %q", cfg.Algorithm)
	}
	return cfg, nil
}
