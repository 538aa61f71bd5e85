package config

import "time"

// JWTConfig содержит настройки для JWT токенов и хэширования паролей.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"JWT_SECRET_KEY" env-default:"Xk0x0WkIhgpkFQ0t7nHPbcMJqiG4XM/XDdqyBbwQZZ9v5l2dTi5qYrOSGJxkV1pN"`
	TokenTTL   string `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"30m"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"JWT_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена сессии.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return duration
}
