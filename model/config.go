package model

// EnvConfig holds sensitive environment settings loaded once at startup.
// Everything in here is immutable after config.LoadConfigs returns.
type EnvConfig struct {
	Port            string   `json:"port"`
	Environment     string   `json:"environment"`
	MongoUri        string   `json:"mongoUri"`
	RedisUrl        string   `json:"redisUrl"`
	TwoFactorApiKey string   `json:"twoFactorApiKey"`
	JwtSecret       string   `json:"jwtSecret"`
	FrontendUrls    []string `json:"frontendUrls"`
	RateLimiter     bool     `json:"rateLimiter"`
}
