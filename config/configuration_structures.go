package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	Local         bool   `yaml:"local"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	PublicBaseURL string `yaml:"public_base_url"`
}

// JWTConfig : секреты и время жизни access/refresh токенов.
// Секреты обязаны различаться, иначе refresh токен пройдет проверку как access.
type JWTConfig struct {
	AccessTokenSecret  string `yaml:"access_token_secret"`
	RefreshTokenSecret string `yaml:"refresh_token_secret"`
	AccessTokenTTL     string `yaml:"access_token_ttl"`
	RefreshTokenTTL    string `yaml:"refresh_token_ttl"`
	Issuer             string `yaml:"issuer"`
}

// TTL : время жизни в секундах
type TTL struct {
	VideoCache int `yaml:"video_cache"`
	Presign    int `yaml:"presign"`
}
