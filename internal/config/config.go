package config

import (
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string       `yaml:"service_name" env:"SERVICE_NAME"`
	Server      ServerConfig `yaml:"server"`
	DB          DBConfig     `yaml:"db"`
	Redis       RedisConfig  `yaml:"redis"`
	Auth        AuthConfig   `yaml:"auth"`
	Email       EmailConfig  `yaml:"email"`
	Jaeger      JaegerConfig `yaml:"jaeger"`
}

type ServerConfig struct {
	Mode   string `yaml:"mode"   env:"SERVER_MODE"`
	Port   int    `yaml:"port"   env:"SERVER_PORT"`
	Scheme string `yaml:"scheme" env:"SERVER_SCHEME"`
	Domain string `yaml:"domain" env:"SERVER_DOMAIN"`
}

type DBConfig struct {
	Host     string `yaml:"host"     env:"DB_HOST"`
	Port     int    `yaml:"port"     env:"DB_PORT"`
	User     string `yaml:"user"     env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Database string `yaml:"database" env:"DB_DATABASE"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"pass" env:"REDIS_PASS"`
}

type AuthConfig struct {
	JWT    JWTConfig    `yaml:"jwt"`
	Token  TokenConfig  `yaml:"token"`
	Cookie CookieConfig `yaml:"cookie"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret" env:"JWT_SECRET"`
	Issuer    string `yaml:"issuer" env:"JWT_ISSUER"`
	AccessExp string `yaml:"access_exp" env:"JWT_ACCESS_EXPIRY"`
}

// TokenConfig holds per-family expiry windows in suffix
// notation ("30d", "24h", "30m").
type TokenConfig struct {
	RefreshExp string `yaml:"refresh_exp" env:"TOKEN_REFRESH_EXPIRY"`
	VerifyExp  string `yaml:"verify_exp"  env:"TOKEN_VERIFY_EXPIRY"`
	ResetExp   string `yaml:"reset_exp"   env:"TOKEN_RESET_EXPIRY"`
}

type CookieConfig struct {
	Secure   bool   `yaml:"secure"    env:"COOKIE_SECURE"`
	SameSite string `yaml:"same_site" env:"COOKIE_SAME_SITE"`
}

type EmailConfig struct {
	Server string `yaml:"server" env:"EMAIL_SERVER"`
	Port   int    `yaml:"port"   env:"EMAIL_PORT"`
	User   string `yaml:"user"   env:"EMAIL_USER"`
	Pass   string `yaml:"pass"   env:"EMAIL_PASS"`
	Admin  string `yaml:"admin"  env:"EMAIL_ADMIN"`
	AppURL string `yaml:"app_url" env:"APP_URL"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `yaml:"type"`
		Param int    `yaml:"param"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"log_spans"`
		LocalAgentHostPort string `yaml:"local_agent_host_port"`
	} `yaml:"reporter"`
}

// MustLoad reads the yaml config, overlays environment variables
// and fails fast on anything the process cannot run without.
func MustLoad(path string) Config {
	_ = godotenv.Load()

	var conf Config
	bytes, err := os.ReadFile(path)
	if err != nil {
		zap.L().Fatal("failed to read config file", zap.String("path", path), zap.Error(err))
	}

	if err = yaml.Unmarshal(bytes, &conf); err != nil {
		zap.L().Fatal("failed to parse config file", zap.Error(err))
	}

	if err = env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse env", zap.Error(err))
	}

	if conf.Auth.JWT.Secret == "" {
		zap.L().Fatal("jwt secret is not configured")
	}

	return conf
}
