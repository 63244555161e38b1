package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv loads dotenvPath into the process environment (variables that are
// already set keep their values) and then copies recognised variables into
// config. A missing dotenv file is not an error; an unreadable one panics.
//
// Recognised variables:
//
//	ADDRESS, ROUTE_PREFIX, DATABASE_DSN, JWT_SECRET, TOKEN_VALIDITY (duration),
//	BCRYPT_COST, MAIL_HOST, MAIL_PORT, EMAIL, PASSWORD, MAIL_FROM,
//	RESET_RECIPIENT, SHUTDOWN_TIMEOUT (duration), LOG_LEVEL
func parseEnv(config *Config, dotenvPath string) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	envString("ADDRESS", &config.EndpointAddrHTTP)
	envString("ROUTE_PREFIX", &config.RoutePrefix)
	envString("DATABASE_DSN", &config.DatabaseDSN)
	envString("JWT_SECRET", &config.SecretKey)
	envDuration("TOKEN_VALIDITY", &config.TokenValidityDuration)
	envInt("BCRYPT_COST", &config.BcryptCost)
	envString("MAIL_HOST", &config.MailHost)
	envInt("MAIL_PORT", &config.MailPort)
	envString("EMAIL", &config.MailUser)
	envString("PASSWORD", &config.MailPassword)
	envString("MAIL_FROM", &config.MailFrom)
	envString("RESET_RECIPIENT", &config.ResetRecipientOverride)
	envDuration("SHUTDOWN_TIMEOUT", &config.ShutdownTimeout)
	envString("LOG_LEVEL", &config.LogLevel)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
