package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/vineauth/internal/flagx"
	"github.com/dmitrijs2005/vineauth/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration file. Durations
// accept Go duration strings ("10s") or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP       string         `json:"endpoint_addr_http"`
	RoutePrefix            string         `json:"route_prefix"`
	DatabaseDSN            string         `json:"database_dsn"`
	SecretKey              string         `json:"secret_key"`
	TokenValidityDuration  timex.Duration `json:"token_validity_duration"`
	BcryptCost             int            `json:"bcrypt_cost"`
	MailHost               string         `json:"mail_host"`
	MailPort               int            `json:"mail_port"`
	MailUser               string         `json:"mail_user"`
	MailPassword           string         `json:"mail_password"`
	MailFrom               string         `json:"mail_from"`
	ResetRecipientOverride string         `json:"reset_recipient_override"`
	ShutdownTimeout        timex.Duration `json:"shutdown_timeout"`
	LogLevel               string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config onto
// config. Only keys present with non-zero values override; with no file
// flag nothing happens. Unreadable files or invalid JSON panic.
func parseJson(config *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlay(&config.RoutePrefix, c.RoutePrefix)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.TokenValidityDuration, c.TokenValidityDuration.Duration)
	overlay(&config.BcryptCost, c.BcryptCost)
	overlay(&config.MailHost, c.MailHost)
	overlay(&config.MailPort, c.MailPort)
	overlay(&config.MailUser, c.MailUser)
	overlay(&config.MailPassword, c.MailPassword)
	overlay(&config.MailFrom, c.MailFrom)
	overlay(&config.ResetRecipientOverride, c.ResetRecipientOverride)
	overlay(&config.ShutdownTimeout, c.ShutdownTimeout.Duration)
	overlay(&config.LogLevel, c.LogLevel)
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
