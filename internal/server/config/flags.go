package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/vineauth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":5000")
//	-x string   route prefix (e.g. "/api/auth")
//	-d string   PostgreSQL DSN
//	-s string   auth token secret key
//	-t int      token validity in minutes, 0 = no expiry
//	-k int      bcrypt cost
//	-m string   SMTP host
//	-o int      SMTP port
//	-u string   SMTP user
//	-p string   SMTP password
//	-f string   sender address for reset mails
//	-r string   reset recipient override
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// layers (-c/-config) do not make parsing fail.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-x", "-d", "-s", "-t", "-k", "-m", "-o", "-u", "-p", "-f", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.RoutePrefix, "x", config.RoutePrefix, "route prefix")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes, 0 = unbounded)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.MailHost, "m", config.MailHost, "SMTP host")
	fs.IntVar(&config.MailPort, "o", config.MailPort, "SMTP port")
	fs.StringVar(&config.MailUser, "u", config.MailUser, "SMTP user")
	fs.StringVar(&config.MailPassword, "p", config.MailPassword, "SMTP password")
	fs.StringVar(&config.MailFrom, "f", config.MailFrom, "reset mail sender")
	fs.StringVar(&config.ResetRecipientOverride, "r", config.ResetRecipientOverride, "reset mail recipient override")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		}
	})
}
