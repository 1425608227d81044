// Command tienda-token issues a bearer token for one tenant, signed with
// the same JWT_SECRET the server verifies with.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/tienda/pkg/auth"
)

type options struct {
	Secret string        `env:"JWT_SECRET" envDefault:"tienda-dev-secret"`
	TTL    time.Duration `env:"TOKEN_TTL"  envDefault:"720h"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	_ = godotenv.Load()
	opts := options{}
	if err := env.Parse(&opts); err != nil {
		log.Fatal().Err(err).Msg("can't parse environment")
	}

	tenantID := flag.Int("tenant", 0, "tenant id to put into the token")
	flag.StringVar(&opts.Secret, "s", opts.Secret, "signing secret")
	flag.DurationVar(&opts.TTL, "ttl", opts.TTL, "token lifetime")
	flag.Parse()

	if *tenantID <= 0 {
		log.Fatal().Int("tenant", *tenantID).Msg("tenant id must be positive")
	}

	expiresAt := time.Now().Add(opts.TTL)
	token, err := auth.NewJWTService(opts.Secret).GenerateJWT(*tenantID, expiresAt)
	if err != nil {
		log.Fatal().Err(err).Msg("can't sign token")
	}

	log.Info().Int("tenant", *tenantID).Time("expiresAt", expiresAt).Msg("token issued")
	fmt.Println(token)
}
