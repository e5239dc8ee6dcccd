package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	envconfig "github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/perillat/noteshare/auth"
	"github.com/perillat/noteshare/bolt"
	"github.com/perillat/noteshare/jwt"
	"github.com/perillat/noteshare/log"
	"github.com/perillat/noteshare/notes"
)

var (
	// flags
	verbose bool
	env     string

	// configuration
	cfg Configuration

	// logger
	logger log.Logger

	// auth
	tokenEncoder *jwt.EncodeDecoder

	// drivers
	boltDriver *bolt.Driver

	// services
	userService *auth.Service
	noteService *notes.Service
)

type Configuration struct {
	Addr string `toml:"addr" env:"NOTESHARE_ADDR"`
	Auth struct {
		Secret     string `toml:"secret" env:"JWT_ACCESS_KEY"`
		TokenTTL   int    `toml:"token_ttl" env:"NOTESHARE_TOKEN_TTL"`
		BcryptCost int    `toml:"bcrypt_cost" env:"NOTESHARE_BCRYPT_COST"`
	} `toml:"auth"`
	Bolt struct {
		Store string `toml:"store" env:"NOTESHARE_BOLT_STORE"`
	} `toml:"bolt"`
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
}

var RootCmd = cobra.Command{
	Use:   "noteshare",
	Short: "Write notes and share them with other users",
	Long:  "Write notes and share them with other users",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			os.Exit(1)
		}

		if err := toml.Unmarshal(cfgData, &cfg); err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			os.Exit(1)
		}

		// Environment variables take precedence over the file
		if err := envconfig.Parse(&cfg); err != nil {
			fmt.Println("error reading environment:", err)
			os.Exit(1)
		}

		// Create logger
		logger = log.New(env)

		if cfg.Auth.Secret == "" {
			logger.Fatal("no signing secret configured")
		}
		tokenEncoder = jwt.NewEncodeDecoder(
			[]byte(cfg.Auth.Secret),
			time.Duration(cfg.Auth.TokenTTL)*time.Second,
		)

		// Create repositories
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open db:", err)
		}

		userRepository, err := bolt.NewUserRepository(boltDriver)
		if err != nil {
			logger.Fatal("could not create user repository:", err)
		}
		noteRepository, err := bolt.NewNoteRepository(boltDriver)
		if err != nil {
			logger.Fatal("could not create note repository:", err)
		}

		// Create services
		userService = auth.NewService(userRepository, tokenEncoder, cfg.Auth.BcryptCost)
		noteService = notes.NewService(noteRepository, userRepository)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
	},
}
