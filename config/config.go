package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	Solana       Solana
	Payment      Payment
	Scoring      Scoring
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "postgres" or "sqlite" (sqlite is dev/test only)
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file path, ":memory:" allowed
}

type Solana struct {
	RPCURL         string
	TimeoutSeconds int
}

// Payment holds everything the verifier needs to judge a transaction.
// Tolerance absorbs network fee rounding; any treasury delta below
// Tolerance*PriceLamports is declined.
type Payment struct {
	TreasuryAddress string
	PriceLamports   int64
	Tolerance       float64
}

// Scoring is shared by the grading engine and the reward calculation so the
// two cannot disagree on thresholds.
type Scoring struct {
	QuestionsPerTest  int
	PointsPerQuestion int
	PassThreshold     int
	SeniorThreshold   int
	MiddleThreshold   int
	RewardSenior      float64
	RewardMiddle      float64
	RewardJunior      float64
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PATH", "skillchain.db")
	viper.SetDefault("SOLANA_RPC_URL", "https://api.devnet.solana.com")
	viper.SetDefault("SOLANA_RPC_TIMEOUT", 15)
	viper.SetDefault("TEST_PRICE_LAMPORTS", int64(1_000_000_000)) // 1 SOL
	viper.SetDefault("PAYMENT_TOLERANCE", 0.95)
	viper.SetDefault("QUESTIONS_PER_TEST", 10)
	viper.SetDefault("POINTS_PER_QUESTION", 10)
	viper.SetDefault("PASS_THRESHOLD", 70)
	viper.SetDefault("SENIOR_THRESHOLD", 90)
	viper.SetDefault("MIDDLE_THRESHOLD", 80)
	viper.SetDefault("REWARD_SENIOR", 0.15)
	viper.SetDefault("REWARD_MIDDLE", 0.12)
	viper.SetDefault("REWARD_JUNIOR", 0.10)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	config.Solana.RPCURL = viper.GetString("SOLANA_RPC_URL")
	config.Solana.TimeoutSeconds = viper.GetInt("SOLANA_RPC_TIMEOUT")

	config.Payment.TreasuryAddress = viper.GetString("TREASURY_ADDRESS")
	config.Payment.PriceLamports = viper.GetInt64("TEST_PRICE_LAMPORTS")
	config.Payment.Tolerance = viper.GetFloat64("PAYMENT_TOLERANCE")

	config.Scoring.QuestionsPerTest = viper.GetInt("QUESTIONS_PER_TEST")
	config.Scoring.PointsPerQuestion = viper.GetInt("POINTS_PER_QUESTION")
	config.Scoring.PassThreshold = viper.GetInt("PASS_THRESHOLD")
	config.Scoring.SeniorThreshold = viper.GetInt("SENIOR_THRESHOLD")
	config.Scoring.MiddleThreshold = viper.GetInt("MIDDLE_THRESHOLD")
	config.Scoring.RewardSenior = viper.GetFloat64("REWARD_SENIOR")
	config.Scoring.RewardMiddle = viper.GetFloat64("REWARD_MIDDLE")
	config.Scoring.RewardJunior = viper.GetFloat64("REWARD_JUNIOR")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("rpc_url", config.Solana.RPCURL).
		Int64("price_lamports", config.Payment.PriceLamports).
		Msg("Config loaded")
	return &config, nil
}
