package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-service/config"
	"github.com/oksasatya/go-auth-service/internal/infrastructure/security"
	"github.com/oksasatya/go-auth-service/pkg/helpers"
)

// App-level container sharing constructed singletons across packages so
// the router can auto-wire modules.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	tokenCodec  *security.TokenCodec
	hasher      *security.BcryptHasher
	rabbitPub   *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger { return logger }
func SetPGPool(p *pgxpool.Pool) { pgPool = p }
func GetPGPool() *pgxpool.Pool { return pgPool }
func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client { return redisClient }

func SetTokenCodec(c *security.TokenCodec) { tokenCodec = c }
func GetTokenCodec() *security.TokenCodec { return tokenCodec }
func SetHasher(h *security.BcryptHasher) { hasher = h }
func GetHasher() *security.BcryptHasher { return hasher }

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher { return rabbitPub }
