package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/logic"
	"github.com/Silver0524/MatPredict/internal/models"
	"github.com/Silver0524/MatPredict/internal/store"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// IngestQueue defines the interface for the match ingestion worker pool
type IngestQueue interface {
	Enqueue(record models.MatchUpsert) bool
	QueueDepth() int
}

// FeatureSnapshots reads previously cached feature profiles, served when a
// wrestler's live history is gone.
type FeatureSnapshots interface {
	GetFeatures(ctx context.Context, wrestlerID int64, seasonID, weightClassID *int64) (*models.WrestlerFeatures, error)
}

// Catalog is the subset of the store the HTTP layer uses for validation and
// browsing.
type Catalog interface {
	GetWrestler(ctx context.Context, wrestlerID int64) (*models.Wrestler, error)
	ListWrestlers(ctx context.Context, limit, offset int) ([]models.Wrestler, error)
	SearchWrestlers(ctx context.Context, query string) ([]models.Wrestler, error)
	FetchMatches(ctx context.Context, wrestlerID int64, f store.MatchFilter) ([]models.Match, error)
	FetchSeason(ctx context.Context, seasonID int64) (*models.Season, error)
	FetchCurrentSeason(ctx context.Context) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	ListWeightClasses(ctx context.Context) ([]models.WeightClass, error)
	GetWeightClass(ctx context.Context, weightClassID int64) (*models.WeightClass, error)
}

type Config struct {
	WorkerPool IngestQueue
	Postgres   *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	// Services
	Catalog    Catalog
	Features   logic.FeatureService
	Prediction logic.PredictionService
	Snapshots  FeatureSnapshots
}

type Handler struct {
	pool       IngestQueue
	pg         *pgxpool.Pool
	redis      *redis.Client
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	catalog    Catalog
	features   logic.FeatureService
	prediction logic.PredictionService
	snapshots  FeatureSnapshots
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:       cfg.WorkerPool,
		pg:         cfg.Postgres,
		redis:      cfg.Redis,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		catalog:    cfg.Catalog,
		features:   cfg.Features,
		prediction: cfg.Prediction,
		snapshots:  cfg.Snapshots,
	}
}
