package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobrank/internal/config"
	"jobrank/internal/database"
	dbpostgres "jobrank/internal/database/postgres"
	"jobrank/internal/domain/ranking"
	"jobrank/internal/embedding"
	"jobrank/internal/infrastructure/cache"
	"jobrank/internal/repository"
	"jobrank/internal/usecase"
	"jobrank/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Model  *ranking.Model
	Ranker *ranking.Ranker

	RankUC     usecase.RankUsecase
	FeedbackUC usecase.FeedbackUsecase
	ModelUC    usecase.ModelUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := c.weightsStore(ctx)
	if err != nil {
		return nil, err
	}

	c.Cache = cache.NewRedis(logger)
	c.Hub = ws.NewHub(logger)

	c.Model = ranking.NewModel(
		ctx, store, logger,
		ranking.WithBatchSize(cfg.Ranking.AdaptBatchSize),
		ranking.WithUpdateHook(c.Hub.NotifyWeightsUpdated),
	)
	c.Ranker = ranking.NewRanker(ranking.NewExtractor(), c.Model)

	similarity := embedding.NewSimilarityService(
		embedding.NewHTTPProvider(cfg.Embedding.BaseURL, logger),
		logger,
	)

	c.RankUC = usecase.NewRankUsecase(c.Ranker, similarity, c.Cache, logger, cfg.Ranking.MaxRankJobs)
	c.FeedbackUC = usecase.NewFeedbackUsecase(c.Model)
	c.ModelUC = usecase.NewModelUsecase(c.Model)

	return c, nil
}

// weightsStore picks the configured persistence port. Postgres requires a
// reachable database at startup; the file store never fails here.
func (c *Container) weightsStore(ctx context.Context) (ranking.WeightsStore, error) {
	if c.Config.Ranking.WeightsStore == "postgres" && c.Config.Database.Enabled() {
		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		return repository.NewPostgresWeightsRepository(db), nil
	}
	return repository.NewFileWeightsRepository(c.Config.Ranking.WeightsFile)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
