// README: Entry point; loads config, seeds demo data, wires services, starts HTTP server and the location simulator.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lodhi/internal/ai"
	"lodhi/internal/config"
	httptransport "lodhi/internal/http"
	"lodhi/internal/infra"
	"lodhi/internal/logging"
	"lodhi/internal/modules/identity"
	"lodhi/internal/modules/location"
	"lodhi/internal/modules/logistics"
	"lodhi/internal/modules/market"
	"lodhi/internal/modules/platform"
	"lodhi/internal/modules/requests"
	"lodhi/internal/modules/rewards"
	"lodhi/internal/seed"
	"lodhi/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	issuer, err := infra.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("token issuer init", zap.Error(err))
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	mirror := location.NewMirror(redisClient)

	data := seed.Stores()

	identitySvc := identity.NewService(data.Users)
	rewardsSvc := rewards.NewService(data.Users, data.Requests.CompletedCount, data.Market.DeliveredCount)

	var suggester requests.Suggester
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiSuggester(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		suggester = gemini
	} else {
		logger.Warn("LODHI_GEMINI_API_KEY not set, complaint suggestions disabled")
	}

	requestsSvc := requests.NewService(data.Requests, data.Users, rewardsSvc, suggester, logger)
	marketSvc := market.NewService(data.Market, data.Users, rewardsSvc, logger)
	logisticsSvc := logistics.NewService(data.Logistics, data.Users, data.Market)
	platformSvc := platform.NewService(data.Platform, data.Users)

	appliers := map[location.Kind]location.Applier{
		location.KindServiceRequest: requestsSvc.SetLiveLocation,
		location.KindOrder:          marketSvc.SetLiveDeliveryLocation,
		location.KindShopDelivery: func(id types.ID, pos types.Point) error {
			return logisticsSvc.SetLiveLocation(logistics.KindShopDelivery, id, pos)
		},
		location.KindPackersMovers: func(id types.ID, pos types.Point) error {
			return logisticsSvc.SetLiveLocation(logistics.KindPackersMovers, id, pos)
		},
	}
	locationSvc := location.NewService(appliers, mirror)

	feeds := map[location.Kind]location.Feed{
		location.KindServiceRequest: data.Requests,
		location.KindOrder:          data.Market,
		location.KindShopDelivery:   data.Logistics.ShopDeliveries,
		location.KindPackersMovers:  data.Logistics.Moves,
	}
	simulator := location.NewSimulator(cfg.Simulator, logger, mirror, feeds)
	go simulator.Run(ctx)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Users:     identitySvc,
		Requests:  requestsSvc,
		Market:    marketSvc,
		Logistics: logisticsSvc,
		Platform:  platformSvc,
		Location:  locationSvc,
		Issuer:    issuer,
		Log:       logger,
	})

	server := httptransport.NewServer(cfg.HTTP.Addr, handler)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
