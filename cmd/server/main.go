package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"sscs-bulk-scan/internal/audit"
	"sscs-bulk-scan/internal/callback"
	callbackhandler "sscs-bulk-scan/internal/callback/handler"
	callbackmetrics "sscs-bulk-scan/internal/callback/metrics"
	"sscs-bulk-scan/internal/casecreation"
	creationmetrics "sscs-bulk-scan/internal/casecreation/metrics"
	"sscs-bulk-scan/internal/casedata"
	"sscs-bulk-scan/internal/ccd"
	"sscs-bulk-scan/internal/platform/config"
	"sscs-bulk-scan/internal/platform/httpserver"
	"sscs-bulk-scan/internal/platform/logger"
	platformredis "sscs-bulk-scan/internal/platform/redis"
	"sscs-bulk-scan/internal/refdata"
	"sscs-bulk-scan/internal/transform"
	httptransport "sscs-bulk-scan/internal/transport/http"
	"sscs-bulk-scan/internal/validate"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable, continuing without postcode cache", "error", err)
	}
	var cache *platformredis.Client
	if redisClient != nil {
		cache = redisClient
		defer redisClient.Close()
	}

	offices := refdata.NewOfficeLookup(refdata.DefaultOfficeTable())
	venues := refdata.NewVenueLookup(refdata.DefaultVenueTable())
	var postcodes refdata.PostcodeValidator
	if cache != nil {
		postcodes = refdata.NewAPIPostcodeValidator(cfg.PostcodeAPIURL, cache.Client, log)
	} else {
		postcodes = refdata.NewAPIPostcodeValidator(cfg.PostcodeAPIURL, nil, log)
	}

	evaluator := casedata.NewEvaluator(cfg.CaseEvent, cfg.ReadyToListOffices, offices, venues, postcodes, log)

	auditStore := audit.NewMemoryStore()
	auditPub := audit.NewPublisher(cfg.AuditBuffer, log)
	auditWorker := audit.NewWorker(auditStore, auditPub.Inbox())

	store := ccd.New(cfg.CCDBaseURL, cfg.CaseTypeID, log)
	creation := casecreation.NewService(store, cfg.CaseEvent, log, creationmetrics.New(), auditPub)

	callbacks := callback.NewService(
		transform.New(evaluator, log),
		validate.New(postcodes, log),
		evaluator,
		creation,
		cfg.CaseEvent,
		log,
	)

	handler := callbackhandler.New(callbacks, log, callbackmetrics.New())
	router := httptransport.NewRouter(handler)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting sscs-bulk-scan", "addr", cfg.Addr)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		err := auditWorker.Run(groupCtx)
		if err == context.Canceled {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
	}
}
