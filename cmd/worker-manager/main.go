// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	awsclients "nexo-workers/internal/common/aws"
	"nexo-workers/internal/common/camunda"
	"nexo-workers/internal/common/config"
	"nexo-workers/internal/common/database"
	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/common/observability"
	"nexo-workers/internal/matching"
	"nexo-workers/internal/roster"
	"nexo-workers/internal/runstore"
	"nexo-workers/pkg/registry"

	cc "nexo-workers/internal/workers/matching/calculate-compatibility"
	cst "nexo-workers/internal/workers/matching/compute-statistics"
	cs "nexo-workers/internal/workers/matching/create-schedule"
	es "nexo-workers/internal/workers/matching/export-schedule"
	gm "nexo-workers/internal/workers/matching/generate-matches"
	ss "nexo-workers/internal/workers/notification/send-schedule"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	reg, err := registry.LoadRegistry("configs/registry.json")
	if err != nil {
		zapLog.Warn("activity registry not loaded, input validation disabled", zap.Error(err))
		reg = nil
	} else {
		zapLog.Info("activity registry loaded",
			zap.String("version", reg.Version),
			zap.Int("activities", len(reg.Activities)),
		)
	}

	activityFor := func(taskType string) *registry.Activity {
		if reg == nil {
			return nil
		}
		if act, ok := reg.Find(taskType); ok {
			return act
		}
		zapLog.Warn("no registry entry for task type", zap.String("taskType", taskType))
		return nil
	}

	// --- Init Zeebe Client with retry ---
	zeebeClient, err := camunda.Connect(cfg.Camunda, 10, zapLog)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		// Test the connection
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Shared Stores ---
	rosterStore := roster.NewStore(pg.DB, redis.Client, 10*time.Minute, log)
	runs := runstore.New(redis.Client, 24*time.Hour)

	weights := matching.WeightsFromMap(cfg.Matching.Weights)
	quota := cfg.Matching.MeetingQuota

	manager := camunda.NewManager(zeebeClient, zapLog)

	// --- Register Matching Workers ---
	if wcfg := cfg.Workers[cc.TaskType]; wcfg.Enabled {
		handlerCfg := cc.LoadConfig()
		handlerCfg.Timeout = workerTimeout(wcfg, handlerCfg.Timeout)
		handlerCfg.Weights = weights
		handler := cc.NewHandler(handlerCfg, rosterStore, redis.Client, log).WithActivity(activityFor(cc.TaskType))
		manager.Register(cc.TaskType, wcfg.MaxJobsActive, handlerCfg.Timeout, handler.Handle)
	}

	if wcfg := cfg.Workers[gm.TaskType]; wcfg.Enabled {
		handlerCfg := gm.LoadConfig()
		handlerCfg.Timeout = workerTimeout(wcfg, handlerCfg.Timeout)
		handlerCfg.Weights = weights
		if quota > 0 {
			handlerCfg.MeetingQuota = quota
		}
		handler := gm.NewHandler(handlerCfg, rosterStore, runs, log).WithActivity(activityFor(gm.TaskType))
		manager.Register(gm.TaskType, wcfg.MaxJobsActive, handlerCfg.Timeout, handler.Handle)
	}

	if wcfg := cfg.Workers[cs.TaskType]; wcfg.Enabled {
		handlerCfg := cs.LoadConfig()
		handlerCfg.Timeout = workerTimeout(wcfg, handlerCfg.Timeout)
		if cfg.Database.Elasticsearch.MeetingIndex != "" {
			handlerCfg.MeetingIndex = cfg.Database.Elasticsearch.MeetingIndex
		}
		handler := cs.NewHandler(handlerCfg, rosterStore, runs, esClient, log).WithActivity(activityFor(cs.TaskType))
		manager.Register(cs.TaskType, wcfg.MaxJobsActive, handlerCfg.Timeout, handler.Handle)
	}

	if wcfg := cfg.Workers[cst.TaskType]; wcfg.Enabled {
		handlerCfg := cst.LoadConfig()
		handlerCfg.Timeout = workerTimeout(wcfg, handlerCfg.Timeout)
		if quota > 0 {
			handlerCfg.MeetingQuota = quota
		}
		handler := cst.NewHandler(handlerCfg, runs, log).WithActivity(activityFor(cst.TaskType))
		manager.Register(cst.TaskType, wcfg.MaxJobsActive, handlerCfg.Timeout, handler.Handle)
	}

	if wcfg := cfg.Workers[es.TaskType]; wcfg.Enabled {
		handlerCfg := es.LoadConfig()
		handlerCfg.Timeout = workerTimeout(wcfg, handlerCfg.Timeout)
		handler := es.NewHandler(handlerCfg, rosterStore, runs, log).WithActivity(activityFor(es.TaskType))
		manager.Register(es.TaskType, wcfg.MaxJobsActive, handlerCfg.Timeout, handler.Handle)
	}

	// --- Register Notification Worker ---
	if wcfg := cfg.Workers[ss.TaskType]; wcfg.Enabled {
		sesClient, err := awsclients.NewSESClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		snsClient, err := awsclients.NewSNSClient(ctx, cfg.Notifications.AWSRegion)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}

		handlerCfg := ss.LoadConfig()
		handlerCfg.Timeout = workerTimeout(wcfg, handlerCfg.Timeout)
		handlerCfg.SenderEmail = cfg.Notifications.SenderEmail
		handlerCfg.SNSTopicARN = cfg.Notifications.SNSTopicARN
		handlerCfg.EmailEnabled = cfg.Notifications.EmailEnabled
		handler := ss.NewHandler(handlerCfg, rosterStore, runs, sesClient, snsClient, log).WithActivity(activityFor(ss.TaskType))
		manager.Register(ss.TaskType, wcfg.MaxJobsActive, handlerCfg.Timeout, handler.Handle)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	manager.Close()
	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func workerTimeout(wcfg config.WorkerConfig, fallback time.Duration) time.Duration {
	if wcfg.Timeout > 0 {
		return time.Duration(wcfg.Timeout) * time.Millisecond
	}
	return fallback
}
