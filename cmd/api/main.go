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

	"Travel_Mate/internal/config"
	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"
	"Travel_Mate/internal/repository/redis"
	"Travel_Mate/internal/router"
	"Travel_Mate/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := mysql.InitDB(cfg.Database.DSN); err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Schedule{},
		&model.ScheduleDetail{},
		&model.Post{},
		&model.Report{},
		&model.ReportOutbox{},
		&model.Block{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redis.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 举报事件经 outbox 异步投递到 kafka，没配 broker 就落日志
	sender := service.Sender(service.LogSender)
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.Brokers[0] != "" {
		producer := pkg.NewModerationProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	go service.NewOutboxRelayer(sender).Run(ctx)

	tokens := pkg.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.InitRouter(cfg, tokens),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
