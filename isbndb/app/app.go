package app

import (
	"context"
	stdLog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/isbndb-service/isbndb/config"
	"github.com/Astemirdum/isbndb-service/isbndb/internal/handler"
	"github.com/Astemirdum/isbndb-service/isbndb/internal/server"
	"github.com/Astemirdum/isbndb-service/isbndb/internal/service"
	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
	"github.com/Astemirdum/isbndb-service/pkg/kafka"
	"github.com/Astemirdum/isbndb-service/pkg/logger"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log, err := logger.NewLogger(cfg.Log, "isbndb")
	if err != nil {
		stdLog.Fatal("logger.NewLogger: ", err)
	}

	if cfg.ISBNdb.DefaultAccessKey != "" {
		isbndb.SetDefaultAccessKey(cfg.ISBNdb.DefaultAccessKey)
	}
	lib := service.NewLibrary(
		isbndb.WithBaseURL(cfg.ISBNdb.BaseURL),
		isbndb.WithHTTPClient(&http.Client{Timeout: cfg.ISBNdb.Timeout}),
		isbndb.WithRateLimit(cfg.ISBNdb.RPS),
		isbndb.WithPageSize(cfg.ISBNdb.PageSize),
		isbndb.WithLogger(log),
	)
	svc := service.NewService(lib, service.NewAgentConfig(cfg.ISBNdb.AccessKey), log)

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
	}
	h := handler.New(svc, log, producer, cfg.Kafka.LookupTopic)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Warn("producer.Close", zap.Error(err))
		}
	}
	log.Info("Graceful shutdown finished")
	_ = log.Sync()
}
