package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/isbndb-service/isbndb/app"
	"github.com/Astemirdum/isbndb-service/isbndb/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithReadTimeout(10*time.Second),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
