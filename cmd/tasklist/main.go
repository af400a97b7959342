package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project_manager/internal/logger"
	"project_manager/internal/server"
	"project_manager/internal/tasklist"

	"github.com/spf13/viper"
)

// The standalone task list keeps everything in memory; a restart starts over
// with the seeded sample task.
func main() {
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	store := tasklist.NewStore()
	handler := tasklist.NewHandler(store, log)

	srv := &server.Server{}
	go func() {
		port := viper.GetString("tasklist.port")
		if port == "" {
			port = "8081"
		}
		router := handler.InitRoutes(viper.GetString("cors.origin"))
		if err := srv.Run(port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

func loadConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetDefault("log.level", logger.InfoLevel)
	return viper.ReadInConfig()
}
