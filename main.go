package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/guidewire/core-auth-examples/config"
	"github.com/guidewire/core-auth-examples/pkg/api"
	"github.com/guidewire/core-auth-examples/pkg/api/handlers"
	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/guidewire/core-auth-examples/pkg/utils"
)

func main() {
	log := utils.GetLogger()
	initConfig(log)
	if err := initServer(log); err != nil {
		log.Fatal("server stopped", err)
		os.Exit(1)
	}
}

func initConfig(log *utils.LoggerService) {
	if _, err := config.LoadConfig(); err != nil {
		log.Fatal("error loading config", err)
		os.Exit(1)
	}
	if err := log.SetLevel(config.GetLog().Level); err != nil {
		log.Warn("unknown log level " + config.GetLog().Level + ", keeping info")
	}
}

func initServer(log *utils.LoggerService) error {
	serverConfig := config.GetServer()
	coreAuthConfig := config.GetCoreAuth()

	gin.SetMode(gin.ReleaseMode)
	coreAuth := client.New(
		client.WithBaseURL(coreAuthConfig.BaseURL),
		client.WithTimeout(coreAuthConfig.Timeout),
		client.WithUserAgent("core-auth-examples/auth-flow"),
	)

	server := &api.Server{
		Handler: handlers.NewHandler(coreAuth, serverConfig.PublicURL, log),
		Log:     log,
	}
	if _, err := server.InitGin(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.InfoFields("auth-flow example listening", utils.Fields{
		"url":       serverConfig.PublicURL,
		"core_auth": coreAuthConfig.BaseURL,
	})
	log.Info("Visit /login to start the flow.")

	return server.Start(ctx, serverConfig.Addr())
}
