package main

import (
	"context"

	"github.com/hrops/onboarding-admin/internal/bootstrap"
	"github.com/hrops/onboarding-admin/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	logger.InfoLog(ctx, "Servidor escuchando en el puerto configurado")
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped", err)
	}
}
