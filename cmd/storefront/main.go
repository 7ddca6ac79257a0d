package main

import (
	"context"
	"time"

	"github.com/slts2025/subhalaxmiteleservices/config"
	"github.com/slts2025/subhalaxmiteleservices/internal/app"
	"github.com/slts2025/subhalaxmiteleservices/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	storefront.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}
