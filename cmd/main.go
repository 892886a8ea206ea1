package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"employee-api/config"
	"employee-api/internal/app/service"
	"employee-api/internal/delivery/rest"
	"employee-api/internal/delivery/telegram"
	"employee-api/internal/repository/sqlite"
	"employee-api/pkg/workerpool"

	"golang.org/x/sync/errgroup"
)

func main() {
	log.Println("Запуск employee-api...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфига: %v", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе: %v", err)
	}
	defer db.Close()

	employees := service.NewEmployeeService(sqlite.NewSqliteEmployeeRepo(db))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	server := rest.NewServer(cfg.HTTPAddr, rest.NewRouter(rest.NewHandler(employees)))
	g.Go(func() error { return server.Run(gctx) })

	if cfg.BotEnabled() {
		pool := workerpool.NewWorkerPool(cfg.Workers, cfg.QueueSize)
		defer pool.Close()

		bot, err := telegram.NewBot(cfg.TelegramToken)
		if err != nil {
			log.Fatalf("Ошибка запуска бота: %v", err)
		}
		handler := &telegram.Handler{
			Bot:       bot,
			Employees: employees,
			Async:     service.NewAsyncService(pool),
		}
		handler.Register()
		g.Go(func() error { return telegram.Run(gctx, bot) })
	} else {
		log.Println("TELEGRAM_TOKEN не задан, бот отключён")
	}

	if err := g.Wait(); err != nil {
		log.Printf("Остановка с ошибкой: %v", err)
		return
	}
	log.Println("Остановлено")
}
