// @title Contract Server API
// @version 1.0
// @description API генерации договоров фотоальбомов. Разбор брифа заявки, подбор комплекта по прайсу, заполнение шаблона .docx, реестр договоров.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http

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

	"contractserver/database"
	"contractserver/internal/config"
	"contractserver/pricing"
	"contractserver/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск сервера договоров...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Каталог сохранения договоров должен существовать до первой генерации
	if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
		log.Printf("Предупреждение: не удалось создать каталог договоров %s: %v", cfg.SaveDir, err)
	}

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	serviceDB, err := database.NewServiceDBWithConfig(cfg.ServiceDatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Ошибка создания сервисной базы данных: %v", err)
	}
	defer serviceDB.Close()
	log.Printf("Используется сервисная база данных: %s", cfg.ServiceDatabasePath)

	catalog, err := pricing.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки прайса: %v", err)
	}
	if cfg.CatalogPath != "" {
		log.Printf("Используется прайс из файла: %s", cfg.CatalogPath)
	} else {
		log.Println("Используется встроенный прайс")
	}

	router := server.NewRouter(cfg, serviceDB, catalog)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Паника при запуске сервера: %v", r)
			}
		}()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Ошибка запуска сервера: %v", err)
		}
	}()

	// Обработка сигналов для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("═══════════════════════════════════════════════════════")
		log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("✗ Ошибка при остановке сервера: %v", err)
		} else {
			log.Println("✓ Сервер успешно остановлен")
		}

		cancel()
	}()

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Сервер успешно запущен на порту %s", cfg.Port)
	log.Printf("✓ API доступно: http://localhost:%s", cfg.Port)
	log.Printf("✓ Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Printf("✓ Каталог договоров: %s", cfg.SaveDir)
	log.Println("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	<-ctx.Done()
}
