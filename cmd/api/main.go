package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/zennara-clinics/booking-api/internal/config"
	dbpkg "github.com/zennara-clinics/booking-api/internal/db"
	"github.com/zennara-clinics/booking-api/internal/infra/slotlock"
	"github.com/zennara-clinics/booking-api/internal/middleware"
	"github.com/zennara-clinics/booking-api/internal/routes"
	"github.com/zennara-clinics/booking-api/internal/scheduler"
	"github.com/zennara-clinics/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.Configure(cfg.ClinicTimezone)

	db := dbpkg.NewDB(cfg)
	lock := slotlock.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	expireUC := routes.RegisterRoutes(r, db, cfg, lock)

	sched := scheduler.New(expireUC)
	sched.Start()
	defer sched.Stop()

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := r.Run(cfg.Addr()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Printf("received signal %v, shutting down", s)
}
