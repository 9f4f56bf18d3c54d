package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "SALES-backend/docs"
	"SALES-backend/internal/company"
	"SALES-backend/internal/customers"
	"SALES-backend/internal/deliverynote"
	"SALES-backend/internal/platform/auth"
	"SALES-backend/internal/platform/config"
	"SALES-backend/internal/platform/db"
	"SALES-backend/internal/platform/mailer"
	"SALES-backend/internal/products"
)

// @title       SALES backend API
// @version     2.0
// @description 納品書PDF生成と顧客・商品マスタ管理
// @BasePath    /api/v2
func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] mode:%s version:%s", cfg.Mode, cfg.Version)

	// フォントは起動時に一度だけ。失敗したら起動しない
	fonts, err := deliverynote.LoadFonts(deliverynote.FontOptions{
		Path:       cfg.PDF.FontPath,
		Family:     cfg.PDF.FontFamily,
		RequireCJK: cfg.PDF.RequireCJK,
	})
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] font loaded: %s (cjk=%v)", fonts.Source, fonts.HasCJK)

	assembler, err := deliverynote.NewAssembler(cfg.PDF.Assembler, fonts, cfg.PDF.Workers)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	// 未設定なら nil のまま渡す（型付き nil を interface に入れない）
	var sender deliverynote.Sender
	if m := mailer.New(cfg.SMTP); m != nil {
		sender = m
	} else {
		log.Println("[WARN] smtp.host 未設定のためメール送信は無効")
	}

	notes, err := deliverynote.NewService(fonts, assembler, sender)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	companySvc := company.NewService(company.NewStore(cfg.Company.Path))
	if cfg.Company.FillMissing {
		notes.UseCompanySource(companySvc)
		log.Println("[INFO] company_info 省略時は登録済みの自社情報を使用")
	}

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer conn.Close()
	log.Printf("[INFO] connected to DB: %s", cfg.DB.DBName)

	if cfg.Mode == config.ModeRelease {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == config.ModeDev {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Page-Count", "X-Total-Count"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// /api/v2
	api := r.Group("/api/v2")
	protected := api.Group("")
	if cfg.Auth.Enabled {
		authSvc, err := auth.NewService(auth.NewStore(conn), cfg.Auth.JWTSecret)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		auth.RegisterRoutes(api.Group("/auth"), authSvc)
		protected.Use(auth.RequireAuth(authSvc.Secret()))
	} else {
		log.Println("[WARN] auth disabled")
	}

	deliverynote.RegisterRoutes(protected, notes)
	customers.RegisterRoutes(protected, customers.NewService(customers.NewStore(conn)))
	products.RegisterRoutes(protected, products.NewService(products.NewStore(conn)))
	company.RegisterRoutes(protected, companySvc)

	r.NoRoute(spaFallback(os.DirFS("public")))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.Server.TLS {
			certFile := fmt.Sprintf("config/tls/%s/%s", cfg.Mode, cfg.Certificate.Cert)
			keyFile := fmt.Sprintf("config/tls/%s/%s", cfg.Mode, cfg.Certificate.Key)
			log.Printf("[INFO] listening on https://%s", cfg.Server.Addr)
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.Server.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
