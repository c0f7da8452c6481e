package server

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/api"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/config"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/collab"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/dataset"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/gazetteer"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/store"
)

// Server Server HTTP dashboard
type Server struct {
	router  *gin.Engine
	store   *store.Store
	manager *dataset.Manager
	api     *api.Handler
}

// NewServer Merakit seluruh dependensi dan membuat server
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "inovasi.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("gagal inisialisasi basis data: %v", err)
	}

	// Gazetteer hilang bukan alasan gagal start; identifikasi daerah
	// jatuh ke kolom Daerah sumber.
	gazetteerPath := config.ResolveDataPath(cfg, cfg.Data.GazetteerPath)
	entries, err := gazetteer.LoadFile(gazetteerPath)
	if err != nil {
		log.Printf("gazetteer tidak dimuat (%v); identifikasi daerah dari koordinat nonaktif", err)
	}

	manager := dataset.NewManager(sqliteStore, entries, cfg.Pipeline.RegionThreshold)
	if err := manager.Restore(); err != nil {
		log.Printf("gagal memulihkan snapshot dataset: %v", err)
	}
	if manager.Current() == nil {
		defaultPath := config.ResolveDataPath(cfg, cfg.Data.DefaultDataset)
		if _, err := manager.LoadFile(defaultPath, ""); err != nil {
			log.Printf("dataset bawaan belum tersedia: %v", err)
		}
	}

	var collabClient *collab.Client
	if cfg.AI.APIKey != "" {
		collabClient, err = collab.NewClient(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Printf("klien Gemini tidak aktif: %v", err)
		}
	}

	apiHandler := api.NewHandler(manager, cfg, collabClient)

	s := &Server{
		router:  gin.Default(),
		store:   sqliteStore,
		manager: manager,
		api:     apiHandler,
	}

	s.setupRoutes(devMode)

	return s
}

func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// Mode pengembangan: alihkan ke dev server frontend
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name": "Dashboard Analisa Inovasi Jatim",
			"api":  "/api",
		})
	})
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "rute tidak ditemukan"})
	})
}

// Run Menjalankan server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close Menutup sumber daya (basis data)
func (s *Server) Close() error {
	return s.store.Close()
}

// Manager Akses manajer dataset (untuk test)
func (s *Server) Manager() *dataset.Manager {
	return s.manager
}
