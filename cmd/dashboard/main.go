package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/config"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/server"
	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/util"
)

var (
	port    = flag.Int("port", 0, "port server (menimpa config.toml)")
	devMode = flag.Bool("dev", false, "mode pengembangan")
	dataDir = flag.String("dataDir", "", "direktori data (menimpa config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Dashboard Analisa Inovasi Daerah Jatim")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("gagal memuat konfigurasi, memakai bawaan: %v", err)
		cfg = config.DefaultConfig()
	}

	// Argumen baris perintah menimpa konfigurasi
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dataPath, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("gagal membuat direktori data: %v", err)
	} else {
		fmt.Printf("Direktori data: %s\n", dataPath)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Server berjalan di port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("gagal menjalankan server: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Membuka peramban: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Peramban tidak terbuka otomatis, silakan akses: %s\n", url)
		}
	} else {
		fmt.Printf("Mode pengembangan: akses %s\n", url)
	}

	fmt.Println("\nTekan Ctrl+C untuk berhenti...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nMenutup server...")
	if err := srv.Close(); err != nil {
		log.Printf("gagal menutup sumber daya: %v", err)
	}
}
