package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig Konfigurasi aplikasi
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Pipeline PipelineConfig `toml:"pipeline"`
	AI       AIConfig       `toml:"ai"`
}

// ServerConfig Konfigurasi server HTTP
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig Konfigurasi sumber data
type DataConfig struct {
	DataDir        string `toml:"data_dir"`
	DefaultDataset string `toml:"default_dataset"`
	GazetteerPath  string `toml:"gazetteer_path"`
}

// PipelineConfig Parameter pipeline filter & derivasi
type PipelineConfig struct {
	RegionThreshold  float64 `toml:"region_threshold"`
	DefaultGanttDays int     `toml:"default_gantt_days"`
	MapMarkerLimit   int     `toml:"map_marker_limit"`
	OrgChartTopN     int     `toml:"org_chart_top_n"`
}

// AIConfig Konfigurasi pemanggilan Gemini untuk saran kolaborasi
type AIConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// DefaultConfig Konfigurasi bawaan
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20271,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:        "data",
			DefaultDataset: "data_inovasi.xlsx",
			GazetteerPath:  "map_jatim.csv",
		},
		Pipeline: PipelineConfig{
			RegionThreshold:  0.01,
			DefaultGanttDays: 30,
			MapMarkerLimit:   600,
			OrgChartTopN:     30,
		},
		AI: AIConfig{
			APIKey: "",
			Model:  "gemini-2.5-flash",
		},
	}
}

// GetExeDir Direktori tempat berkas eksekusi berada
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig Memuat konfigurasi dari config.toml di direktori eksekusi
// Berkas tidak ada -> pakai konfigurasi bawaan, bukan error
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides Variabel lingkungan menimpa nilai berkas (untuk E2E / lokal)
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("INOVASI_GEMINI_API_KEY"); v != "" {
		config.AI.APIKey = v
	}
	if config.AI.APIKey == "" {
		if v := os.Getenv("GEMINI_API_KEY"); v != "" {
			config.AI.APIKey = v
		}
	}
	if v := os.Getenv("INOVASI_DEFAULT_DATASET"); v != "" {
		config.Data.DefaultDataset = v
	}
	if v := os.Getenv("INOVASI_GAZETTEER"); v != "" {
		config.Data.GazetteerPath = v
	}
}

// SaveConfig Menyimpan konfigurasi ke config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir Memastikan direktori data beserta subdirektorinya ada
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}

// ResolveDataPath Jalur berkas relatif terhadap direktori data
func ResolveDataPath(config *AppConfig, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, filename)
}
