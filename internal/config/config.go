package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string
	// StorageDriver selects the MediaStore implementation.
	StorageDriver string
	// DataFile is the catalog path for the file driver.
	DataFile string
	// DatabaseURL is the DSN for the postgres driver.
	DatabaseURL string
	// Seed inserts the sample catalog into an empty store at startup.
	Seed bool
}

// Load reads configuration from the environment, falling back to
// defaults. Keys map to env vars verbatim: PORT, STORAGE_DRIVER,
// DATA_FILE, DATABASE_URL, SEED.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("storage_driver", DriverFile)
	v.SetDefault("data_file", "media.json")
	v.SetDefault("database_url", "")
	v.SetDefault("seed", false)

	cfg := Config{
		Port:          v.GetString("port"),
		StorageDriver: v.GetString("storage_driver"),
		DataFile:      v.GetString("data_file"),
		DatabaseURL:   v.GetString("database_url"),
		Seed:          v.GetBool("seed"),
	}

	switch cfg.StorageDriver {
	case DriverFile:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("storage driver %q requires DATABASE_URL", cfg.StorageDriver)
		}
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}
