package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		DataDir        string `json:"data_dir"`
		SaltFile       string `json:"salt_file"`
		KDFIterations  int    `json:"kdf_iterations"`
		BcryptCost     int    `json:"bcrypt_cost"`
		PasswordLength int    `json:"password_length"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

// parseJSON reads the config file at path and maps it onto a
// [StructuredConfig]. The JSON shape mirrors the config hierarchy but keeps
// its own type so file layout and env/flag layout can drift independently.
func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open json config: %w", err)
	}
	defer f.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(f).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DataDir:        jsonCfg.App.DataDir,
			SaltFile:       jsonCfg.App.SaltFile,
			KDFIterations:  jsonCfg.App.KDFIterations,
			BcryptCost:     jsonCfg.App.BcryptCost,
			PasswordLength: jsonCfg.App.PasswordLength,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
