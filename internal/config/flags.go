package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-data-dir application data directory
//	-salt-file key-derivation salt file path
//	-d database DSN
//	-kdf-iterations PBKDF2 iteration count
//	-bcrypt-cost bcrypt work factor for password hashing
//	-password-length generated password length
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var dataDir string
	var saltFile string
	var databaseDSN string
	var kdfIterations int
	var bcryptCost int
	var passwordLength int
	var jsonConfigPath string

	flag.StringVar(&dataDir, "data-dir", "", "Application data directory")
	flag.StringVar(&saltFile, "salt-file", "", "Key-derivation salt file path")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.IntVar(&passwordLength, "password-length", 0, "Generated password length")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DataDir:        dataDir,
			SaltFile:       saltFile,
			KDFIterations:  kdfIterations,
			BcryptCost:     bcryptCost,
			PasswordLength: passwordLength,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
