package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/doc-sentry/internal/config"
	"github.com/MKhiriev/doc-sentry/internal/crypto"
	"github.com/MKhiriev/doc-sentry/internal/identity"
	"github.com/MKhiriev/doc-sentry/internal/logger"
	"github.com/MKhiriev/doc-sentry/internal/service"
	"github.com/MKhiriev/doc-sentry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("doc-sentry")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewFileLogger("doc-sentry", cfg.App.DataDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	saltStore := crypto.NewSaltStore(cfg.App.SaltFile, log)
	keys := crypto.NewKeyService(saltStore, cfg.App.KDFIterations)
	cipher := crypto.NewCipherService(keys, encryptionSecret(keys), log)
	credentials := crypto.NewCredentialService(cfg.App.BcryptCost)

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to local database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating local database")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cipher, credentials, log)

	if err = run(ctx, services, cipher, cfg, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// run dispatches the positional command left after flag parsing.
func run(ctx context.Context, services *service.Services, cipher crypto.CipherService, cfg *config.StructuredConfig, args []string) error {
	if len(args) == 0 {
		return usage()
	}

	switch command := args[0]; command {
	case "hash":
		if len(args) < 2 {
			return fmt.Errorf("usage: sentry hash <file>")
		}
		hash, err := identity.ContentHash(args[1])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil

	case "encrypt":
		if len(args) < 2 {
			return fmt.Errorf("usage: sentry encrypt <file> [output]")
		}
		outputPath := ""
		if len(args) > 2 {
			outputPath = args[2]
		}
		written, err := cipher.EncryptFile(args[1], outputPath)
		if err != nil {
			return err
		}
		fmt.Println(written)
		return nil

	case "decrypt":
		if len(args) < 2 {
			return fmt.Errorf("usage: sentry decrypt <file> [output]")
		}
		outputPath := ""
		if len(args) > 2 {
			outputPath = args[2]
		}
		written, err := cipher.DecryptFile(args[1], outputPath)
		if err != nil {
			return err
		}
		fmt.Println(written)
		return nil

	case "genpass":
		password, err := crypto.GeneratePassword(cfg.App.PasswordLength)
		if err != nil {
			return err
		}
		fmt.Println(password)
		return nil

	case "profiles":
		for _, profile := range services.SessionService.ListProfiles(ctx) {
			fmt.Printf("%s  sessions=%d  last=%s  %s\n",
				profile.FileHash, profile.SessionCount,
				profile.LastSessionAt.Format("2006-01-02 15:04"), profile.FilePath)
		}
		return nil

	case "history":
		if len(args) < 2 {
			return fmt.Errorf("usage: sentry history <file-hash>")
		}
		summary := services.AuditService.Summarize(ctx, args[1])
		fmt.Printf("Total changes: %d\n", summary.TotalChanges)
		for _, action := range summary.Actions {
			line := fmt.Sprintf("%s  %s", action.Timestamp, action.Action)
			if action.Criterion != nil {
				line += fmt.Sprintf("  criterion=%s", *action.Criterion)
			}
			if action.Page != nil {
				line += fmt.Sprintf("  page=%d", *action.Page)
			}
			fmt.Println(line)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// encryptionSecret resolves the secret sealed documents are keyed on: an
// explicit passphrase from the environment when present, otherwise the
// machine-bound fallback fingerprint.
func encryptionSecret(keys crypto.KeyService) []byte {
	if passphrase := os.Getenv("SENTRY_PASSPHRASE"); passphrase != "" {
		return []byte(passphrase)
	}
	return keys.MachineSecret()
}

func usage() error {
	fmt.Fprintln(os.Stderr, "usage: sentry [flags] <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  hash <file>                print the document content hash")
	fmt.Fprintln(os.Stderr, "  encrypt <file> [output]    encrypt a file")
	fmt.Fprintln(os.Stderr, "  decrypt <file> [output]    decrypt a file")
	fmt.Fprintln(os.Stderr, "  genpass                    generate a random password")
	fmt.Fprintln(os.Stderr, "  profiles                   list known document profiles")
	fmt.Fprintln(os.Stderr, "  history <file-hash>        print a document's change history")
	return fmt.Errorf("no command given")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
