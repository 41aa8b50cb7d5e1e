package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/directory"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/database"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/util/password"
)

func NewMigrateCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations and optionally seed the doctor directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			db, err := database.NewFromCentral(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			st := store.New(db)
			fmt.Println("Running migrations...")
			if err := st.Migrate(); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			fmt.Println("Migrations applied.")

			if seed {
				if err := seedDoctors(cmd.Context(), st); err != nil {
					return fmt.Errorf("failed to seed doctors: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "seed the doctor directory with one account per department")

	return cmd
}

// seedDoctors creates one account per department doctor. Existing accounts
// keep their credentials; new ones get a generated password printed once to
// stdout so an operator can hand it over.
func seedDoctors(ctx context.Context, st *store.Store) error {
	for _, dept := range directory.Departments() {
		name := directory.DoctorForDepartment(dept)

		if _, err := st.DoctorByName(ctx, name); err == nil {
			fmt.Printf("doctor %q already exists, skipping\n", name)
			continue
		}

		pw := password.Generate(16)
		hash, err := password.Hash(pw)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", name, err)
		}

		doc := &store.Doctor{
			ID:           uuid.New(),
			Name:         name,
			Department:   dept,
			Email:        seedEmail(name),
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := st.SaveDoctor(ctx, doc); err != nil {
			return err
		}
		fmt.Printf("created doctor %q (%s) initial password: %s\n", name, dept, pw)
	}
	return nil
}

// seedEmail derives a deterministic local address from a display name, e.g.
// "Dr. Evelyn Reed" -> "evelyn.reed@clinic.local".
func seedEmail(name string) string {
	n := strings.ToLower(strings.TrimPrefix(name, "Dr. "))
	n = strings.ReplaceAll(n, " ", ".")
	return n + "@clinic.local"
}
