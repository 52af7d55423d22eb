package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/stage"
	"github.com/heartmarshall/leadflow-backend/internal/domain"
)

// stagesFile is the YAML layout accepted by seed-stages --file:
//
//	stages:
//	  - Capture
//	  - Qualification
type stagesFile struct {
	Stages []string `yaml:"stages"`
}

// parseStages decodes a stage list and rejects empty or duplicate names.
func parseStages(data []byte) ([]string, error) {
	var f stagesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stages file: %w", err)
	}
	if len(f.Stages) == 0 {
		return nil, errors.New("stages file: no stages listed")
	}

	seen := make(map[string]struct{}, len(f.Stages))
	names := make([]string, 0, len(f.Stages))
	for i, raw := range f.Stages {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("stages file: entry %d is empty", i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("stages file: duplicate stage %q", name)
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

func seedStagesCmd() *cobra.Command {
	var (
		userFlag string
		fileFlag string
	)

	cmd := &cobra.Command{
		Use:   "seed-stages",
		Short: "Seed pipeline stages for a user",
		Long: "Inserts the default pipeline stages, or the ones listed in --file, for the given user. " +
			"Positions that already hold a stage are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}

			names := domain.DefaultStageNames
			if fileFlag != "" {
				data, err := os.ReadFile(fileFlag)
				if err != nil {
					return fmt.Errorf("read stages file: %w", err)
				}
				if names, err = parseStages(data); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			stages, err := stage.New(pool).SeedDefaults(ctx, userID, names)
			if err != nil {
				return err
			}
			for _, s := range stages {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", s.Position, s.ID, s.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "owner user id (UUID)")
	cmd.Flags().StringVar(&fileFlag, "file", "", "YAML file with a stages list")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
