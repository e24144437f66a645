// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package group

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document accepted by the seed command.
//
//	groups:
//	  - name: Queen
//	    country: United Kingdom
//	    creationYear: 1970
type SeedFile struct {
	Groups []CreateInput `yaml:"groups"`
}

// LoadSeedFile reads and decodes a YAML seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("seed: decode %s: %w", path, err)
	}

	return &file, nil
}

/*
Seed validates and adds every group of file through writer, stopping at the
first failure.

Returns:
  - []DTO: The groups persisted before any failure
  - error: Validation errors carry the position of the offending entry
*/
func Seed(ctx context.Context, writer Writer, file *SeedFile, currentYear int, logger *slog.Logger) ([]DTO, error) {
	created := make([]DTO, 0, len(file.Groups))

	for index, input := range file.Groups {
		dto, err := input.toDTO(currentYear)
		if err != nil {
			return created, fmt.Errorf("seed: entry %d (%q): %w", index, input.Name, err)
		}

		persisted, err := writer.Create(ctx, &dto)
		if err != nil {
			return created, fmt.Errorf("seed: entry %d (%q): %w", index, input.Name, err)
		}

		created = append(created, persisted)
	}

	logger.InfoContext(ctx, "groups_seeded", slog.Int("count", len(created)))
	return created, nil
}
