// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/grouproster/internal/core/group"
	"github.com/taibuivan/grouproster/internal/platform/constants"
)

func newSeedCommand() *cobra.Command {
	var file string

	command := &cobra.Command{
		Use:     "seed",
		Short:   "Load groups from a YAML file",
		Example: "  groups seed --file data/groups.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("seed: --file is required")
			}
			return runSeed(cmd.Context(), file)
		},
	}

	command.Flags().StringVarP(&file, "file", "f", "", "path to the YAML seed file")
	return command
}

func runSeed(parent context.Context, path string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	seedFile, err := group.LoadSeedFile(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, constants.StartupTimeout)
	defer cancel()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.close()

	service := group.NewService(store.repository, log)
	_, err = group.Seed(ctx, service, seedFile, time.Now().Year(), log)
	return err
}
