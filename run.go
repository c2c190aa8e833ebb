package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	json "github.com/go-json-experiment/json"

	"github.com/gqlgo/dyngql/config"
	"github.com/gqlgo/dyngql/dynclient"
)

func run(ctx context.Context) error {
	cfgFile, err := config.FindConfigFile(".", []string{".dyngql.yml", "dyngql.yml", ".dyngql.yaml", "dyngql.yaml"})
	if err != nil {
		return fmt.Errorf("failed to find config file: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if *operationName == "" {
		return errors.New("an -operation name is required")
	}

	var variables map[string]any
	if err := json.Unmarshal([]byte(*variablesJSON), &variables); err != nil {
		return fmt.Errorf("failed to parse variables: %w", err)
	}

	c := dynclient.New(cfg.ClientOptions())
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	var opts []dynclient.CallOption
	if *fieldsOption != "" {
		opts = append(opts, dynclient.WithProjection(dynclient.Pick(strings.Split(*fieldsOption, ",")...)))
	}

	value, err := c.Call(ctx, *operationName, variables, opts...)
	if err != nil {
		return fmt.Errorf("operation %s failed: %w", *operationName, err)
	}

	fmt.Fprintln(os.Stdout, string(value))

	return nil
}
