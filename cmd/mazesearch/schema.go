package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonuts/commander"
	"github.com/invopop/jsonschema"

	"github.com/Ahsan-Aziz-Ishan/MazeGame-Heuristic-Search/internal/scenario"
)

var schemaOut string

func SchemaCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       cmdSchema,
		UsageLine: "schema [-out file]",
		Short:     "emit the JSON schema for scenario files",
		Long: `
emit a machine-readable JSON schema for the YAML scenario files accepted by
the solve and compare -conf flags, for validation and editor tooling

	$ mazesearch schema -out scenario.schema.json
`,
	}
	cmd.Flag.StringVar(&schemaOut, "out", "", "path to write the schema; empty prints to stdout")
	return cmd
}

func cmdSchema(cmd *commander.Command, args []string) error {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(scenario.Scenario))
	schema.Title = "Maze search scenario"
	schema.Description = "Validates scenario files passed to solve/compare via -conf"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if schemaOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := writeFileAtomic(schemaOut, data); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	log.WithField("path", schemaOut).Info("schema written")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create schema directory: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
