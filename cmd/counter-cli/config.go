// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/counter-sdk/codec"
	"github.com/ava-labs/counter-sdk/programs"
	"github.com/ava-labs/counter-sdk/utils"
)

const (
	configDirName  = ".counter-cli"
	configFileName = "config"
	logsDirName    = "logs"

	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	ErrUnknownOutput   = errors.New("unknown output format")
	ErrInvalidProgram  = errors.New("invalid program id")
	ErrUnreadableInput = errors.New("unable to decode input as text, or read as file path")
)

// Config is read from <config-dir>/config.yaml; flags take precedence.
type Config struct {
	Output    string `yaml:"output"`
	Encoding  string `yaml:"encoding"`
	ProgramID string `yaml:"program_id"`
	LogLevel  string `yaml:"log_level"`
	LogDir    string `yaml:"log_dir"`
}

func defaultConfig(configDir string) *Config {
	return &Config{
		Output:   outputText,
		Encoding: string(codec.Hex),
		LogLevel: "info",
		LogDir:   filepath.Join(configDir, logsDirName),
	}
}

// Verify checks c and applies the configured program id.
func (c *Config) Verify() error {
	switch c.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}
	if _, err := codec.ParseEncoding(c.Encoding); err != nil {
		return err
	}
	if c.ProgramID == "" {
		programs.SetProgramID(solana.PublicKey{})
		return nil
	}
	id, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProgram, err)
	}
	programs.SetProgramID(id)
	return nil
}

func (c *Config) encoding() codec.Encoding {
	e, _ := codec.ParseEncoding(c.Encoding)
	return e
}

var flagKeys = map[string]string{
	"output":     "output",
	"encoding":   "encoding",
	"program-id": "program_id",
	"log-level":  "log_level",
}

func loadConfig(cmd *cobra.Command, configDir string) (*Config, error) {
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, configDirName)
	}
	if _, err := utils.InitSubDirectory(configDir, logsDirName); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	defaults := defaultConfig(configDir)
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("encoding", defaults.Encoding)
	v.SetDefault("program_id", defaults.ProgramID)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_dir", defaults.LogDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}

	return &Config{
		Output:    strings.ToLower(v.GetString("output")),
		Encoding:  strings.ToLower(v.GetString("encoding")),
		ProgramID: v.GetString("program_id"),
		LogLevel:  v.GetString("log_level"),
		LogDir:    v.GetString("log_dir"),
	}, nil
}

// printValue writes v to w in the configured output format.
func printValue(w io.Writer, output string, v fmt.Stringer) error {
	switch output {
	case outputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		_, err := fmt.Fprintln(w, v.String())
		return err
	}
}

// readInput returns [input] decoded as text in [encoding] or, if that
// fails, the contents of the file at [input]. With [file] set, [input] is
// always read as a path.
func readInput(input string, file bool, encoding codec.Encoding) ([]byte, error) {
	if !file {
		if decoded, err := codec.Decode(encoding, input); err == nil {
			return decoded, nil
		}
	}

	fileContents, err := os.ReadFile(input)
	if err == nil {
		return fileContents, nil
	}
	if file {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableInput, err)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnreadableInput, input)
}
