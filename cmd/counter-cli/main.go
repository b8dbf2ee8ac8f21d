// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/counter-sdk/utils"
)

const logName = "counter-cli"

type cli struct {
	log    logging.Logger
	config *Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:   "counter-cli",
		Short: "Inspect and build counter program accounts and instructions",
		Long:  `A CLI for decoding and encoding counter accounts and for building counter program instructions offline.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			c.close()
		},
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().StringP("output", "o", "", "Output format (text, json or yaml)")
	cmd.PersistentFlags().String("encoding", "", "Text encoding of raw bytes (hex, base64 or base58)")
	cmd.PersistentFlags().String("program-id", "", "Base58 address of the counter program")
	cmd.PersistentFlags().String("log-level", "", "Log level")
	cmd.PersistentFlags().String("config-dir", "", "Directory holding config.yaml and logs (default ~/.counter-cli)")

	cmd.AddCommand(
		newDecodeCmd(c),
		newEncodeCmd(c),
		newSizeCmd(c),
		newInstructionCmd(c),
	)
	return cmd
}

func (c *cli) init(cmd *cobra.Command) error {
	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return err
	}
	config, err := loadConfig(cmd, configDir)
	if err != nil {
		return err
	}
	if err := config.Verify(); err != nil {
		return err
	}
	c.config = config

	logLevel, err := logging.ToLevel(config.LogLevel)
	if err != nil {
		return err
	}
	c.log = newFileLogger(logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			Directory: config.LogDir,
		},
		LogLevel:  logLevel,
		LogFormat: logging.JSON,
	}, logName)
	c.log.Debug("cli initialized",
		zap.String("command", cmd.CommandPath()),
		zap.String("output", config.Output),
		zap.String("encoding", config.Encoding),
	)
	return nil
}

func (c *cli) close() {
	if c.log != nil {
		c.log.Stop()
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		utils.Errf("{{red}}error: {{/}}%+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
