/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registrarcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-didweb-registrar/pkg/vdr/web"
)

const (
	// base url flag.
	baseURLFlagName      = "base-url"
	baseURLEnvKey        = web.BaseURLEnvKey
	baseURLFlagShorthand = "u"
	baseURLFlagUsage     = "HTTPS base URL, its host is the did:web domain." +
		" Alternatively, this can be set with the following environment variable: " + baseURLEnvKey

	// base path flag.
	basePathFlagName      = "base-path"
	basePathEnvKey        = web.BasePathEnvKey
	basePathFlagShorthand = "p"
	basePathFlagUsage     = "Writable directory did.json files are stored under." +
		" Alternatively, this can be set with the following environment variable: " + basePathEnvKey

	// log level.
	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "DIDWEB_REGISTRAR_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	// did document flag.
	documentFlagName      = "document"
	documentFlagShorthand = "d"
	documentFlagUsage     = "File holding the DID document as JSON. Reads standard input when not set or '-'."

	stdinName = "-"
)

var logger = log.New("aries-framework/didweb-registrar")

//nolint:gochecknoglobals
var (
	baseURLSetting  = setting{property: web.BaseURLProperty, flagName: baseURLFlagName, envKey: baseURLEnvKey}
	basePathSetting = setting{property: web.BasePathProperty, flagName: basePathFlagName, envKey: basePathEnvKey}
	logLevelSetting = setting{property: "logLevel", flagName: logLevelFlagName, envKey: logLevelEnvKey}
)

// AddCommands adds the registrar commands and their shared flags to root.
func AddCommands(root *cobra.Command) {
	createFlags(root)

	root.AddCommand(
		createCmd(),
		updateCmd(),
		deactivateCmd(),
		resolveCmd(),
		propertiesCmd(),
	)
}

func createFlags(root *cobra.Command) {
	root.PersistentFlags().StringP(baseURLFlagName, baseURLFlagShorthand, "", baseURLFlagUsage)
	root.PersistentFlags().StringP(basePathFlagName, basePathFlagShorthand, "", basePathFlagUsage)
	root.PersistentFlags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
}

func createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a did:web DID",
		Long: "Store a DID document as did.json. A document without id gets a newly generated " +
			"did:web identifier.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vdr, err := newVDR(cmd)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd)
			if err != nil {
				return err
			}

			res, err := vdr.Create(doc)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringP(documentFlagName, documentFlagShorthand, "", documentFlagUsage)

	return cmd
}

func updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a did:web DID",
		Long:  "Replace the stored did.json of the DID named by the document id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vdr, err := newVDR(cmd)
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd)
			if err != nil {
				return err
			}

			res, err := vdr.Update(doc)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringP(documentFlagName, documentFlagShorthand, "", documentFlagUsage)

	return cmd
}

func deactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <did>",
		Short: "Deactivate a did:web DID",
		Long:  "Delete the stored did.json of a DID. Its directory is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vdr, err := newVDR(cmd)
			if err != nil {
				return err
			}

			res, err := vdr.Deactivate(args[0])
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <did>",
		Short: "Print the stored document of a did:web DID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vdr, err := newVDR(cmd)
			if err != nil {
				return err
			}

			doc, err := vdr.Read(args[0])
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
}

func propertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "Print the registrar properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vdr, err := newVDR(cmd)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), vdr.Properties())
		},
	}
}

// newVDR applies the log level and builds the VDR from flags, falling back to the environment.
func newVDR(cmd *cobra.Command) (*web.VDR, error) {
	logLevel, err := logLevelSetting.lookup(cmd, false)
	if err != nil {
		return nil, err
	}

	if err = applyLogLevel(logLevel); err != nil {
		return nil, err
	}

	baseURL, err := baseURLSetting.lookup(cmd, true)
	if err != nil {
		return nil, err
	}

	basePath, err := basePathSetting.lookup(cmd, true)
	if err != nil {
		return nil, err
	}

	return web.NewFromProperties(map[string]interface{}{
		web.BaseURLProperty:  baseURL,
		web.BasePathProperty: basePath,
	})
}

func readDocument(cmd *cobra.Command) (web.Doc, error) {
	name, err := cmd.Flags().GetString(documentFlagName)
	if err != nil {
		return nil, fmt.Errorf("error reading --%s --> %w", documentFlagName, err)
	}

	var raw []byte

	if name == "" || name == stdinName {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(name) //nolint:gosec
	}

	if err != nil {
		return nil, fmt.Errorf("error reading did document --> %w", err)
	}

	return web.ParseDocument(raw)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func applyLogLevel(logLevel string) error {
	if logLevel == "" {
		return nil
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error setting registrar log level --> invalid level '%s' --> %w", logLevel, err)
	}

	log.SetLevel("", level)

	logger.Debugf("registrar log level set to %s", logLevel)

	return nil
}

// setting is a registrar property read from its flag, or from its environment variable when the
// flag is not given.
type setting struct {
	property string
	flagName string
	envKey   string
}

func (s setting) lookup(cmd *cobra.Command, required bool) (string, error) {
	if cmd.Flags().Changed(s.flagName) {
		value, err := cmd.Flags().GetString(s.flagName)
		if err != nil {
			return "", fmt.Errorf("error reading registrar property %s --> %w", s.property, err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(s.envKey)
	if isSet || !required {
		return value, nil
	}

	return "", fmt.Errorf("registrar property %s is not set --> pass --%s or set %s",
		s.property, s.flagName, s.envKey)
}
