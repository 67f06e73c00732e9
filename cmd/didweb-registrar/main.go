/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package didweb-registrar registers did:web DIDs as did.json files below a web-served directory.
package main

import (
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-didweb-registrar/cmd/didweb-registrar/registrarcmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "didweb-registrar",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("aries-framework/didweb-registrar")

	registrarcmd.AddCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run didweb-registrar: %s", err)
	}
}
