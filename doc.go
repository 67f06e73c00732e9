/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package registrar registers did:web DIDs by writing their DID documents to the directory a web
// server publishes them from.
//
// Packages for end developer usage
//
// pkg/vdr/web: Create, update, deactivate and read did:web DIDs stored as did.json files.
//
// cmd/didweb-registrar: Command line registrar built on pkg/vdr/web.
//
// Basic workflow
//
//  1. Build a web.Config with an https base URL and a writable base path.
//  2. Create a VDR with web.New, or web.NewFromProperties for host supplied properties.
//  3. Call Create, Update and Deactivate with DID documents and identifiers.
package registrar
