/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package web registers did:web DIDs by keeping each DID document in a did.json file whose
// location mirrors the web path the document is served from:
//
//	did:web:example.com:users:alice  ->  <basePath>/users/alice/did.json
//
// The VDR performs no locking. Create, Update and Deactivate check for existence and then act
// in two separate filesystem calls, so concurrent operations on the same identifier race.
// Callers that need strict consistency must serialize operations per resolved path.
package web

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/afero"
)

const (
	namespace = "web"

	// StateFinished is the state reported for completed operations.
	StateFinished = "finished"
)

var logger = log.New("aries-framework/vdr/webregistrar")

// CreateResult is the outcome of Create.
type CreateResult struct {
	ID          string `json:"id"`
	State       string `json:"state"`
	DIDDocument Doc    `json:"didDocument"`
}

// UpdateResult is the outcome of Update.
type UpdateResult struct {
	State       string `json:"state"`
	DIDDocument Doc    `json:"didDocument"`
}

// DeactivateResult is the outcome of Deactivate.
type DeactivateResult struct {
	State string `json:"state"`
}

// VDR registers did:web DIDs on a filesystem.
type VDR struct {
	domain     string
	basePath   string
	properties map[string]interface{}
	store      *store
	newID      func() string
}

type options struct {
	fs    afero.Fs
	newID func() string
}

// Option configures the VDR.
type Option func(opts *options)

// WithFileSystem sets the filesystem documents are stored on. Defaults to the OS filesystem.
func WithFileSystem(fs afero.Fs) Option {
	return func(opts *options) {
		opts.fs = fs
	}
}

// WithIDGenerator sets the generator of the trailing segment of identifiers minted by Create.
// Defaults to a random UUID.
func WithIDGenerator(newID func() string) Option {
	return func(opts *options) {
		opts.newID = newID
	}
}

// New validates cfg and returns a VDR storing documents below cfg.BasePath.
func New(cfg *Config, opts ...Option) (*VDR, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w --> configuration is not defined", ErrConfiguration)
	}

	o := &options{
		fs:    afero.NewOsFs(),
		newID: func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(o)
	}

	baseURL, err := cfg.validate(o.fs)
	if err != nil {
		return nil, fmt.Errorf("error building did:web registrar --> %w", err)
	}

	v := &VDR{
		domain:     baseURL.Hostname(),
		basePath:   cfg.BasePath,
		properties: cfg.Properties(),
		store:      &store{fs: o.fs},
		newID:      o.newID,
	}

	logger.Debugf("did:web registrar configured for domain %s at %s", v.domain, v.basePath)

	return v, nil
}

// NewFromProperties decodes props and returns a VDR. When props is empty the properties are
// loaded from the environment.
func NewFromProperties(props map[string]interface{}, opts ...Option) (*VDR, error) {
	if len(props) == 0 {
		props = PropertiesFromEnv()
	}

	cfg, err := ConfigFromProperties(props)
	if err != nil {
		return nil, err
	}

	v, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	v.properties = copyProperties(props)

	return v, nil
}

// Accept accepts did:web method.
func (v *VDR) Accept(method string) bool {
	return method == namespace
}

// Properties returns the properties the VDR was configured with.
func (v *VDR) Properties() map[string]interface{} {
	return copyProperties(v.properties)
}

// Update replaces the stored document of doc.ID(). The old did.json is deleted before the new
// one is written, a failing write leaves the identifier without a document.
func (v *VDR) Update(doc Doc) (*UpdateResult, error) {
	res, err := v.update(doc)
	if err != nil {
		return nil, fmt.Errorf("error updating did:web did --> %w", err)
	}

	return res, nil
}

func (v *VDR) update(doc Doc) (*UpdateResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w --> did document is not defined", ErrInvalidInput)
	}

	if err := doc.checkID(); err != nil {
		return nil, err
	}

	didID := doc.ID()
	if didID == "" {
		return nil, fmt.Errorf("%w --> did document has no id", ErrInvalidInput)
	}

	dir, err := v.existingDir(didID)
	if err != nil {
		return nil, err
	}

	raw, err := doc.JSONBytes()
	if err != nil {
		return nil, err
	}

	if err = v.store.delete(dir); err != nil {
		return nil, fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	if err = v.store.put(dir, raw); err != nil {
		logger.Errorf("update of %s failed after its document was deleted: %v", didID, err)

		return nil, fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	logger.Debugf("updated %s", didID)

	return &UpdateResult{State: StateFinished, DIDDocument: doc}, nil
}

// Deactivate deletes the stored document of didID. The directory that held it is kept.
func (v *VDR) Deactivate(didID string) (*DeactivateResult, error) {
	res, err := v.deactivate(didID)
	if err != nil {
		return nil, fmt.Errorf("error deactivating did:web did --> %w", err)
	}

	return res, nil
}

func (v *VDR) deactivate(didID string) (*DeactivateResult, error) {
	if didID == "" {
		return nil, fmt.Errorf("%w --> identifier is not defined", ErrInvalidInput)
	}

	dir, err := v.existingDir(didID)
	if err != nil {
		return nil, err
	}

	if err = v.store.delete(dir); err != nil {
		return nil, fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	logger.Debugf("deactivated %s", didID)

	return &DeactivateResult{State: StateFinished}, nil
}

// Close frees resources being maintained by VDR.
func (v *VDR) Close() error {
	return nil
}

// existingDir resolves didID and checks that a did.json is stored there.
func (v *VDR) existingDir(didID string) (string, error) {
	dir, err := v.ResolvePath(didID)
	if err != nil {
		return "", err
	}

	ok, err := v.store.exists(documentFile(dir))
	if err != nil {
		return "", fmt.Errorf("%w --> %w", ErrStorage, err)
	}

	if !ok {
		return "", fmt.Errorf("%w --> %s", ErrNotFound, didID)
	}

	return dir, nil
}

func copyProperties(props map[string]interface{}) map[string]interface{} {
	c := make(map[string]interface{}, len(props))

	for k, val := range props {
		c[k] = val
	}

	return c
}
