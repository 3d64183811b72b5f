// Package viper_adapter loads the host configuration document from YAML,
// TOML, or JSON files through viper.
//
// Namespaces are the document's top-level keys. Viper's key delimiter is
// rebound from "." to "::" so that reverse-DNS namespace names such as
// "io.chat.jitsi" survive as single keys instead of exploding into nested
// maps. Viper lower-cases keys, which is fine for namespace names but means
// the document is effectively case-insensitive at every level.
package viper_adapter

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/ctxlog"
)

// keyDelimiter replaces viper's default "." so namespace names keep their dots.
const keyDelimiter = "::"

// Loader implements config.Loader via viper. The format is inferred from
// the file extension.
type Loader struct{}

// NewLoader creates a viper-backed configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path into a config.Document.
func (l *Loader) Load(ctx context.Context, path string) (config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration document via viper.", "path", path)

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	doc := config.Document(v.AllSettings())
	logger.Debug("Configuration document loaded.", "top_level_keys", len(doc))
	return doc, nil
}
