package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/ctxlog"
)

// Loader implements config.Loader for .hcl documents.
type Loader struct{}

// NewLoader creates an HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path and flattens it into a config.Document.
func (l *Loader) Load(ctx context.Context, path string) (config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL configuration document.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL config %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parse HCL config %s: unexpected body type %T", path, file.Body)
	}

	doc := make(config.Document)

	// Root-level attributes never reach the document; modules may only read
	// through a namespace block.
	for name, attr := range body.Attributes {
		return nil, fmt.Errorf("config attribute %q at %s: values must live inside a 'namespace' block",
			name, attr.NameRange.String())
	}

	for _, block := range body.Blocks {
		if block.Type != "namespace" {
			return nil, fmt.Errorf("config block %q at %s: only 'namespace' blocks are allowed",
				block.Type, block.TypeRange.String())
		}
		if len(block.Labels) != 1 {
			return nil, fmt.Errorf("namespace block at %s: exactly one label required", block.TypeRange.String())
		}

		sub, err := nativeBody(block.Body)
		if err != nil {
			return nil, fmt.Errorf("namespace %q: %w", block.Labels[0], err)
		}
		doc[block.Labels[0]] = sub
	}

	logger.Debug("HCL configuration document loaded.", "namespaces", len(body.Blocks))
	return doc, nil
}

// nativeBody decodes a block body into a nested map, recursing into nested
// blocks.
func nativeBody(body *hclsyntax.Body) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes)+len(body.Blocks))

	for name, attr := range body.Attributes {
		val, err := nativeAttribute(attr.Expr)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = val
	}

	for _, block := range body.Blocks {
		sub, err := nativeBody(block.Body)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Type, err)
		}
		out[block.Type] = sub
	}

	return out, nil
}

// nativeAttribute evaluates a literal expression and converts it to native Go.
// Host config documents carry no variables, so the evaluation context is nil.
func nativeAttribute(expr hcl.Expression) (any, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluate expression: %w", diags)
	}
	return ctyToNative(val)
}
