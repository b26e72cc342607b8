package modefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/modehooks/internal/ctxlog"
	"github.com/specialistvlad/modehooks/internal/fsutil"
	"github.com/specialistvlad/modehooks/internal/settings"
)

// ErrDuplicateMode indicates two definitions with the same id.
var ErrDuplicateMode = errors.New("duplicate game mode id")

// Definition is a single mode block.
type Definition struct {
	Type     string
	ID       string
	Settings *settings.Collection
	Hooks    []HookDefinition
	File     string
}

// HookDefinition is a single "on" block.
type HookDefinition struct {
	Key       string
	Message   string
	WaitSteps int
}

// fileRoot decodes all top-level blocks of a file.
type fileRoot struct {
	Modes  []*modeBlock `hcl:"mode,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type modeBlock struct {
	Type     string         `hcl:"type,label"`
	ID       string         `hcl:"id,label"`
	Settings *settingsBlock `hcl:"settings,block"`
	Hooks    []*hookBlock   `hcl:"on,block"`
}

type settingsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type hookBlock struct {
	Key       string `hcl:"key,label"`
	Message   string `hcl:"message,optional"`
	WaitSteps int    `hcl:"wait_steps,optional"`
}

// Loader parses mode definitions.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every .hcl file under paths (files or directories, walked
// recursively) and returns the definitions in file order. Paths that do not
// exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Mode file loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	var defs []*Definition
	seen := make(map[string]string)
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read mode file %s: %w", file, err)
		}
		fileDefs, err := l.Parse(ctx, src, file)
		if err != nil {
			return nil, err
		}
		for _, def := range fileDefs {
			if prev, exists := seen[def.ID]; exists {
				return nil, fmt.Errorf("%w: '%s' in %s, first defined in %s", ErrDuplicateMode, def.ID, file, prev)
			}
			seen[def.ID] = file
			defs = append(defs, def)
		}
	}

	logger.Debug("Mode file loading complete.", "modes", len(defs))
	return defs, nil
}

// Parse decodes the definitions of a single file's contents.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) ([]*Definition, error) {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	defs := make([]*Definition, 0, len(root.Modes))
	for _, block := range root.Modes {
		def, err := translateMode(block, filename)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded mode definition.", "type", def.Type, "id", def.ID, "settings", def.Settings.Len(), "hooks", len(def.Hooks))
		defs = append(defs, def)
	}
	return defs, nil
}

func translateMode(block *modeBlock, filename string) (*Definition, error) {
	def := &Definition{
		Type: block.Type,
		ID:   block.ID,
		File: filename,
	}

	collection, err := translateSettings(block.Settings)
	if err != nil {
		return nil, fmt.Errorf("mode '%s' in %s: %w", block.ID, filename, err)
	}
	def.Settings = collection

	for _, h := range block.Hooks {
		if h.WaitSteps < 0 {
			return nil, fmt.Errorf("mode '%s' in %s: hook '%s': wait_steps must not be negative", block.ID, filename, h.Key)
		}
		def.Hooks = append(def.Hooks, HookDefinition{
			Key:       h.Key,
			Message:   h.Message,
			WaitSteps: h.WaitSteps,
		})
	}
	return def, nil
}

// translateSettings evaluates every attribute of the settings block, keeping
// the order in which they appear in the source.
func translateSettings(block *settingsBlock) (*settings.Collection, error) {
	if block == nil || block.Body == nil {
		return settings.New()
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid settings block: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	entries := make([]settings.Entry, 0, len(ordered))
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("setting '%s': %w", attr.Name, diags)
		}
		entries = append(entries, settings.Entry{Name: attr.Name, Value: val})
	}
	return settings.New(entries...)
}
