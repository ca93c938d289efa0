package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/attrbridge/internal/ctxlog"
	"github.com/vk/attrbridge/internal/fsutil"
)

// Load walks the given path for .hcl manifest files, parses them, and
// merges their object blocks. Duplicate method declarations across files
// are an error: the manifest set must describe each builtin exactly
// once.
func Load(ctx context.Context, path string) ([]*Object, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading builtin manifests.", "path", path)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifests directory", "path", path, "error", err)
		return nil, err
	}
	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %s", path)
	}
	logger.Debug("Found manifest files.", "files", filePaths)

	parser := hclparse.NewParser()
	byName := make(map[string]*Object)
	seenMethods := make(map[string]string)
	var objects []*Object

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
		}

		var f File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
		}

		for _, obj := range f.Objects {
			target, ok := byName[obj.Name]
			if !ok {
				target = &Object{Name: obj.Name}
				byName[obj.Name] = target
				objects = append(objects, target)
			}
			for _, m := range obj.Methods {
				qualified := obj.Name + "." + m.Name
				if prev, dup := seenMethods[qualified]; dup {
					return nil, fmt.Errorf("method %s declared in both %s and %s", qualified, prev, filePath)
				}
				seenMethods[qualified] = filePath
				target.Methods = append(target.Methods, m)
			}
		}
		logger.Debug("Loaded manifest file.", "file", filePath)
	}

	logger.Info("Builtin manifests loaded.", "objects", len(objects), "methods", len(seenMethods))
	return objects, nil
}
