package hclmodel

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/ctxlog"
	"github.com/specialistvlad/casegrid/internal/fsutil"
)

// Loader reads .hcl case files.
type Loader struct{}

// NewLoader creates a new HCL case loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found in paths, which may be files or
// directories, and returns one definitions element holding all cases in
// file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*casemodel.Element, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	definitions := &casemodel.Element{Kind: casemodel.KindDefinitions}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		cases, err := l.decode(ctx, file, hclFile.Body, hclFile.Bytes)
		if err != nil {
			return nil, err
		}
		definitions.Children = append(definitions.Children, cases...)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "cases", len(definitions.Children))
	return definitions, nil
}

// LoadSource parses a single in-memory file. filename is only used in
// diagnostics and source information.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*casemodel.Element, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	cases, err := l.decode(ctx, filename, hclFile.Body, src)
	if err != nil {
		return nil, err
	}
	return &casemodel.Element{Kind: casemodel.KindDefinitions, Children: cases}, nil
}

func (l *Loader) decode(ctx context.Context, filename string, body hcl.Body, src []byte) ([]*casemodel.Element, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	t := &translator{ctx: ctx, src: src, fsInfo: casemodel.NewFSInfo(filename)}
	cases := make([]*casemodel.Element, 0, len(root.Cases))
	for _, c := range root.Cases {
		cases = append(cases, t.translateCase(c))
	}
	return cases, nil
}

// findAllHCLFiles returns every .hcl file under paths, without duplicates.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
