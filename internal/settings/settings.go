// Package settings loads the optional HCL settings file that supplies
// defaults for the command-line options.
//
// Example ~/.agerc.hcl:
//
//	file      = "${home}/Documents/birthdays"
//	all       = true
//	warn      = true
//	warn_days = 7
package settings

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/age/internal/ctxlog"
)

// DefaultFileName is looked up in the home directory when no settings path
// is given.
const DefaultFileName = ".agerc.hcl"

// File mirrors the attributes a settings file may set. A nil field was not
// set in the file.
type File struct {
	DataFile  *string `hcl:"file,optional"`
	All       *bool   `hcl:"all,optional"`
	Days      *bool   `hcl:"days,optional"`
	Long      *bool   `hcl:"long,optional"`
	Sort      *bool   `hcl:"sort,optional"`
	Warn      *bool   `hcl:"warn,optional"`
	WarnDays  *int    `hcl:"warn_days,optional"`
	Strict    *bool   `hcl:"strict,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// Vars are the variables visible to expressions in the file.
type Vars struct {
	Home string
}

func (v Vars) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home": cty.StringVal(v.Home),
		},
	}
}

// Load parses and decodes the settings file at path. A missing file yields
// an error wrapping fs.ErrNotExist so callers can decide whether that is
// fatal.
func Load(ctx context.Context, path string, vars Vars) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %s", path, diags.Error())
	}

	var s File
	diags = gohcl.DecodeBody(file.Body, vars.evalContext(), &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %s", path, diags.Error())
	}

	logger.Debug("Settings file decoded.", "path", path)
	return &s, nil
}
