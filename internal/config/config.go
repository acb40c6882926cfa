// Package config loads rule set documents and turns them into engine
// settings. Documents are YAML by default; .json files are supported for
// rule sets produced by other tooling.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"github.com/athahersirnaik/json-conditions/internal/core"
	"github.com/athahersirnaik/json-conditions/internal/objpath"
	"github.com/athahersirnaik/json-conditions/internal/validation"
)

// Document is a rule set as authored on disk.
type Document struct {
	// Satisfy is the aggregation policy for non-required rules ("ALL" or
	// "ANY"). Empty means ANY.
	Satisfy core.Satisfy `yaml:"satisfy" json:"satisfy"`

	// Transform is an optional expression applied to every rule's value
	// before comparison. Environment: value, reference, property.
	Transform string `yaml:"transform" json:"transform"`

	// Previous is an optional expression producing the previously observed
	// value for a property. Environment: reference, property. Required by
	// crosses rules unless a previous snapshot is supplied instead.
	Previous string `yaml:"previous" json:"previous"`

	Rules []core.Rule `yaml:"rules" json:"rules"`
}

// Load reads and parses the rule set document at the given path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		// JSON rule sets arrive as dynamic maps and go through the
		// mapstructure decoder.
		var raw struct {
			Satisfy   core.Satisfy     `json:"satisfy"`
			Transform string           `json:"transform"`
			Previous  string           `json:"previous"`
			Rules     []map[string]any `json:"rules"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing rules file: %w", err)
		}
		rules, err := core.DecodeRules(raw.Rules)
		if err != nil {
			return nil, fmt.Errorf("parsing rules file: %w", err)
		}
		doc = Document{
			Satisfy:   raw.Satisfy,
			Transform: raw.Transform,
			Previous:  raw.Previous,
			Rules:     rules,
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing rules file: %w", err)
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("validating rules file: %w", err)
	}
	return &doc, nil
}

// Validate checks the document for authoring errors, including that the
// optional expressions compile.
func (d *Document) Validate() error {
	if !d.Satisfy.IsValid() {
		return fmt.Errorf("invalid satisfy policy %q (want ALL or ANY)", d.Satisfy)
	}
	if err := validation.ValidateRules(d.Rules); err != nil {
		return err
	}
	if d.Transform != "" {
		if _, err := validation.CompileExpr(d.Transform); err != nil {
			return err
		}
	}
	if d.Previous != "" {
		if _, err := validation.CompileExpr(d.Previous); err != nil {
			return err
		}
	}
	return nil
}

// BuildOptions carries the collaborators a document cannot express itself.
type BuildOptions struct {
	// Log receives the evaluation trace.
	Log core.TraceFunc

	// PreviousSnapshot is a prior reference document; crosses rules read
	// the rule's own path from it. The document's Previous expression, when
	// set, takes precedence.
	PreviousSnapshot any
}

// BuildSettings compiles the document into engine settings.
func (d *Document) BuildSettings(opts BuildOptions) (*core.Settings, error) {
	settings := &core.Settings{
		Rules:   d.Rules,
		Satisfy: d.Satisfy,
		Log:     opts.Log,
	}

	if d.Transform != "" {
		prog, err := validation.CompileExpr(d.Transform)
		if err != nil {
			return nil, err
		}
		settings.TransformValue = func(value any, reference any, property string) any {
			out, err := expr.Run(prog, map[string]any{
				"value":     value,
				"reference": reference,
				"property":  property,
			})
			if err != nil {
				log.Warn().Err(err).Str("property", property).Msg("transform expression failed, using original value")
				return value
			}
			return out
		}
	}

	switch {
	case d.Previous != "":
		prog, err := validation.CompileExpr(d.Previous)
		if err != nil {
			return nil, err
		}
		settings.PreviousValue = func(reference any, property string) any {
			out, err := expr.Run(prog, map[string]any{
				"reference": reference,
				"property":  property,
			})
			if err != nil {
				log.Warn().Err(err).Str("property", property).Msg("previous-value expression failed")
				return nil
			}
			return out
		}
	case opts.PreviousSnapshot != nil:
		snapshot := opts.PreviousSnapshot
		settings.PreviousValue = func(_ any, property string) any {
			return objpath.Resolve(snapshot, property)
		}
	}

	if settings.PreviousValue == nil && validation.UsesCrosses(d.Rules) {
		log.Warn().Msg("rule set uses crosses but no previous-value source is configured; those rules will fail hard")
	}

	return settings, nil
}

// LoadReference reads a reference document (JSON or YAML) into plain
// structured data.
func LoadReference(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	var ref any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &ref); err != nil {
			return nil, fmt.Errorf("parsing reference file: %w", err)
		}
		return ref, nil
	}
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parsing reference file: %w", err)
	}
	return ref, nil
}
