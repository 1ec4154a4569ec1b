// Package services wires the export, fixup, and verification steps into the
// fixed pipeline a build invokes: generate the schema artifact, apply fixups
// in place, compare against the committed baseline. Each step's failure
// aborts the run immediately; nothing is retried.
package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tvalden/schemaguard/internal/fixup"
	"github.com/tvalden/schemaguard/internal/logging"
	"github.com/tvalden/schemaguard/internal/verify"
	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// Runner executes the export pipeline. The exporter is injected so the
// pipeline treats schema generation as a black box.
type Runner struct {
	exporter schemaguard.Exporter
	pipeline *fixup.Pipeline
	verifier *verify.Verifier
	logger   schemaguard.Logger
}

// NewRunner creates a Runner around the given exporter.
// A nil logger disables logging.
func NewRunner(exporter schemaguard.Exporter, logger schemaguard.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{
		exporter: exporter,
		pipeline: fixup.NewPipeline(logger),
		verifier: verify.NewVerifier(logger),
		logger:   logger,
	}
}

// Export runs the pipeline in its fixed order: resolve the output location,
// invoke the exporter, apply fixups, verify against the baseline.
//
// An empty or NONE output file exports to a temporary file that is removed
// when the run finishes, which is useful when only verification matters. On
// any failure the artifact on disk is either absent (exporter failed) or in
// its freshly generated pre-fixup state (fixup failed); it is never left
// partially fixed up.
func (r *Runner) Export(cfg schemaguard.ExportConfig) error {
	cfg.ApplyDefaults()

	discardOutput := cfg.OutputFile == "" || cfg.OutputFile == schemaguard.NoneSentinel

	outputPath := cfg.OutputFile
	if discardOutput {
		tmp, err := os.CreateTemp("", "schemaguard-*.ddl")
		if err != nil {
			return fmt.Errorf("error creating temporary output file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("error creating temporary output file: %w", err)
		}
		outputPath = tmp.Name()
		defer os.Remove(outputPath)
	} else {
		if dir := filepath.Dir(outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating output directory: %w", err)
			}
		}
		// Delete any stale artifact so a silent generation failure cannot
		// masquerade as a successful run.
		if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing stale output file %s: %w", outputPath, err)
		}
	}

	r.logger.Info("Invoking schema exporter")
	err := r.exporter.Export(schemaguard.ExportOptions{
		OutputPath: outputPath,
		Charset:    cfg.Charset,
		Drop:       cfg.Drop,
		Format:     cfg.Format,
		Delimiter:  cfg.Delimiter,
	})
	if err != nil {
		return err
	}

	rules := fixup.FromConfigs(cfg.Fixups)
	if err := r.pipeline.Run(rules, outputPath, cfg.Charset); err != nil {
		return err
	}

	return r.verifier.Verify(outputPath, cfg.VerifyFile)
}

// Fixup applies the configured fixups to an existing artifact without
// exporting or verifying.
func (r *Runner) Fixup(cfg schemaguard.ExportConfig, artifactPath string) error {
	cfg.ApplyDefaults()
	return r.pipeline.Run(fixup.FromConfigs(cfg.Fixups), artifactPath, cfg.Charset)
}

// Verify compares an existing artifact against a baseline without exporting.
func (r *Runner) Verify(actualPath, expectedPath string) error {
	return r.verifier.Verify(actualPath, expectedPath)
}
