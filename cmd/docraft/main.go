// Command docraft encodes a study deliverable as a DOCX or PDF artifact.
// The deliverable is read from a Markdown, JSON, or YAML file, selected by
// extension.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/studykit/docraft"
	"github.com/studykit/docraft/markdown"
	"github.com/studykit/docraft/types"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type encodeOptions struct {
	inputPath  string
	outputPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &encodeOptions{}

	root := &cobra.Command{
		Use:          "docraft",
		Short:        "Encode study deliverables as DOCX or PDF artifacts",
		Version:      docraft.Version(),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.inputPath, "input", "i", "", "deliverable file (.md, .json, or .yaml)")
	root.PersistentFlags().StringVarP(&opts.outputPath, "output", "o", "", "output file path (default: input path with the format extension)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newEncodeCommand(types.FormatDocx, opts),
		newEncodeCommand(types.FormatPDF, opts),
	)
	return root
}

func newEncodeCommand(format types.Format, opts *encodeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   string(format),
		Short: fmt.Sprintf("Encode the deliverable as %s", format),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(format, opts)
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func runEncode(format types.Format, opts *encodeOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if opts.inputPath == "" {
		return types.NewArtifactError(types.ErrCodeInvalidInput, "--input is required")
	}
	outputPath := opts.outputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.inputPath, filepath.Ext(opts.inputPath)) + "." + string(format)
	}

	deliverable, err := loadDeliverable(opts.inputPath)
	if err != nil {
		logger.Error("loading deliverable failed", zap.String("input", opts.inputPath), zap.Error(err))
		return err
	}
	logger.Debug("deliverable loaded",
		zap.String("title", deliverable.Title),
		zap.Int("sections", len(deliverable.Sections)),
		zap.Int("references", len(deliverable.References)))

	artifact, err := docraft.Encode(deliverable, format)
	if err != nil {
		logger.Error("encoding failed", zap.String("format", string(format)), zap.Error(err))
		return err
	}

	if err := os.WriteFile(outputPath, artifact.Bytes, 0o644); err != nil {
		wrapped := types.WrapError(types.ErrCodeIOError, "writing output file", err)
		logger.Error("write failed", zap.String("output", outputPath), zap.Error(wrapped))
		return wrapped
	}

	logger.Info("artifact written",
		zap.String("output", outputPath),
		zap.String("mime", artifact.MIMEType),
		zap.Int("bytes", len(artifact.Bytes)))
	return nil
}

// loadDeliverable reads and decodes the input file based on its extension.
func loadDeliverable(path string) (types.Deliverable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Deliverable{}, types.WrapError(types.ErrCodeIOError, "reading input file", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return markdown.Parse(raw)
	case ".json":
		var d types.Deliverable
		if err := json.Unmarshal(raw, &d); err != nil {
			return types.Deliverable{}, types.WrapError(types.ErrCodeInvalidInput, "parsing JSON deliverable", err)
		}
		return d, nil
	case ".yaml", ".yml":
		var d types.Deliverable
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return types.Deliverable{}, types.WrapError(types.ErrCodeInvalidInput, "parsing YAML deliverable", err)
		}
		return d, nil
	default:
		return types.Deliverable{}, types.NewArtifactErrorf(types.ErrCodeInvalidInput,
			"unsupported input extension %q", filepath.Ext(path))
	}
}
