// Command simplespec validates and normalizes simple value spec documents.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/simple"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfg    Config
	kinds  []*simple.Type
	log    *zap.Logger
	stdout io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	a := &app{log: zap.NewNop(), stdout: stdout}

	var (
		configPath    string
		format        string
		logLevel      string
		bundlePath    string
		defaultKind   string
		requireType   bool
		omitFormatted bool
	)

	root := &cobra.Command{
		Use:           "simplespec",
		Short:         "Validate and normalize simple value spec documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("format") {
				if cfg.Format, err = parseFormat(format); err != nil {
					return err
				}
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("bundle") {
				cfg.BundlePath = bundlePath
			}
			if flags.Changed("default-kind") {
				cfg.DefaultKind = defaultKind
			}
			if flags.Changed("require-type") {
				cfg.RequireType = requireType
			}
			if flags.Changed("omit-formatted") {
				cfg.OmitFormatted = omitFormatted
			}

			return a.init(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a TOML config file")
	pf.StringVar(&format, "format", "", "output format: toml, json or yaml")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&bundlePath, "bundle", "", "message bundle file for error text")
	pf.StringVar(&defaultKind, "default-kind", "", "kind of entries without a type reference")
	pf.BoolVar(&requireType, "require-type", true, "embed type references in single value specs")
	pf.BoolVar(&omitFormatted, "omit-formatted", false, "leave formatted text out of specs")

	root.AddCommand(a.checkCmd(), a.normalizeCmd(), a.newValueCmd())
	return root
}

func (a *app) init(cfg Config) error {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	var bundle *simple.Bundle
	if cfg.BundlePath != "" {
		if bundle, err = simple.LoadBundle(cfg.BundlePath); err != nil {
			return err
		}
	}

	kinds, err := kindsFor(cfg.DefaultKind, bundle)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.kinds = kinds
	a.log = logger
	return nil
}

func (a *app) specOptions() simple.SpecOptions {
	return simple.SpecOptions{OmitFormatted: a.cfg.OmitFormatted}
}

func (a *app) load(path string) (map[string]*simple.Value, error) {
	values, err := simple.LoadDocument(path, simple.Kinds(a.kinds...))
	if err != nil {
		if errors.Is(err, simple.ErrDocumentNotFound) {
			a.log.Error("spec document not found", zap.String("path", path))
		} else {
			a.log.Error("invalid spec document", zap.String("path", path), zap.Error(err))
		}
		return nil, err
	}
	a.log.Debug("loaded spec document", zap.String("path", path), zap.Int("entries", len(values)))
	return values, nil
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that every entry of the documents builds a valid value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				values, err := a.load(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				a.log.Info("spec document ok", zap.String("path", path), zap.Int("entries", len(values)))
				fmt.Fprintf(a.stdout, "%s: %d entries ok\n", path, len(values))
			}
			return errors.Join(errs...)
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Rewrite a document with cast values and type references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.load(args[0])
			if err != nil {
				return err
			}

			if out != "" {
				if err := simple.SaveDocument(out, values, a.specOptions()); err != nil {
					a.log.Error("save failed", zap.String("path", out), zap.Error(err))
					return err
				}
				a.log.Info("spec document saved", zap.String("path", out), zap.Int("entries", len(values)))
				return nil
			}

			data, err := simple.EncodeDocument(a.cfg.Format, values, a.specOptions())
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout (format from extension)")
	return cmd
}

func (a *app) newValueCmd() *cobra.Command {
	var formatted string

	cmd := &cobra.Command{
		Use:   "new KIND VALUE",
		Short: "Build one value and print its spec as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := simple.Kinds(a.kinds...)(kindID(args[0]))
			if err != nil {
				return err
			}

			v, err := simple.New(typ, simple.Config{"v": args[1], "f": formatted})
			if err != nil {
				a.log.Warn("value rejected", zap.String("kind", typ.ID()), zap.String("input", args[1]), zap.Error(err))
				return err
			}

			spec := v.ToSpec(simple.NewScope(), a.cfg.RequireType, a.specOptions())
			enc := json.NewEncoder(a.stdout)
			return enc.Encode(spec)
		},
	}
	cmd.Flags().StringVarP(&formatted, "formatted", "f", "", "formatted text of the value")
	return cmd
}

// kindID accepts a built-in short name or a full type id.
func kindID(name string) string {
	if t, ok := builtinKinds[name]; ok {
		return t.ID()
	}
	return name
}
