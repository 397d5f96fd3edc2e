package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/weinrechner/internal/application/sheet"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
	infrapdf "github.com/jhoicas/weinrechner/internal/infrastructure/pdf"
	"github.com/jhoicas/weinrechner/pkg/config"
	"github.com/jhoicas/weinrechner/pkg/logger"
)

// appEnv dependencias compartidas por los subcomandos.
type appEnv struct {
	lang     string
	logLevel string

	log   zerolog.Logger
	pref  *i18n.Preference
	calc  *usecase.CalculatorUseCase
	sheet *sheet.SheetUseCase
}

// Language idioma resuelto para la ejecución.
func (e *appEnv) Language() i18n.Language { return e.pref.Get() }

// Execute construye el árbol y lo ejecuta con os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// NewRootCmd árbol de comandos completo.
func NewRootCmd() *cobra.Command {
	env := &appEnv{}

	root := &cobra.Command{
		Use:           "weinrechner",
		Short:         "Calculadoras de bodega: alcohol, reserva dulce y mezclas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&env.lang, "lang", "", "idioma: en, de, ru (por defecto DEFAULT_LANGUAGE)")
	root.PersistentFlags().StringVar(&env.logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")

	root.AddCommand(
		alcoholCmd(env),
		percentCmd(env),
		alligationCmd(env),
		blendCmd(env),
		calculatorsCmd(env),
		tuiCmd(env),
	)
	return root
}

func (e *appEnv) init(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if e.logLevel != "" {
		level = e.logLevel
	}
	e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: level, Out: stderr}).Zerolog()

	e.pref = i18n.NewPreference(cfg.I18n.DefaultLanguage)
	if e.lang != "" {
		if _, err := e.pref.Set(e.lang); err != nil {
			return err
		}
	}

	e.calc = usecase.NewCalculatorUseCase(e.log)
	e.sheet = sheet.NewSheetUseCase(e.calc, infrapdf.NewMarotoSheetGenerator(cfg.App.Name))
	return nil
}

// writeSheet guarda el PDF si se pidió con --pdf.
func writeSheet(cmd *cobra.Command, path string, pdf []byte) error {
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("guardar pdf: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "PDF: %s\n", path)
	return nil
}
