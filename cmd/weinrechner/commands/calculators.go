package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jhoicas/weinrechner/internal/application/dto"
	"github.com/jhoicas/weinrechner/internal/application/usecase"
	"github.com/jhoicas/weinrechner/internal/domain"
	"github.com/jhoicas/weinrechner/internal/domain/cellar"
	"github.com/jhoicas/weinrechner/internal/domain/i18n"
	"github.com/jhoicas/weinrechner/internal/interfaces/tui"
)

func alcoholCmd(env *appEnv) *cobra.Command {
	var in dto.AlcoholConvertRequest
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "alcohol",
		Short: "Convertir alcohol entre g/l y % vol",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := i18n.Catalog(env.Language()).Calculators[cellar.CalcAlcohol]
			out := env.calc.ConvertAlcohol(in)
			w := cmd.OutOrStdout()
			printRow(w, labels.Results[i18n.ResultVol], out.VolDisplay)
			printRow(w, labels.Results[i18n.ResultGL], out.GLDisplay)
			if pdfPath == "" {
				return nil
			}
			pdf, _, err := env.sheet.Alcohol(cmd.Context(), env.Language(), in)
			if err != nil {
				return err
			}
			return writeSheet(cmd, pdfPath, pdf)
		},
	}
	cmd.Flags().StringVar(&in.GL, "gl", "", "alcohol en g/l")
	cmd.Flags().StringVar(&in.Vol, "vol", "", "alcohol en % vol")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "guardar la hoja en este archivo PDF")
	return cmd
}

func percentCmd(env *appEnv) *cobra.Command {
	var in dto.PercentSRRequest
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "percent",
		Short: "Reserva dulce por porcentaje (% auf / % in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := i18n.Catalog(env.Language()).Calculators[cellar.CalcPercent]
			out := env.calc.PercentSweetReserve(in)
			w := cmd.OutOrStdout()
			printRow(w, labels.Results[i18n.ResultAuf], out.AufDisplay)
			printRow(w, labels.Results[i18n.ResultIn], out.InDisplay)
			if pdfPath == "" {
				return nil
			}
			pdf, _, err := env.sheet.Percent(cmd.Context(), env.Language(), in)
			if err != nil {
				return err
			}
			return writeSheet(cmd, pdfPath, pdf)
		},
	}
	cmd.Flags().StringVar(&in.Percent, "percent", "", "porcentaje de reserva dulce")
	cmd.Flags().StringVar(&in.Liters, "liters", "", "litros de vino base")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "guardar la hoja en este archivo PDF")
	return cmd
}

func alligationCmd(env *appEnv) *cobra.Command {
	var in dto.AlligationRequest
	var pdfPath string
	cmd := &cobra.Command{
		Use:   "alligation",
		Short: "Litros de reserva dulce para llegar al azúcar objetivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := env.Language()
			labels := i18n.Catalog(lang).Calculators[cellar.CalcAlligation]
			out, err := env.calc.AlligateSweetReserve(lang, in)
			if err != nil {
				return reportValidation(cmd.ErrOrStderr(), err)
			}
			w := cmd.OutOrStdout()
			printRow(w, labels.Results[i18n.ResultSRLiters], out.SRLitersDisplay)
			printRow(w, labels.Results[i18n.ResultTotalLiters], out.TotalLitersDisplay)
			if pdfPath == "" {
				return nil
			}
			pdf, _, err := env.sheet.Alligation(cmd.Context(), lang, in)
			if err != nil {
				return err
			}
			return writeSheet(cmd, pdfPath, pdf)
		},
	}
	cmd.Flags().StringVar(&in.SRGL, "sr-gl", "", "azúcar de la reserva dulce (g/l)")
	cmd.Flags().StringVar(&in.WineGL, "wine-gl", "", "azúcar del vino base (g/l)")
	cmd.Flags().StringVar(&in.WineLiters, "wine-liters", "", "litros de vino base")
	cmd.Flags().StringVar(&in.TargetGL, "target-gl", "", "azúcar objetivo (g/l)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "guardar la hoja en este archivo PDF")
	return cmd
}

func blendCmd(env *appEnv) *cobra.Command {
	var wines []string
	var pdfPath string
	cmd := &cobra.Command{
		Use:     "blend",
		Short:   "Media ponderada de hasta cinco lotes",
		Example: "  weinrechner blend --wine 10:50:100 --wine 10:30:80",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseWines(wines)
			if err != nil {
				return err
			}
			lang := env.Language()
			labels := i18n.Catalog(lang).Calculators[cellar.CalcBlend]
			out, err := env.calc.BlendBatches(lang, in)
			if err != nil {
				return reportValidation(cmd.ErrOrStderr(), err)
			}
			w := cmd.OutOrStdout()
			printRow(w, labels.Results[i18n.ResultBlendLiters], out.TotalLitersDisplay)
			printRow(w, labels.Results[i18n.ResultAvgSugar], out.AvgSugarDisplay)
			printRow(w, labels.Results[i18n.ResultAvgAlcohol], out.AvgAlcoholDisplay)
			if pdfPath == "" {
				return nil
			}
			pdf, _, err := env.sheet.Blend(cmd.Context(), lang, in)
			if err != nil {
				return err
			}
			return writeSheet(cmd, pdfPath, pdf)
		},
	}
	cmd.Flags().StringArrayVar(&wines, "wine", nil, "lote litros:azúcar:alcohol (repetible, máx. 5)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "guardar la hoja en este archivo PDF")
	return cmd
}

func calculatorsCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "calculators",
		Short: "Listar calculadoras",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "ID\tROUTE\tTRIGGER\tTITLE")
			for _, c := range env.calc.Calculators(env.Language()) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Route, c.Trigger, c.Title)
			}
			return nil
		},
	}
}

func tuiCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Formularios interactivos en la terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.New(env.calc, env.pref), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func printRow(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s: %s\n", label, value)
}

// parseWines interpreta "litros:azúcar:alcohol"; los campos omitidos quedan vacíos.
func parseWines(specs []string) (dto.BlendRequest, error) {
	if len(specs) > cellar.MaxBatches {
		return dto.BlendRequest{}, fmt.Errorf("%w: máximo %d lotes", domain.ErrInvalidInput, cellar.MaxBatches)
	}
	req := dto.BlendRequest{Wines: make([]dto.BatchDTO, 0, len(specs))}
	for _, s := range specs {
		parts := strings.Split(s, ":")
		if len(parts) > 3 {
			return dto.BlendRequest{}, fmt.Errorf("%w: lote %q", domain.ErrInvalidInput, s)
		}
		parts = append(parts, "", "")
		req.Wines = append(req.Wines, dto.BatchDTO{Liter: parts[0], Sugar: parts[1], Alcohol: parts[2]})
	}
	return req, nil
}

// reportValidation imprime los errores por campo y devuelve el error original.
func reportValidation(w io.Writer, err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Fprintf(w, "%s: %s\n", f.Field, f.Message)
		}
	}
	return err
}
