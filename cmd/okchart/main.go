// okchart renders chart descriptions to SVG, PNG or PDF files,
// and converts simple SVG drawings to PNG or PDF.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/benoitkugler/okchart/axis"
	"github.com/benoitkugler/okchart/chart"
	"github.com/benoitkugler/okchart/config"
	"github.com/benoitkugler/okchart/svgcanvas"
	"github.com/benoitkugler/okchart/svgpdf"
	"github.com/benoitkugler/okchart/svgraster"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set at build time.
	Version = "dev"

	outputPath string
	svgMode    string
	errorMode  string
)

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "okchart",
		Short: "Chart rendering tool",
		Long: `okchart draws line charts described in TOML, YAML or JSON files,
with linear (integer or date) and segmented axes.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warning", "Log verbosity: debug, info, warning, error")

	viper.SetEnvPrefix("OKCHART")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newRenderCmd(), newConvertCmd(), versionCmd)
	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the okchart version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "okchart "+Version)
	},
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	logger := log.StandardLogger()
	logger.SetLevel(level)
	axis.SetLogger(logger)
	chart.SetLogger(logger)
	config.SetLogger(logger)
	svgcanvas.SetLogger(logger)
	svgraster.SetLogger(logger)
	svgpdf.SetLogger(logger)
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart description",
		Long: `Render a chart description to the output file.
The format (svg, png or pdf) is chosen from the output extension.`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: SVG on stdout)")
	cmd.Flags().StringVar(&svgMode, "mode", "full", "SVG output: full document or partial (elements only)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	mode, err := svgcanvas.ParseMode(svgMode)
	if err != nil {
		return err
	}
	desc, err := config.Load(args[0])
	if err != nil {
		return err
	}
	c, err := desc.Build()
	if err != nil {
		return fmt.Errorf("invalid chart %s: %w", args[0], err)
	}
	canvas, err := c.Record()
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}
	log.WithFields(log.Fields{
		"chart":  args[0],
		"size":   canvas.Size(),
		"output": outputPath,
	}).Info("chart rendered")

	if outputPath == "" {
		return canvas.WriteSVG(cmd.OutOrStdout(), mode)
	}
	return writeCanvas(canvas, outputPath, mode)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [drawing.svg]",
		Short: "Convert a SVG drawing to PNG or PDF",
		Long: `Convert a SVG drawing made of lines, rectangles, circles, paths and texts,
such as the ones produced by the render command.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (.png or .pdf)")
	cmd.Flags().StringVar(&errorMode, "errors", "warn", "Handling of unsupported SVG input: ignore, warn or strict")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	mode, err := svgcanvas.ParseErrorMode(errorMode)
	if err != nil {
		return err
	}
	canvas, err := svgcanvas.ReadSVGFile(args[0], mode)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	return writeCanvas(canvas, outputPath, svgcanvas.Full)
}
