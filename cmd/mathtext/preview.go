package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mathtext "github.com/riverfjs/mathtext-go"
	"github.com/riverfjs/mathtext-go/internal/normalize"
	"github.com/riverfjs/mathtext-go/internal/preview"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		out     string
		display bool
		width   int
		size    float64
	)
	cmd := &cobra.Command{
		Use:   "preview [text]",
		Short: "Draw the Unicode rendering of text into a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("--out is required")
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			// 位图只能画 Unicode 文本，忽略配置中的 mathml 策略
			e, err := a.engine(mathtext.WithStrategy(normalize.StrategyUnicode))
			if err != nil {
				return err
			}
			defer e.Close()

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			opts := preview.Options{Width: width, FontSize: size}
			if err := preview.EncodePNG(f, e.Render(text, display), opts); err != nil {
				_ = f.Close()
				return fmt.Errorf("write preview: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.WithField("file", out).Info("preview written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG file")
	cmd.Flags().BoolVar(&display, "display", false, "render every formula in display style")
	cmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	cmd.Flags().Float64Var(&size, "font-size", 16, "font size in points")
	return cmd
}
