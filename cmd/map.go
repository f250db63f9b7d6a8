package cmd

import (
	"fmt"
	"strconv"
	"strings"

	config "github.com/inference-gateway/coordpick/config"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
	services "github.com/inference-gateway/coordpick/internal/services"
	cobra "github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map a click on a rendered image to logical coordinates",
	Long: `Map a click position inside a rendered image box to logical coordinates,
without a browser. Positions are in the same units as the box.

Examples:
  coordpick map --click 580,320 --box 100,50,960,540
  coordpick map --mode deferred --natural 3840x2160 --click 10,10 --box 0,0,1280,720`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts, err := mapOptionsFromFlags(cmd, cfg)
		if err != nil {
			return err
		}

		point, err := mapClick(opts)
		if err != nil {
			return err
		}

		text := point.String()
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)

		if copyText, _ := cmd.Flags().GetBool("copy"); copyText {
			if err := services.NewClipboardSink(true).WriteText(cmd.Context(), text); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().String("click", "", "click position X,Y (required)")
	mapCmd.Flags().String("box", "", "rendered image box LEFT,TOP,WIDTH,HEIGHT (required)")
	mapCmd.Flags().String("natural", "", "natural image size WxH (deferred mode)")
	mapCmd.Flags().String("mode", "", "normalization mode: canonical or deferred")
	mapCmd.Flags().Bool("copy", false, "also copy the result to the system clipboard")
	_ = mapCmd.MarkFlagRequired("click")
	_ = mapCmd.MarkFlagRequired("box")
}

type mapOptions struct {
	mode    domain.Mode
	logical domain.Size
	click   geometry.Click
	box     geometry.Box
	natural *domain.Size
}

func mapOptionsFromFlags(cmd *cobra.Command, cfg *config.Config) (mapOptions, error) {
	opts := mapOptions{logical: domain.Size{Width: cfg.Gallery.Width, Height: cfg.Gallery.Height}}

	modeName := cfg.Gallery.Mode
	if m, _ := cmd.Flags().GetString("mode"); m != "" {
		modeName = m
	}
	mode, err := domain.ParseMode(modeName)
	if err != nil {
		return opts, err
	}
	opts.mode = mode

	clickFlag, _ := cmd.Flags().GetString("click")
	click, err := parseFloats(clickFlag, 2)
	if err != nil {
		return opts, fmt.Errorf("invalid --click: %w", err)
	}
	opts.click = geometry.Click{X: click[0], Y: click[1]}

	boxFlag, _ := cmd.Flags().GetString("box")
	box, err := parseFloats(boxFlag, 4)
	if err != nil {
		return opts, fmt.Errorf("invalid --box: %w", err)
	}
	opts.box = geometry.Box{Left: box[0], Top: box[1], Width: box[2], Height: box[3]}

	if naturalFlag, _ := cmd.Flags().GetString("natural"); naturalFlag != "" {
		size, err := parseSize(naturalFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --natural: %w", err)
		}
		opts.natural = &size
	}

	return opts, nil
}

// mapClick runs the mapper for the selected mode
func mapClick(opts mapOptions) (geometry.Point, error) {
	mapper, err := geometry.ForMode(opts.mode, opts.logical)
	if err != nil {
		return geometry.Point{}, err
	}

	entry := &domain.GalleryEntry{Mode: opts.mode}
	if opts.natural != nil {
		entry.SetNaturalSize(*opts.natural)
	}

	return mapper.Map(opts.click, opts.box, entry)
}

// parseFloats parses exactly n comma separated numbers
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, s)
	}

	values := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", strings.TrimSpace(p))
		}
		values[i] = v
	}
	return values, nil
}

// parseSize parses "WxH"
func parseSize(s string) (domain.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return domain.Size{}, fmt.Errorf("expected WxH, got %q", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return domain.Size{}, fmt.Errorf("invalid width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return domain.Size{}, fmt.Errorf("invalid height %q", h)
	}

	return domain.Size{Width: width, Height: height}, nil
}
