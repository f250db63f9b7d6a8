package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	errgroup "golang.org/x/sync/errgroup"

	domain "github.com/inference-gateway/coordpick/internal/domain"
	logger "github.com/inference-gateway/coordpick/internal/logger"
	services "github.com/inference-gateway/coordpick/internal/services"
	cobra "github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize INPUT...",
	Short: "Stretch images to the logical resolution and write them as PNG",
	Long: `Normalize one or more images (URLs, data URLs or local files) to the logical
resolution exactly like the gallery does in canonical mode, and write each
result to <name>_<W>x<H>.png in the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		outDir, _ := cmd.Flags().GetString("out")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		normalizer, err := services.NewCanonicalNormalizer(services.NewImageService(cfg.Fetch), cfg.Gallery)
		if err != nil {
			return err
		}

		logical := domain.Size{Width: cfg.Gallery.Width, Height: cfg.Gallery.Height}
		return normalizeAll(cmd.Context(), normalizer, args, outDir, logical, concurrency, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringP("out", "o", ".", "output directory")
	normalizeCmd.Flags().IntP("concurrency", "j", 4, "number of images processed at once")
}

// normalizeAll processes inputs concurrently. Every input is attempted; the
// error reports how many failed.
func normalizeAll(ctx context.Context, normalizer domain.Normalizer, inputs []string, outDir string, logical domain.Size, concurrency int, out io.Writer) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		mu     sync.Mutex
		failed int
	)

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	names := outputNames(inputs, logical)
	for i, input := range inputs {
		g.Go(func() error {
			target := filepath.Join(outDir, names[i])
			err := normalizeOne(gctx, normalizer, input, target)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				logger.Error("Failed to normalize image", "input", input, "error", err)
				_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", input, err)
				return nil
			}
			_, _ = fmt.Fprintf(out, "OK   %s -> %s\n", input, target)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed to normalize", failed, len(inputs))
	}
	return nil
}

func normalizeOne(ctx context.Context, normalizer domain.Normalizer, input, target string) error {
	result, err := normalizer.Normalize(ctx, domain.Source{Kind: services.ClassifyRef(input), Ref: input})
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, result.Raster.Data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// outputNames derives unique <name>_<W>x<H>.png file names for inputs
func outputNames(inputs []string, size domain.Size) []string {
	seen := make(map[string]int, len(inputs))
	names := make([]string, len(inputs))
	for i, input := range inputs {
		base := inputBaseName(input, i)
		seen[base]++
		if n := seen[base]; n > 1 {
			base = fmt.Sprintf("%s-%d", base, n)
		}
		names[i] = fmt.Sprintf("%s_%s.png", base, size)
	}
	return names
}

func inputBaseName(input string, index int) string {
	var name string
	switch services.ClassifyRef(input) {
	case domain.SourceData:
		name = ""
	case domain.SourceURL:
		if u, err := url.Parse(input); err == nil {
			name = path.Base(u.Path)
		}
	default:
		name = filepath.Base(strings.TrimPrefix(input, "file://"))
	}

	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == "/" {
		name = fmt.Sprintf("image-%d", index+1)
	}
	return name
}
