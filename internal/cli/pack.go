package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/cratepack/internal/engine"
	"github.com/piwi3910/cratepack/internal/export"
	"github.com/piwi3910/cratepack/internal/ingest"
	"github.com/piwi3910/cratepack/internal/model"
	"github.com/piwi3910/cratepack/internal/project"
)

type packOpts struct {
	itemsPath    string
	ordersPath   string
	containers   string
	outputDir    string
	formats      string
	wastePercent float64
	projectPath  string
	watch        bool
}

func newPackCmd() *cobra.Command {
	opts := packOpts{outputDir: ".", formats: "csv"}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack orders into containers and write placement output",
		Long: `Pack reads an item catalogue and an order file, packs each order into
containers from a catalogue (built-in defaults unless --containers is given),
and writes one or more output formats: csv, excel, manifest (PDF), labels (PDF).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.projectPath != "" {
				p, err := project.LoadBatchProject(opts.projectPath)
				if err != nil {
					return fmt.Errorf("load project: %w", err)
				}
				opts.applyProject(p)
			}
			if opts.watch {
				return runPackWatch(cmd.Context(), opts)
			}
			return runPack(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.itemsPath, "items", "", "item catalogue file (CSV or Excel)")
	cmd.Flags().StringVar(&opts.ordersPath, "orders", "", "order rows file (CSV or Excel)")
	cmd.Flags().StringVar(&opts.containers, "containers", "", "container catalogue JSON file (built-in catalogue if omitted)")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", opts.outputDir, "output directory")
	cmd.Flags().StringVar(&opts.formats, "format", opts.formats, "comma-separated output formats: csv,excel,manifest,labels")
	cmd.Flags().Float64Var(&opts.wastePercent, "waste", 5, "packing-material waste percentage")
	cmd.Flags().StringVar(&opts.projectPath, "project", "", "scripted batch project TOML file (overrides other input flags)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "re-run automatically when the orders file changes")

	return cmd
}

func (o *packOpts) applyProject(p project.BatchProject) {
	if p.ItemCataloguePath != "" {
		o.itemsPath = p.ItemCataloguePath
	}
	if p.OrdersPath != "" {
		o.ordersPath = p.OrdersPath
	}
	if p.ContainerCataloguePath != "" {
		o.containers = p.ContainerCataloguePath
	}
	if p.OutputDir != "" {
		o.outputDir = p.OutputDir
	}
	if p.WastePercent != 0 {
		o.wastePercent = p.WastePercent
	}
}

// runPack loads inputs, packs every order concurrently, and writes the
// requested output formats. Each order owns its own Order/ContainerResult
// tree; the shared catalogues are read-only for the duration of the fan-out.
func runPack(ctx context.Context, opts packOpts) error {
	logger := loggerFromContext(ctx)

	if opts.itemsPath == "" || opts.ordersPath == "" {
		return fmt.Errorf("pack requires --items and --orders (or --project)")
	}

	itemResult, err := ingest.ReadItemCatalogue(opts.itemsPath)
	if err != nil {
		return fmt.Errorf("read item catalogue: %w", err)
	}
	for _, w := range itemResult.Warnings {
		logger.Warn(w)
	}

	orderResult, err := ingest.ReadOrders(opts.ordersPath, itemResult.Items)
	if err != nil {
		return fmt.Errorf("read orders: %w", err)
	}
	for _, w := range orderResult.Warnings {
		logger.Warn(w)
	}

	catalogue, err := loadCatalogue(opts.containers)
	if err != nil {
		return err
	}

	logger.Info("packing orders", zap.Int("orders", len(orderResult.Orders)), zap.Int("containers", len(catalogue)))

	results, err := packAll(ctx, orderResult.Orders, catalogue, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return writeOutputs(opts, results, logger)
}

// packAll fans out one goroutine per order via errgroup, each goroutine
// running the synchronous, single-threaded engine against its own Order.
func packAll(ctx context.Context, orders []*model.Order, catalogue []model.Container, logger *zap.Logger) ([]*model.OrderResult, error) {
	results := make([]*model.OrderResult, len(orders))

	g, _ := errgroup.WithContext(ctx)
	for i, order := range orders {
		i, order := i, order
		g.Go(func() error {
			or := model.NewOrderResult(order)
			if err := engine.RunOrder(or, catalogue); err != nil {
				logger.Error("order could not be packed", zap.String("order_id", order.ID), zap.Error(err))
				return fmt.Errorf("order %s: %w", order.ID, err)
			}
			results[i] = or
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func loadCatalogue(path string) ([]model.Container, error) {
	if path == "" {
		return model.DefaultCatalogue(), nil
	}
	catalogue, err := ingest.ReadContainerCatalogue(path)
	if err != nil {
		return nil, fmt.Errorf("read container catalogue: %w", err)
	}
	return catalogue, nil
}

func writeOutputs(opts packOpts, results []*model.OrderResult, logger *zap.Logger) error {
	formats := strings.Split(opts.formats, ",")
	for i := range formats {
		formats[i] = strings.TrimSpace(formats[i])
	}

	for _, format := range formats {
		switch format {
		case "csv":
			if err := writeCSVOutput(opts.outputDir, results); err != nil {
				return err
			}
		case "excel":
			if err := export.WriteExcel(filepath.Join(opts.outputDir, "placements.xlsx"), results); err != nil {
				return fmt.Errorf("write excel: %w", err)
			}
		case "manifest":
			for _, or := range results {
				path := filepath.Join(opts.outputDir, fmt.Sprintf("manifest-%s.pdf", or.Order.ID))
				if err := export.ManifestPDF(path, or); err != nil {
					return fmt.Errorf("write manifest for order %s: %w", or.Order.ID, err)
				}
			}
		case "labels":
			if err := export.LabelsPDF(filepath.Join(opts.outputDir, "labels.pdf"), results); err != nil {
				return fmt.Errorf("write labels: %w", err)
			}
		case "":
			continue
		default:
			return fmt.Errorf("unknown output format %q", format)
		}
	}

	logger.Info("packing complete", zap.Int("orders", len(results)), zap.String("output", opts.outputDir))
	return nil
}

func writeCSVOutput(dir string, results []*model.OrderResult) error {
	f, err := os.Create(filepath.Join(dir, "placements.csv"))
	if err != nil {
		return fmt.Errorf("create placements.csv: %w", err)
	}
	defer f.Close()
	return export.WriteCSV(f, results)
}
