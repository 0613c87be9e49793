package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"route-sheet-service/internal/api/dto"
	"route-sheet-service/internal/platform/logging"
	"route-sheet-service/internal/services"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.WithError(err).Fatal("quote")
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "quote",
		Usage: "price a route sheet JSON file and optionally check it against a truck",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "route sheet JSON (same shape as the route_sheet field of POST /quotes); - reads stdin",
				Required: true,
			},
			&cli.Float64Flag{Name: "max-weight", Usage: "truck weight limit in kg"},
			&cli.Float64Flag{Name: "max-volume", Usage: "truck volume limit in m3"},
			&cli.BoolFlag{Name: "json", Usage: "print the quote as JSON"},
			&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
		},
		Action: func(c *cli.Context) error {
			if err := logging.Setup(os.Stderr, c.String("log-level"), "text"); err != nil {
				return err
			}
			return run(c.Context, c, out)
		},
	}
}

func run(ctx context.Context, c *cli.Context, out io.Writer) error {
	sheet, err := readRouteSheet(c.String("file"))
	if err != nil {
		return err
	}

	var truck *dto.CapacityRequest
	if c.IsSet("max-weight") || c.IsSet("max-volume") {
		if !c.IsSet("max-weight") || !c.IsSet("max-volume") {
			return errors.New("quote: --max-weight and --max-volume must be given together")
		}
		truck = &dto.CapacityRequest{MaxWeight: c.Float64("max-weight"), MaxVolume: c.Float64("max-volume")}
	}

	q, err := services.QuoteRouteSheet(ctx, sheet.Input(), truck.Limits())
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewQuoteResponse(q))
	}

	for _, t := range q.Trips {
		fmt.Fprintf(out, "%-40s %-9s %10.2f km %12.2f\n", t.Path, t.Kind, t.DistanceKm, t.Cost)
	}
	fmt.Fprintf(out, "total cost:   %.2f\n", q.TotalCost)
	fmt.Fprintf(out, "total weight: %.2f kg\n", q.TotalWeight)
	fmt.Fprintf(out, "total volume: %.2f m3\n", q.TotalVolume)
	if q.Fit != nil {
		verdict := "fits"
		if !q.Fit.Fits {
			verdict = "exceeds truck capacities"
		}
		fmt.Fprintf(out, "truck (%.2f kg, %.2f m3): %s\n", q.Fit.MaxWeight, q.Fit.MaxVolume, verdict)
	}
	return nil
}

func readRouteSheet(path string) (dto.RouteSheetRequest, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return dto.RouteSheetRequest{}, fmt.Errorf("read route sheet %q: %w", path, err)
	}

	var sheet dto.RouteSheetRequest
	if err := json.Unmarshal(b, &sheet); err != nil {
		return dto.RouteSheetRequest{}, fmt.Errorf("parse route sheet %q: %w", path, err)
	}
	return sheet, nil
}
