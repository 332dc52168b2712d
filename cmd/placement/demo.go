package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/placement/internal/logger"
	"github.com/born-ml/placement/internal/nn"
	"github.com/born-ml/placement/internal/placement"
	"github.com/born-ml/placement/internal/tensor"
)

type demoOptions struct {
	device  string
	mode    string
	metrics bool
}

func demoCmd() *cli.Command {
	var opts demoOptions
	return &cli.Command{
		Name:  "demo",
		Usage: "Run a model that creates noise in its forward pass on a device",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "device",
				Aliases:     []string{"d"},
				Usage:       "device to place the model and input on",
				Value:       "cuda:0",
				Destination: &opts.device,
			},
			&cli.StringFlag{
				Name:        "mode",
				Usage:       "none (unwrapped), context or ambient",
				Value:       placement.ModeContext,
				Destination: &opts.mode,
			},
			&cli.BoolFlag{
				Name:        "metrics",
				Usage:       "print placement metrics after the run",
				Destination: &opts.metrics,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDemo(ctx, outWriter(cmd), opts)
		},
	}
}

func runDemo(ctx context.Context, w io.Writer, opts demoOptions) error {
	dev, err := tensor.ParseDevice(opts.device)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := placement.NewMetrics(reg)

	model := nn.NewNoisyAffine(ctx)
	nn.MoveTo[float32](model, dev)

	forward := model.ForwardOp()
	switch opts.mode {
	case "none":
	case placement.ModeContext:
		forward = forward.EnsureDevice(placement.WithMetrics(metrics))
	case placement.ModeAmbient:
		forward = forward.EnsureDefaultDevice(placement.WithMetrics(metrics))
	default:
		return fmt.Errorf("unknown mode %q (want none, context or ambient)", opts.mode)
	}

	x, err := tensor.FromSlice[float32](ctx, []float32{1}, tensor.Shape{}, tensor.OnDevice(dev))
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug("demo: running forward", "op", forward.Name(), "mode", opts.mode, "device", dev.String())
	fmt.Fprintf(w, "%s: %s\n", forward.Name(), forward.Doc())

	out, err := forward.Call(ctx, x)
	var mismatch *tensor.DeviceMismatchError
	switch {
	case errors.As(err, &mismatch):
		fmt.Fprintf(w, "device mismatch: %v\n", err)
	case err != nil:
		return err
	default:
		fmt.Fprintf(w, "result %.4f on %s (input on %s, ambient default %s/%s)\n",
			out.Item(), out.Device(), x.Device(), tensor.DefaultDevice(), tensor.DefaultDType())
	}

	if opts.metrics {
		return writeMetrics(w, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
