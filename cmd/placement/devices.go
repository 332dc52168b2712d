package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/placement/internal/devices"
	"github.com/born-ml/placement/internal/tensor"
)

func devicesCmd() *cli.Command {
	var asJSON bool
	return &cli.Command{
		Name:  "devices",
		Usage: "List the compute devices found on this host",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print JSON instead of a table",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			devs, err := devices.New().Discover(ctx)
			if err != nil {
				return fmt.Errorf("discover devices: %w", err)
			}
			return printDevices(cmd, devs, asJSON)
		},
	}
}

type devicesReport struct {
	Default string         `json:"default"`
	Devices []devices.Info `json:"devices"`
}

func printDevices(cmd *cli.Command, devs []devices.Info, asJSON bool) error {
	w := outWriter(cmd)
	def := tensor.DefaultDevice().String()

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(devicesReport{Default: def, Devices: devs})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Device", "Name", "Cores", "Memory", "Source", "Default")
	for _, d := range devs {
		cores := ""
		if d.Cores > 0 {
			cores = strconv.Itoa(d.Cores)
		}
		isDefault := ""
		if d.ID == def {
			isDefault = "*"
		}
		if err := table.Append(d.ID, d.Name, cores, formatBytes(d.MemoryBytes), d.Source, isDefault); err != nil {
			return err
		}
	}
	return table.Render()
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n == 0 {
		return ""
	}
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
