package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/katalvlaran/supplynet/cluster"
	"github.com/katalvlaran/supplynet/network"
)

// WriteJSON encodes doc with two-space indentation into path on fs. The
// document is written to a sibling temporary file first and renamed into
// place, so readers never observe a partial file.
func WriteJSON(fs afero.Fs, path string, doc *Document) error {
	var next = path + ".next"

	var f, err = fs.OpenFile(next, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.WithMessage(err, "creating report file")
	}
	var enc = json.NewEncoder(f)
	enc.SetIndent("", "  ")

	if err = enc.Encode(doc); err != nil {
		_ = f.Close()
		err = errors.WithMessage(err, "encode(document)")
	} else if err = f.Close(); err != nil {
		err = errors.WithMessage(err, "closing report file")
	} else if err = fs.Rename(next, path); err != nil {
		err = errors.WithMessage(err, "renaming next => current")
	}

	return err
}

// WriteText renders out as console tables: the cost matrix, the grants of
// every city, warehouse levels before and after redistribution, transfers,
// clusters and query answers.
func WriteText(w io.Writer, out *network.Outcome) error {
	if _, err := fmt.Fprintln(w, "Cost Matrix:"); err != nil {
		return err
	}
	var costs = tablewriter.NewWriter(w)
	var header = []any{"City"}
	for _, wh := range out.Warehouses {
		header = append(header, wh.Name)
	}
	costs.Header(header...)
	for i, c := range out.Cities {
		var row = []string{c.Name}
		for j := range out.Warehouses {
			v, _ := out.CostMatrix.At(i, j)
			row = append(row, humanize.CommafWithDigits(v, 2))
		}
		if err := costs.Append(row); err != nil {
			return err
		}
	}
	if err := costs.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Resource Allocations:"); err != nil {
		return err
	}
	var grants = tablewriter.NewWriter(w)
	grants.Header("City", "Priority", "Warehouse", "Units", "Unmet")
	for _, c := range out.Allocation.Cities {
		if len(c.Allocations) == 0 {
			if err := grants.Append([]string{c.Name, c.Priority.String(), "-", "0", humanize.Comma(int64(c.Unmet))}); err != nil {
				return err
			}
			continue
		}
		for k, a := range c.Allocations {
			var unmet string
			if k == len(c.Allocations)-1 {
				unmet = humanize.Comma(int64(c.Unmet))
			}
			if err := grants.Append([]string{
				c.Name, c.Priority.String(), out.WarehouseName(a.WarehouseID),
				humanize.Comma(int64(a.Units)), unmet,
			}); err != nil {
				return err
			}
		}
	}
	if err := grants.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Warehouse Levels:"); err != nil {
		return err
	}
	var levels = tablewriter.NewWriter(w)
	levels.Header("Warehouse", "Capacity", "After Allocation", "After Redistribution")
	for i, wh := range out.Warehouses {
		if err := levels.Append([]string{
			wh.Name,
			humanize.Comma(int64(wh.Capacity)),
			humanize.Comma(int64(out.AfterAllocation[i].Remaining)),
			humanize.Comma(int64(out.AfterRedistribution[i].Remaining)),
		}); err != nil {
			return err
		}
	}
	if err := levels.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "Resource Transfers:"); err != nil {
		return err
	}
	for _, t := range out.Transfers {
		if _, err := fmt.Fprintln(w, "  "+t.String()); err != nil {
			return err
		}
	}

	if err := writeClusters(w, "Initial Clusters:", out.ClustersBefore); err != nil {
		return err
	}
	if err := writeClusters(w, "Clusters After Merging:", out.ClustersAfter); err != nil {
		return err
	}

	for _, q := range out.Queries {
		if _, err := fmt.Fprintf(w, "Are City %d and City %d in the same cluster? %t\n", q.A, q.B, q.SameCluster); err != nil {
			return err
		}
	}

	return nil
}

func writeClusters(w io.Writer, title string, cs []cluster.Cluster) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	var table = tablewriter.NewWriter(w)
	table.Header("Root", "Cities")
	for _, c := range cs {
		if err := table.Append([]string{strconv.Itoa(c.Root), fmt.Sprint(c.Members)}); err != nil {
			return err
		}
	}

	return table.Render()
}
