package cmdopts

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shirou/gopsutil/v4/disk"
	"gopkg.in/yaml.v3"
)

type InventoryCommand struct {
	owner  *Options
	All    bool   `short:"a" long:"all" description:"Include pseudo, duplicate and inaccessible filesystems"`
	Format string `long:"format" description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
}

func NewInventoryCommand(owner *Options) *InventoryCommand {
	return &InventoryCommand{owner: owner}
}

// Partition is one mounted filesystem as reported by the host.
type Partition struct {
	Device     string `json:"device" yaml:"device"`
	Mountpoint string `json:"mountpoint" yaml:"mountpoint"`
	Fstype     string `json:"fstype" yaml:"fstype"`
	Opts       string `json:"opts" yaml:"opts"`
}

// Execute lists mounted partitions, a quick way to see which devices a
// resolution could possibly land on.
func (cmd *InventoryCommand) Execute([]string) error {
	parts, err := disk.Partitions(cmd.All)
	if err != nil {
		cmd.owner.CompleteCommand(ExitCodeIOError)
		return err
	}
	inventory := make([]Partition, 0, len(parts))
	for _, p := range parts {
		inventory = append(inventory, Partition{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Opts:       strings.Join(p.Opts, ","),
		})
	}
	if err := cmd.print(inventory); err != nil {
		cmd.owner.CompleteCommand(ExitCodeIOError)
		return err
	}
	cmd.owner.CompleteCommand(ExitCodeOK)
	return nil
}

func (cmd *InventoryCommand) print(inventory []Partition) error {
	w := cmd.owner.OutputWriter
	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(inventory)
	case "yaml":
		yamlData, err := yaml.Marshal(inventory)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(yamlData))
		return err
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DEVICE\tMOUNTPOINT\tFSTYPE\tOPTS")
		for _, p := range inventory {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Device, p.Mountpoint, p.Fstype, p.Opts)
		}
		return tw.Flush()
	}
}
