package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"

	"github.com/psantana5/tempo/pkg/bench"
)

// Workload is a named built-in function whose calls can be swept.
type Workload struct {
	Name string
	Args string
	Desc string
	Fn   bench.Func
}

var workloads = []Workload{
	{
		Name: "sleep",
		Args: "duration",
		Desc: "Sleep for the given duration (e.g. 50ms, or a number of seconds)",
		Fn:   sleepWorkload,
	},
	{
		Name: "spin",
		Args: "iterations",
		Desc: "Busy-loop for the given number of iterations",
		Fn:   spinWorkload,
	},
	{
		Name: "blake2b",
		Args: "bytes",
		Desc: "BLAKE2b-256 hash of a buffer of the given size",
		Fn:   blake2bWorkload,
	},
}

func lookupWorkload(name string) (Workload, error) {
	for _, w := range workloads {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("unknown workload %q (see `tempo workloads`)", name)
}

// sleepWorkload sleeps for the duration given by its single argument and
// returns the slept seconds.
func sleepWorkload(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sleep expects 1 argument, got %d", len(args))
	}
	d, err := toDuration(args[0])
	if err != nil {
		return nil, fmt.Errorf("sleep: %w", err)
	}
	time.Sleep(d)
	return d.Seconds(), nil
}

// spinWorkload burns CPU for n iterations and returns a checksum so the
// loop cannot be optimized away.
func spinWorkload(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("spin expects 1 argument, got %d", len(args))
	}
	n, err := toInt(args[0])
	if err != nil {
		return nil, fmt.Errorf("spin: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("spin: iterations must not be negative, got %d", n)
	}
	var sum uint64
	for i := 0; i < n; i++ {
		sum = sum*31 + uint64(i)
	}
	return sum, nil
}

// blake2bWorkload hashes a deterministic buffer of the given size and
// returns the first 8 bytes of the digest, hex encoded.
func blake2bWorkload(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("blake2b expects 1 argument, got %d", len(args))
	}
	size, err := toInt(args[0])
	if err != nil {
		return nil, fmt.Errorf("blake2b: %w", err)
	}
	if size < 0 {
		return nil, fmt.Errorf("blake2b: size must not be negative, got %d", size)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i)
	}
	digest := blake2b.Sum256(buf)
	return hex.EncodeToString(digest[:8]), nil
}

// toDuration coerces a sweep value into a duration: strings are parsed
// with time.ParseDuration, numbers are seconds.
func toDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case string:
		d, err := time.ParseDuration(x)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", x, err)
		}
		return d, nil
	case time.Duration:
		return x, nil
	case int:
		return time.Duration(x) * time.Second, nil
	case float64:
		return time.Duration(x * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("cannot use %T as a duration", v)
	}
}

// toInt coerces a sweep value into an int.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		return int(x), nil
	default:
		return 0, fmt.Errorf("cannot use %T as an integer", v)
	}
}

// workloadsCmd represents the workloads command
var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List built-in workloads",
	Long:  `List the built-in workloads that can be swept with "tempo run".`,
	RunE:  runWorkloads,
}

func init() {
	rootCmd.AddCommand(workloadsCmd)
}

func runWorkloads(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Args", "Description")
	for _, w := range workloads {
		table.Append(w.Name, w.Args, w.Desc)
	}
	table.Render()
	return nil
}
