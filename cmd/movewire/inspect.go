package main

import (
	"os"

	"github.com/movestream/movewire"
	"github.com/movestream/movewire/types"
	"github.com/movestream/movewire/validate"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode an encoded block from a file and report its structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "reading block file")
	}

	var blk types.Block
	if err := blk.UnmarshalBinary(data); err != nil {
		return errors.Wrap(err, "decoding block")
	}

	cmd.Printf("height:       %s\n", blk.Height)
	cmd.Printf("chain id:     %d\n", blk.ChainID)
	if blk.Timestamp != nil {
		cmd.Printf("timestamp:    %d.%09d\n", blk.Timestamp.Seconds, blk.Timestamp.Nanos)
	}
	cmd.Printf("transactions: %d\n", len(blk.Transactions))
	for i, txn := range blk.Transactions {
		marker := ""
		if txn.Unrecognized() {
			marker = " (unrecognized variant)"
		}
		cmd.Printf("  %3d  version %-12s %s%s\n", i, txn.Version, txn.Type, marker)
	}

	err = validate.Block(cmd.Context(), &blk)
	if err == nil {
		cmd.Println("validation:   ok")
		return nil
	}
	violations, ok := movewire.AsValidation(err)
	if !ok {
		return err
	}
	cmd.Printf("validation:   %d violation(s)\n", len(violations))
	for _, v := range violations {
		cmd.Printf("  - %v\n", v)
	}
	return errors.Errorf("block failed validation with %d violation(s)", len(violations))
}
