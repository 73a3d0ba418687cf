package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tealvm/teal/address"
	"github.com/tealvm/teal/literal"
)

var addrCmd = &cobra.Command{
	Use:   "addr",
	Short: "Convert between public keys and address strings",
}

var addrEncodeCmd = &cobra.Command{
	Use:   "encode <hex32>",
	Short: "Encode a 32-byte public key as a 58-character address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := literal.DecodeHex(args[0])
		if err != nil {
			return err
		}
		s, err := address.Encode(pk)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var addrDecodeCmd = &cobra.Command{
	Use:   "decode <addr58>",
	Short: "Decode a 58-character address back to public key bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pk, err := address.Decode(args[0])
		if err != nil {
			return err
		}
		log.Debug().Int("bytes", len(pk)).Msg("checksum verified")
		fmt.Println(literal.EncodeHex(pk))
		return nil
	},
}

func init() {
	addrCmd.AddCommand(addrEncodeCmd)
	addrCmd.AddCommand(addrDecodeCmd)
}
