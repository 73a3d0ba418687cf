package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tealvm/teal/errors"
	"github.com/tealvm/teal/literal"
	"github.com/tealvm/teal/token"
)

var renderCmd = &cobra.Command{
	Use:   "render <hex>...",
	Short: "Render canonical bytes into a chosen literal form",
	Long: `Render reads each argument as 0x-prefixed hex, the canonical spelling of
a byte value, and prints the equivalent literal in the form selected by
--form.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := parseForm(viper.GetString("form"))
		if err != nil {
			return err
		}
		for _, arg := range args {
			b, err := literal.DecodeHex(arg)
			if err != nil {
				return err
			}
			out, err := literal.Render(b, form)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return nil
	},
}

// parseForm maps a --form flag value to a literal form.
func parseForm(name string) (token.Form, error) {
	switch name {
	case "hex":
		return token.HEX, nil
	case "base32", "b32":
		return token.BASE32, nil
	case "base64", "b64":
		return token.BASE64, nil
	case "string", "str":
		return token.STRING, nil
	case "addr", "address":
		return token.ADDR, nil
	default:
		return "", errors.MalformedLiteralf("unknown output form %q", name)
	}
}
