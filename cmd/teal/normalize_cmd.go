package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tealvm/teal/literal"
	"github.com/tealvm/teal/token"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <literal>...",
	Short: "Normalize byte literals to canonical bytes",
	Long: `Normalize scans each argument as a byte literal (hex, base32, base64,
quoted string, or address) and prints the canonical bytes in the output
form selected by --form. Multi-argument spellings like "base64 <payload>"
are consumed as one literal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := parseForm(viper.GetString("form"))
		if err != nil {
			return err
		}
		label := color.New(color.FgCyan)
		if !stdoutIsTerminal() {
			label.DisableColor()
		}
		var result *multierror.Error
		rest := args
		for len(rest) > 0 {
			tok, consumed, err := token.Scan(rest)
			if err != nil {
				result = multierror.Append(result, err)
				rest = rest[1:]
				continue
			}
			rest = rest[consumed:]
			log.Debug().Str("form", string(tok.Form)).Str("text", tok.Text).Msg("scanned literal")
			b, err := literal.Decode(tok)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			out, err := literal.Render(b, form)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			label.Printf("%s\t", tok.Form)
			fmt.Println(out)
		}
		return result.ErrorOrNil()
	},
}
