package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

// charsetFlag binds --charset and resolves it against the configured default
type charsetFlag struct {
	name string
}

func (f *charsetFlag) register(c *cobra.Command) {
	c.Flags().StringVar(&f.name, "charset", "", "IANA charset name (default from encoding.charset)")
}

func (f *charsetFlag) resolve(cmd *cobra.Command, a *app) (encoding.Encoding, error) {
	name := a.settings.Charset
	if cmd.Flags().Changed("charset") {
		name = f.name
	}
	return stringx.LookupEncoding(name)
}

func newEncodeCmd(a *app) *cobra.Command {
	var cs charsetFlag

	c := &cobra.Command{
		Use:     "encode [text...]",
		Short:   "Encode text in a charset and print it as Base64",
		Example: `  textx encode --charset ISO-8859-1 "é"`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			enc, err := cs.resolve(cmd, a)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			out, err := stringx.EncodeState(text, enc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}

	cs.register(c)
	return c
}

func newDecodeCmd(a *app) *cobra.Command {
	var cs charsetFlag

	c := &cobra.Command{
		Use:     "decode <base64>",
		Short:   "Decode Base64 produced by encode",
		Example: `  textx decode --charset ISO-8859-1 6Q==`,
		Args:    cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			enc, err := cs.resolve(cmd, a)
			if err != nil {
				return err
			}
			out, err := stringx.DecodeState(args[0], enc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}),
	}

	cs.register(c)
	return c
}

func newLengthCmd(a *app) *cobra.Command {
	var cs charsetFlag

	c := &cobra.Command{
		Use:     "length [text...]",
		Short:   "Print the byte length of text in a charset",
		Example: `  textx length --charset UTF-16 hello`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			enc, err := cs.resolve(cmd, a)
			if err != nil {
				return err
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			n, err := stringx.ByteLength(text, enc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		}),
	}

	cs.register(c)
	return c
}
