package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"

	"icalval/prop"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	app := &cli.App{
		Name:  "icalval",
		Usage: "Decode and encode RFC5545 property values.",
		Commands: []*cli.Command{
			decodeCommand(),
			encodeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a raw property value by property name.",
		ArgsUsage: "<value-text>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Value:   "text",
				Usage:   "property or parameter name selecting the codec (e.g. DTSTART, RRULE)",
			},
			&cli.StringFlag{
				Name:  "tzid",
				Usage: "timezone identifier hint for temporal values",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one value argument")
			}
			name := c.String("name")
			v, err := prop.DecodeIn(name, c.Args().First(), c.String("tzid"))
			if err != nil {
				return fmt.Errorf("decode %s: %w", name, err)
			}
			fmt.Printf("%T %v\n", v, v)
			params := v.Parameters()
			for _, key := range params.Keys() {
				val, _ := params.Get(key)
				fmt.Printf("  %s=%s\n", key, val)
			}
			return nil
		},
	}
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode a native text value under a property name's codec.",
		ArgsUsage: "<native-text>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Value:   "text",
				Usage:   "property or parameter name selecting the codec",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one value argument")
			}
			name := c.String("name")
			out, err := prop.Encode(name, c.Args().First())
			if err != nil {
				return fmt.Errorf("encode %s: %w", name, err)
			}
			fmt.Println(out)
			return nil
		},
	}
}
