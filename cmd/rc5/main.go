package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"rc5-go/pkg/log"
	"rc5-go/pkg/rc5"
)

var Version = "dev"

func main() {
	app := &cli.App{
		Name:    "rc5",
		Usage:   "RC5 block cipher tool",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a config file (default search: ./rc5.yaml, $HOME/.rc5-go)"},
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "hex-encoded secret key (0-255 bytes)"},
			&cli.IntFlag{Name: "word-size", Aliases: []string{"w"}, Usage: "word size in bits (32 or 64)"},
			&cli.IntFlag{Name: "rounds", Aliases: []string{"r"}, Usage: "number of rounds (0-255)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:        "encode",
				Usage:       "encrypt a hex-encoded buffer",
				ArgsUsage:   "<hex-plaintext>",
				Description: "Encrypts the buffer block by block. Its length must be a multiple of the block size (2 words).",
				Flags:       ioFlags(),
				Action: func(c *cli.Context) error {
					return run(c, "encode", rc5.EncodeWith)
				},
			},
			{
				Name:        "decode",
				Usage:       "decrypt a hex-encoded buffer",
				ArgsUsage:   "<hex-ciphertext>",
				Description: "Decrypts the buffer block by block. Its length must be a multiple of the block size (2 words).",
				Flags:       ioFlags(),
				Action: func(c *cli.Context) error {
					return run(c, "decode", rc5.DecodeWith)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func ioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "in", Usage: "read the hex input from a file instead of the argument"},
		&cli.StringFlag{Name: "out", Usage: "write the hex output to a file instead of stdout"},
	}
}

func run(c *cli.Context, name string, op bufferOp) error {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(c, cfg)
	log.SetDebug(cfg.Verbose)

	hexIn, err := readInput(c, name)
	if err != nil {
		return err
	}

	out, err := process(cfg, name, hexIn, op)
	if err != nil {
		return err
	}

	if path := c.String("out"); path != "" {
		return os.WriteFile(path, []byte(out+"\n"), 0o644)
	}
	fmt.Println(out)
	return nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(c *cli.Context, cfg *Config) {
	if c.IsSet("key") {
		cfg.Key = c.String("key")
	}
	if c.IsSet("word-size") {
		cfg.WordBits = c.Int("word-size")
	}
	if c.IsSet("rounds") {
		cfg.Rounds = c.Int("rounds")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
}

func readInput(c *cli.Context, name string) (string, error) {
	if path := c.String("in"); path != "" {
		if c.NArg() != 0 {
			return "", fmt.Errorf("%s: --in and a positional argument are mutually exclusive", name)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	if c.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one hex argument", name)
	}
	return c.Args().First(), nil
}
