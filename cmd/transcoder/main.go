package main

import (
	"github.com/corpix/transcoder/cli"
	"github.com/corpix/transcoder/config"
	"github.com/corpix/transcoder/di"
	"github.com/corpix/transcoder/metrics"
	"github.com/corpix/transcoder/transcoder"
)

const (
	FlagInput  = "input"
	FlagFormat = "format"
)

func newCli(conf *transcoder.Config, options ...transcoder.Option) *cli.Cli {
	return cli.New(
		cli.WithName("transcoder"),
		cli.WithUsage("Run a file through a reversible transform chain"),
		cli.WithDescription("Loads a file, encodes it with the configured chain, decodes it back and prints both buffers as hex"),
		cli.WithConfigTools(
			conf,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithLogTools(conf.LogConfig),
		cli.WithFlags(cli.Flags{
			&cli.StringFlag{
				Name:    FlagInput,
				Aliases: []string{"i"},
				Usage:   "path to the input file (overrides configuration)",
			},
			&cli.StringFlag{
				Name:    FlagFormat,
				Aliases: []string{"f"},
				Usage:   "report format (text, json, msgpack)",
			},
		}),
		cli.WithAction(func(ctx *cli.Context) error {
			if ctx.IsSet(FlagInput) {
				conf.Input = ctx.String(FlagInput)
			}
			if ctx.IsSet(FlagFormat) {
				conf.Report.Format = ctx.String(FlagFormat)
				err := conf.Report.Validate()
				if err != nil {
					return err
				}
			}

			cont := di.New()
			err := transcoder.Provide(cont, conf, options...)
			if err != nil {
				return err
			}
			return di.Invoke(cont, func(t *transcoder.Transcoder) error {
				_, err := t.RunAndClose(ctx.App.Writer)
				return err
			})
		}),
	)
}

func main() {
	newCli(
		&transcoder.Config{},
		transcoder.WithRegistry(metrics.Default),
	).RunAndExitOnError()
}
