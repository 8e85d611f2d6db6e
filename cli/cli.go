package cli

import (
	"fmt"

	"github.com/corpix/transcoder/config"
	"github.com/corpix/transcoder/log"

	cli "github.com/urfave/cli/v2"
)

type (
	BoolFlag        = cli.BoolFlag
	Command         = cli.Command
	Commands        = cli.Commands
	Context         = cli.Context
	DurationFlag    = cli.DurationFlag
	Flag            = cli.Flag
	Flags           = []Flag
	IntFlag         = cli.IntFlag
	PathFlag        = cli.PathFlag
	StringFlag      = cli.StringFlag
	StringSliceFlag = cli.StringSliceFlag

	App        = cli.App
	BeforeFunc = cli.BeforeFunc
	AfterFunc  = cli.AfterFunc
	ActionFunc = cli.ActionFunc
	Action     = func(*Context) error

	Config          = config.Config
	ConfigContainer = config.Container

	Cli struct {
		*App
		Config *ConfigContainer
	}

	Option func(*Cli)
)

const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"

	DefaultConfigPath = "config.yml"
)

var NewStringSlice = cli.NewStringSlice

//

func WithComposition(options ...Option) Option {
	return func(c *Cli) {
		for _, option := range options {
			option(c)
		}
	}
}

//

func WithName(name string) Option {
	return func(c *Cli) {
		c.Name = name
	}
}

func WithDescription(desc string) Option {
	return func(c *Cli) {
		c.Description = desc
	}
}

func WithUsage(usage string) Option {
	return func(c *Cli) {
		c.Usage = usage
	}
}

func WithVersion(version string) Option {
	return func(c *Cli) {
		c.Version = version
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Cli) {
		c.Config = config.New(cfg)
	}
}

//

func WithFlags(flags Flags) Option {
	return func(c *Cli) {
		c.Flags = append(c.Flags, flags...)
	}
}

func WithCommands(commands Commands) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, commands...)
	}
}

//

func ActionChain(current Action, next Action) Action {
	if current != nil {
		return func(ctx *Context) error {
			err := current(ctx)
			if err != nil {
				return err
			}
			return next(ctx)
		}
	}
	return next
}

func WithBefore(fn BeforeFunc) Option {
	return func(c *Cli) {
		c.Before = ActionChain(c.Before, fn)
	}
}
func WithAfter(fn AfterFunc) Option {
	return func(c *Cli) {
		c.After = ActionChain(c.After, fn)
	}
}
func WithAction(fn ActionFunc) Option {
	return func(c *Cli) {
		c.Action = ActionChain(c.Action, fn)
	}
}

//

// ConfigFromContext loads cfg from --config paths, explicitly passed paths
// must exist.
func ConfigFromContext(ctx *Context, cfg Config, unmarshaler config.Unmarshaler) error {
	return config.LoadFiles(
		cfg,
		ctx.StringSlice(FlagConfig),
		ctx.IsSet(FlagConfig),
		unmarshaler,
	)
}

func WithConfigTools(cfg Config, unmarshaler config.Unmarshaler, marshaler config.Marshaler) Option {
	return WithComposition(
		WithConfig(cfg),
		WithBefore(func(ctx *Context) error {
			err := ConfigFromContext(ctx, cfg, unmarshaler)
			if err != nil {
				return err
			}
			return config.Finalize(cfg)
		}),
		func(c *Cli) {
			c.Flags = append(c.Flags, &StringSliceFlag{
				Name:    FlagConfig,
				Aliases: []string{"c"},
				Usage:   "path to application configuration file",
				Value:   NewStringSlice(DefaultConfigPath),
			})

			commands := Commands{}

			if _, ok := c.Config.Unwrap().(config.Defaultable); ok {
				commands = append(commands, &Command{
					Name:    "show-default",
					Aliases: []string{"sd"},
					Usage:   "Show default configuration",
					Action: func(ctx *Context) error {
						defaults := c.Config.EmptyClone()
						err := config.Postprocess(
							defaults,
							config.WithDefaults(),
						)
						if err != nil {
							return err
						}
						return config.ToWriter(ctx.App.Writer, marshaler)(defaults)
					},
				})
			}

			if _, ok := c.Config.Unwrap().(config.Validatable); ok {
				commands = append(commands, &Command{
					Name:    "validate",
					Aliases: []string{"v"},
					Usage:   "Validate configuration and exit",
					Action: func(ctx *Context) error {
						// configuration was loaded and validated by Before
						fmt.Fprintln(ctx.App.Writer, "configuration is valid")
						return nil
					},
				})
			}

			commands = append(commands, &Command{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Show current configuration",
				Action: func(ctx *Context) error {
					return config.ToWriter(ctx.App.Writer, marshaler)(cfg)
				},
			})

			c.Commands = append(c.Commands, &Command{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Configuration tools",
				Subcommands: commands,
			})
		},
	)
}

func WithLogTools(cfg func() *log.Config, options ...log.Option) Option {
	return WithComposition(
		WithFlags(Flags{
			&StringFlag{
				Name:    FlagLogLevel,
				Aliases: []string{"l"},
				Usage:   "logging level (debug, info, warn, error)",
			},
		}),
		WithBefore(func(ctx *Context) error {
			level := ctx.String(FlagLogLevel)
			if level == "" {
				level = cfg().Level
			}

			return log.Init(level, options...)
		}),
	)
}

func New(options ...Option) *Cli {
	c := &Cli{
		App: &App{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}
