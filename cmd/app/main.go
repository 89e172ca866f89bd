package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli"

	"github.com/1F3A5/go-gridreel/pkg/colors"
	"github.com/1F3A5/go-gridreel/pkg/config"
	"github.com/1F3A5/go-gridreel/pkg/core"
	p "github.com/1F3A5/go-gridreel/pkg/core/progress"
	"github.com/1F3A5/go-gridreel/pkg/logger"
)

var app = cli.NewApp()
var log = logger.Log

var sharedFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "output, o",
		Value: config.DefaultOutputFolder,
		Usage: "output folder",
	},
	cli.Float64Flag{
		Name:  "framerate, r",
		Value: config.DefaultFramerate,
		Usage: "animation framerate",
	},
	cli.StringFlag{
		Name:  "scheme, s",
		Usage: "colour scheme yaml file",
	},
	cli.BoolFlag{
		Name:  "keep-frames, k",
		Usage: "keep intermediate frame images after assembly",
	},
	cli.IntFlag{
		Name:  "size",
		Value: config.DefaultCanvasSize,
		Usage: "square frame size in pixels",
	},
	cli.BoolFlag{
		Name:  "strict",
		Usage: "treat ffmpeg failure as an error",
	},
}

func init() {
	app.Name = "gridreel"
	app.Usage = "A grid animation to gif renderer"
	app.UsageText = "gridreel [command] name"
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:    "demo",
			Aliases: []string{"d"},
			Usage:   "Render a tiny colour-cycling animation",
			Flags:   sharedFlags,
			Action:  runDemo,
		},
		{
			Name:    "life",
			Aliases: []string{"l"},
			Usage:   "Render Conway's Game of Life from a random seed",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "steps, n",
					Value: 120,
					Usage: "number of generations",
				},
				cli.IntFlag{
					Name:  "grid, g",
					Value: 64,
					Usage: "grid width and height in cells",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "random seed, 0 means time-based",
				},
			}, sharedFlags...),
			Action: runLife,
		},
	}
}

func getName(c *cli.Context, fallback string) string {
	if n := c.Args().Get(0); n != "" {
		return n
	}
	return fallback
}

func newRenderer(c *cli.Context, name string, fallback colors.Scheme) (*core.Renderer, error) {
	scheme := fallback
	if path := c.String("scheme"); path != "" {
		var err error
		scheme, err = colors.LoadScheme(path)
		if err != nil {
			return nil, err
		}
	}
	opts := []core.Option{
		core.WithOutputFolder(c.String("output")),
		core.WithCanvasSize(c.Int("size")),
	}
	if c.Bool("strict") {
		opts = append(opts, core.WithStrictEncoder())
	}
	return core.New(name, scheme, opts...)
}

func runDemo(c *cli.Context) error {
	name := getName(c, "demo")
	scheme := colors.Scheme{
		0: colors.RGB255(255, 255, 255), // white
		1: colors.RGB255(255, 0, 0),     // red
		2: colors.RGB255(0, 255, 0),     // green
		3: colors.RGB255(0, 0, 255),     // blue
	}
	r, err := newRenderer(c, name, scheme)
	if err != nil {
		return err
	}

	// cycle every configured colour through the center cell
	values := make([]int, 0, len(scheme))
	for v := range scheme {
		values = append(values, v)
	}
	sort.Ints(values)

	const size = 3
	grid := make([][]int, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}
	for _, v := range values {
		grid[size/2][size/2] = v
		cv, err := r.DrawFrame(grid)
		if err != nil {
			return err
		}
		if err := r.Persist(cv); err != nil {
			return err
		}
	}

	return finish(c, r)
}

func runLife(c *cli.Context) error {
	name := getName(c, "life")
	scheme := colors.Scheme{
		0: colors.RGB255(15, 15, 35),  // dead
		1: colors.RGB255(0, 255, 70),  // alive
	}
	r, err := newRenderer(c, name, scheme)
	if err != nil {
		return err
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	log.Debugf("Life seed: %d\n", seed)

	steps := c.Int("steps")
	world := newLife(c.Int("grid"), c.Int("grid"), 0.3, rnd)
	p.ProgressReset(steps, "Rendering... ")
	for i := 0; i < steps; i++ {
		cv, err := r.DrawFrame(world.cells)
		if err != nil {
			return err
		}
		if err := r.Persist(cv); err != nil {
			return err
		}
		world.step()
		p.Add(1)
	}
	p.Finish()

	return finish(c, r)
}

func finish(c *cli.Context, r *core.Renderer) error {
	err := r.Finalize(context.Background(), c.Float64("framerate"), !c.Bool("keep-frames"))
	if err != nil {
		return err
	}
	fmt.Println()
	log.Infof("Wrote %s", r.Layout().AnimationPath())
	return nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
