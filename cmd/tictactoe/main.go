package main

import (
	"context"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/engine"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/logger"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one command and prints its result as JSON. Caller mistakes are
// reported as {"error": ...} on stdout with a nil return.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := &cli.App{
		Name:      "tictactoe",
		Usage:     "play one tic-tac-toe command against the computer",
		ArgsUsage: "<new_game|make_move|computer_move|check_game> <board-json> [position]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "computer policy: always_win or equal_competition",
				Value:   string(bot.EqualCompetition),
				EnvVars: []string{"AI_MODE"},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "random seed, 0 for time-based",
				EnvVars: []string{"AI_SEED"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Action: func(c *cli.Context) error {
			if err := logger.Init(stderr, c.String("log-level"), "text"); err != nil {
				return err
			}

			policy, err := bot.ParsePolicy(c.String("mode"))
			if err != nil {
				return err
			}

			eng, err := engine.NewEngine(bot.NewMoveCalculator(policy, bot.NewRandomSource(c.Uint64("seed"))))
			if err != nil {
				return err
			}

			result, err := execute(c.Context, eng, c.Args().Slice())
			if err != nil {
				return writeJSON(stdout, proto.ErrorResult{Error: err.Error()})
			}
			return writeJSON(stdout, result)
		},
	}

	return app.RunContext(ctx, args)
}

func execute(ctx context.Context, eng *engine.Engine, args []string) (any, error) {
	if len(args) < 2 {
		return nil, engine.ErrInvalidArguments
	}

	var board []game.PlayerMark
	if err := json.Unmarshal([]byte(args[1]), &board); err != nil {
		return nil, fmt.Errorf("%w: board is not a JSON array of marks: %v", engine.ErrInvalidArguments, err)
	}

	req := engine.Request{Command: args[0], Board: board}
	if len(args) > 2 {
		position, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("%w: position %q is not a number", engine.ErrInvalidArguments, args[2])
		}
		req.Position = &position
	}

	return eng.Execute(ctx, req)
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
