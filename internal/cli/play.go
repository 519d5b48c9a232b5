package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/service"
	"github.com/spf13/cobra"
)

var errBadMove = errors.New(`expected "row col"`)

func newPlayCmd(app *App) *cobra.Command {
	var (
		human string
		size  int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match in the terminal",
		Long: `Play a match against the AI. Enter moves as "row col" (1-based),
or "q" to give up. BLACK moves first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			player, err := humanPlayer(app, human)
			if err != nil {
				return err
			}

			games := service.NewGamePlayService(app.Logger, size, app.Records)

			return play(cmd, games, player)
		},
	}

	cmd.Flags().StringVar(&human, "human", "", "Human color: BLACK or WHITE (default: opposite of game.ai-role)")
	cmd.Flags().IntVar(&size, "size", app.Config.Game.BoardSize, "Board size, odd and at least 5")

	return cmd
}

func humanPlayer(app *App, flag string) (gomoku.Player, error) {
	if flag == "" {
		return app.Config.Game.HumanRole()
	}

	return gomoku.ParsePlayer(flag)
}

func play(cmd *cobra.Command, games service.GamePlayService, human gomoku.Player) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	match, err := games.StartMatch(ctx, human)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	defer games.CloseMatch(match.ID)

	fmt.Fprintf(out, "match %s: you play %s\n", match.ID, match.Human)
	if err = render(out, match); err != nil {
		return err
	}

	lines, scanErr := readLines(ctx, cmd.InOrStdin())
	for match.IsOngoing() {
		if ctx.Err() != nil {
			fmt.Fprintln(out, "interrupted")
			return nil
		}

		fmt.Fprint(out, "your move (row col): ")

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
		case line, ok = <-lines:
		}

		// a line and the cancellation can arrive together
		if ctx.Err() != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "interrupted")
			return nil
		}

		if !ok {
			fmt.Fprintln(out)
			return scanErr()
		}

		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			fmt.Fprintln(out, "you gave up")
			return nil
		}

		row, col, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(out, "invalid move: %v\n", err)
			continue
		}

		next, err := games.MakeTurn(ctx, match.ID, row, col)
		if err != nil {
			fmt.Fprintf(out, "rejected: %v\n", err)
			continue
		}

		match = next
		if err = render(out, match); err != nil {
			return err
		}
	}

	switch match.Winner {
	case entity.PlayerTie:
		fmt.Fprintln(out, "tie: the board is full")
	case string(match.Human):
		fmt.Fprintln(out, "you win")
	default:
		fmt.Fprintln(out, "the AI wins")
	}

	return nil
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The error func may only be called once lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, func() error) {
	lines := make(chan string)

	var scanErr error
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	return lines, func() error { return scanErr }
}

func parseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != 2 {
		return 0, 0, errBadMove
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errBadMove
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errBadMove
	}

	return row, col, nil
}

var marks = map[gomoku.PointState]string{
	gomoku.Empty:      ".",
	gomoku.BlackStone: "X",
	gomoku.WhiteStone: "O",
}

// render draws the match snapshot with 1-based coordinates. The last move is
// bracketed.
func render(out io.Writer, match *entity.Match) error {
	var grid [][]gomoku.PointState
	if err := json.Unmarshal([]byte(match.Board), &grid); err != nil {
		return fmt.Errorf("failed to decode board: %w", err)
	}

	var sb strings.Builder

	sb.WriteString("   ")
	for col := range grid {
		fmt.Fprintf(&sb, "%3d", col+1)
	}
	sb.WriteString("\n")

	for row, cells := range grid {
		fmt.Fprintf(&sb, "%3d", row+1)
		for col, cell := range cells {
			mark := marks[cell]
			if last := match.LastMove; last != nil && last.Row == row+1 && last.Col == col+1 {
				fmt.Fprintf(&sb, "[%s]", mark)
				continue
			}
			fmt.Fprintf(&sb, "%3s", mark)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
