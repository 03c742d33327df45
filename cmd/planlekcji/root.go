package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rhyrak/planlekcji/internal/config"
	"github.com/rhyrak/planlekcji/internal/csvio"
	"github.com/rhyrak/planlekcji/internal/editor"
	"github.com/rhyrak/planlekcji/internal/logger"
	"github.com/rhyrak/planlekcji/pkg/model"
)

// app is owned by the root command and shared by its subcommands.
type app struct {
	cfgPath string
	store   *csvio.Store
	editor  *editor.Controller
	log     logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "planlekcji",
		Short:             "Weekly lesson plan editor",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "planlekcji.yaml", "configuration file")
	root.AddCommand(
		newShowCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newDeleteCmd(a),
		newEditCmd(a),
	)
	return root
}

// setup loads configuration and the schedule. Load problems are reported
// as notices; the schedule is usable either way.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = logger.New("planlekcji")
	a.store = csvio.NewStore(cfg.Schedule.Path, cfg.Schedule.LessonTimes, logger.New("store"))
	schedule, err := a.store.Load()
	if err != nil {
		a.log.Warnf("schedule load: %v", err)
		notice(cmd.ErrOrStderr(), err)
	}
	a.editor = editor.New(schedule, a.store, logger.New("editor"))
	return nil
}

func notice(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "notice: %v\n", err)
}

// parseCell reads the <row> <day> arguments.
func parseCell(args []string) (int, model.Day, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q: %w", args[0], err)
	}
	if row < 1 || row > model.TimeSlotCount {
		return 0, 0, fmt.Errorf("%w: %d", editor.ErrRowOutOfRange, row)
	}
	day, err := model.ParseDay(args[1])
	if err != nil {
		return 0, 0, err
	}
	return row, day, nil
}
