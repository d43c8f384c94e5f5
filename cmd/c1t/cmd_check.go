package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/c1t/c1"
	"github.com/dhamidi/c1t/c1/parser"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newCheckCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check C1 source files for syntax errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rejected := 0
			for _, path := range args {
				err := c1.CheckFile(path)
				if err == nil {
					continue
				}
				var syntaxErr *parser.SyntaxError
				if !errors.As(err, &syntaxErr) {
					return err
				}
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, syntaxErr)
				rejected++
			}

			if watch {
				return watchFiles(args)
			}
			if rejected > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d of %d files rejected", rejected, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and re-check files on change")

	return cmd
}

func watchFiles(paths []string) error {
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("c1t.watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := c1.CheckFile(ev.Name); err != nil {
				log.Errorf("%s: %s", ev.Name, err)
			} else {
				log.Infof("%s: ok", ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err)
		}
	}
}
