package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"podmerge/internal/domain"
	"podmerge/internal/scheduler"
	"podmerge/internal/service"
)

func newEnqueueCommand(app *appContext) *cobra.Command {
	enqueueCmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Queue a merge for the worker",
	}

	var groupFlags []string
	var keepOld bool

	podcastsCmd := &cobra.Command{
		Use:   "podcasts TARGET ALIAS...",
		Short: "Queue a podcast merge",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := podcastRequest(args, groupFlags, keepOld)
			if err != nil {
				return err
			}
			return app.enqueue(cmd, &domain.MergeRequest{
				Kind:     domain.KindPodcast,
				TargetID: req.Podcasts[0],
				AliasIDs: req.Podcasts[1:],
				Groups:   req.Groups,
				KeepOld:  req.KeepOld,
			})
		},
	}
	podcastsCmd.Flags().StringArrayVar(&groupFlags, "group", nil, "Comma separated duplicate episodes, merged into the first (repeatable)")
	podcastsCmd.Flags().BoolVar(&keepOld, "keep-old", false, "Keep the merged objects instead of deleting them")

	var episodesKeepOld bool
	episodesCmd := &cobra.Command{
		Use:   "episodes TARGET ALIAS...",
		Short: "Queue an episode merge",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := episodeRequest(args, episodesKeepOld)
			if err != nil {
				return err
			}
			return app.enqueue(cmd, &domain.MergeRequest{
				Kind:     domain.KindEpisode,
				TargetID: req.Target,
				AliasIDs: req.Aliases,
				KeepOld:  req.KeepOld,
			})
		},
	}
	episodesCmd.Flags().BoolVar(&episodesKeepOld, "keep-old", false, "Keep the merged objects instead of deleting them")

	enqueueCmd.AddCommand(podcastsCmd, episodesCmd)
	return enqueueCmd
}

func (a *appContext) enqueue(cmd *cobra.Command, req *domain.MergeRequest) error {
	if err := a.ensure(); err != nil {
		return err
	}
	if err := a.queue.Enqueue(cmd.Context(), req); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "queued %s merge request %d\n", req.Kind, req.ID)
	return nil
}

func newWorkerCommand(app *appContext) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Process queued merge requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.ensure(); err != nil {
				return err
			}
			processor := &lockedProcessor{
				processor: app.queue,
				lockFile:  app.cfg.Merge.LockFile,
				timeout:   app.cfg.Merge.LockTimeout,
			}

			if once {
				stats, err := processor.ProcessPending(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderQueueStats(stats))
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}

			app.logger.Info("starting merge worker",
				"interval", app.cfg.Queue.Interval,
				"batch_size", app.cfg.Queue.BatchSize,
			)
			sched := scheduler.NewScheduler(processor, app.cfg.Queue.Interval, app.cfg.Queue.Timeout, app.logger)
			if err := sched.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Process one batch and exit")
	return cmd
}

// lockedProcessor holds the merge lock for each batch.
type lockedProcessor struct {
	processor *service.QueueProcessor
	lockFile  string
	timeout   time.Duration
}

func (p *lockedProcessor) ProcessPending(ctx context.Context) (*domain.QueueStats, error) {
	var stats *domain.QueueStats
	err := withMergeLock(ctx, p.lockFile, p.timeout, func() error {
		var err error
		stats, err = p.processor.ProcessPending(ctx)
		return err
	})
	return stats, err
}

func newResolveCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve UUID",
		Short: "Show which object a merged id now points to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseUUIDs(args)
			if err != nil {
				return err
			}
			if err := app.ensure(); err != nil {
				return err
			}

			merged, err := app.mergedUUIDs.Resolve(cmd.Context(), ids[0])
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was not merged\n", ids[0])
				return nil
			}
			if err != nil {
				return err
			}

			rows := [][]string{{merged.UUID.String(), string(merged.OwnerKind), merged.OwnerID.String(), merged.CreatedAt.Format(time.RFC3339)}}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(
				[]string{"Merged ID", "Kind", "Resolves To", "Merged At"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
