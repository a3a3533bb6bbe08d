package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"podmerge/internal/domain"
)

func newPodcastsCommand(app *appContext) *cobra.Command {
	var groupFlags []string
	var keepOld bool

	cmd := &cobra.Command{
		Use:   "podcasts TARGET ALIAS...",
		Short: "Merge podcasts into the first one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := podcastRequest(args, groupFlags, keepOld)
			if err != nil {
				return err
			}
			if err := app.ensure(); err != nil {
				return err
			}
			req.KeepOld = req.KeepOld || app.cfg.Merge.KeepOld

			return app.runMerge(cmd, func(ctx context.Context) (*domain.MergeStats, error) {
				return app.merges.MergePodcasts(ctx, req)
			})
		},
	}

	cmd.Flags().StringArrayVar(&groupFlags, "group", nil, "Comma separated duplicate episodes, merged into the first (repeatable)")
	cmd.Flags().BoolVar(&keepOld, "keep-old", false, "Keep the merged objects instead of deleting them")
	return cmd
}

func newEpisodesCommand(app *appContext) *cobra.Command {
	var keepOld bool

	cmd := &cobra.Command{
		Use:   "episodes TARGET ALIAS...",
		Short: "Merge episodes into the first one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := episodeRequest(args, keepOld)
			if err != nil {
				return err
			}
			if err := app.ensure(); err != nil {
				return err
			}
			req.KeepOld = req.KeepOld || app.cfg.Merge.KeepOld

			return app.runMerge(cmd, func(ctx context.Context) (*domain.MergeStats, error) {
				return app.merges.MergeEpisodes(ctx, req)
			})
		},
	}

	cmd.Flags().BoolVar(&keepOld, "keep-old", false, "Keep the merged objects instead of deleting them")
	return cmd
}

// runMerge holds the merge lock around merge and reports the outcome.
func (a *appContext) runMerge(cmd *cobra.Command, merge func(ctx context.Context) (*domain.MergeStats, error)) error {
	ctx := cmd.Context()
	var stats *domain.MergeStats

	err := withMergeLock(ctx, a.cfg.Merge.LockFile, a.cfg.Merge.LockTimeout, func() error {
		var err error
		stats, err = merge(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("merge failed: %w, no changes committed", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderStats(stats))
	fmt.Fprintln(out)
	fmt.Fprintln(out, mergeSummary(stats))
	return nil
}

func podcastRequest(args, groupFlags []string, keepOld bool) (domain.PodcastMergeRequest, error) {
	podcasts, err := parseUUIDs(args)
	if err != nil {
		return domain.PodcastMergeRequest{}, err
	}
	groups, err := parseGroups(groupFlags)
	if err != nil {
		return domain.PodcastMergeRequest{}, err
	}
	return domain.PodcastMergeRequest{
		Podcasts: podcasts,
		Groups:   groups,
		KeepOld:  keepOld,
	}, nil
}

func episodeRequest(args []string, keepOld bool) (domain.EpisodeMergeRequest, error) {
	ids, err := parseUUIDs(args)
	if err != nil {
		return domain.EpisodeMergeRequest{}, err
	}
	return domain.EpisodeMergeRequest{
		Target:  ids[0],
		Aliases: ids[1:],
		KeepOld: keepOld,
	}, nil
}
