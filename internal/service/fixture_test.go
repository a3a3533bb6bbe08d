package service

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"podmerge/internal/domain"
	"podmerge/internal/service/mocks"
)

// mockStores holds one mock per repository used by the merge engine.
type mockStores struct {
	podcasts      *mocks.MockPodcastStore
	episodes      *mocks.MockEpisodeStore
	urls          *mocks.MockAttachmentStore
	slugs         *mocks.MockAttachmentStore
	mergedUUIDs   *mocks.MockMergedUUIDStore
	states        *mocks.MockEpisodeStateStore
	subscriptions *mocks.MockSubscriptionStore
	history       *mocks.MockHistoryStore
	publishers    *mocks.MockPublisherStore
	txManager     *mocks.MockTransactionManager
	logger        *slog.Logger
}

func newMockStores(ctrl *gomock.Controller) *mockStores {
	m := &mockStores{
		podcasts:      mocks.NewMockPodcastStore(ctrl),
		episodes:      mocks.NewMockEpisodeStore(ctrl),
		urls:          mocks.NewMockAttachmentStore(ctrl),
		slugs:         mocks.NewMockAttachmentStore(ctrl),
		mergedUUIDs:   mocks.NewMockMergedUUIDStore(ctrl),
		states:        mocks.NewMockEpisodeStateStore(ctrl),
		subscriptions: mocks.NewMockSubscriptionStore(ctrl),
		history:       mocks.NewMockHistoryStore(ctrl),
		publishers:    mocks.NewMockPublisherStore(ctrl),
		txManager:     mocks.NewMockTransactionManager(ctrl),
		logger:        slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})),
	}

	m.urls.EXPECT().Kind().Return(domain.KindURL).AnyTimes()
	m.slugs.EXPECT().Kind().Return(domain.KindSlug).AnyTimes()

	run := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	m.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.txManager.EXPECT().WithSavepoint(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()

	return m
}

func (m *mockStores) stores() Stores {
	return Stores{
		Podcasts:      m.podcasts,
		Episodes:      m.episodes,
		URLs:          m.urls,
		Slugs:         m.slugs,
		MergedUUIDs:   m.mergedUUIDs,
		States:        m.states,
		Subscriptions: m.subscriptions,
		History:       m.history,
		Publishers:    m.publishers,
	}
}

func (m *mockStores) engine() *Engine {
	return NewEngine(m.stores(), m.txManager, m.logger)
}

// expectGeneric expects the generic relations of owner to be listed empty.
func (m *mockStores) expectGeneric(owner domain.Ref) {
	m.urls.EXPECT().ListByOwner(gomock.Any(), owner).Return(nil, nil)
	m.slugs.EXPECT().ListByOwner(gomock.Any(), owner).Return(nil, nil)
	m.mergedUUIDs.EXPECT().ListByOwner(gomock.Any(), owner).Return(nil, nil)
}

// expectEmptyEpisode expects an episode alias without any references.
func (m *mockStores) expectEmptyEpisode(ep *domain.Episode) {
	m.history.EXPECT().ListByEpisode(gomock.Any(), ep.ID).Return(nil, nil)
	m.expectGeneric(ep.Ref())
}

// expectEmptyPodcast expects a podcast alias without any references.
func (m *mockStores) expectEmptyPodcast(p *domain.Podcast) {
	m.episodes.EXPECT().ListByPodcast(gomock.Any(), p.ID).Return(nil, nil)
	m.subscriptions.EXPECT().ListByPodcast(gomock.Any(), p.ID).Return(nil, nil)
	m.history.EXPECT().ListByPodcast(gomock.Any(), p.ID).Return(nil, nil)
	m.publishers.EXPECT().ListByPodcast(gomock.Any(), p.ID).Return(nil, nil)
	m.expectGeneric(p.Ref())
}

func newPodcast(title string) *domain.Podcast {
	return &domain.Podcast{
		ID:          uuid.New(),
		PodcastInfo: domain.PodcastInfo{Title: title},
	}
}

func newEpisode(podcastID uuid.UUID, title string) *domain.Episode {
	return &domain.Episode{
		ID:          uuid.New(),
		PodcastID:   podcastID,
		EpisodeInfo: domain.EpisodeInfo{Title: title},
	}
}

func newState(userID int64, ep *domain.Episode) *domain.EpisodeState {
	return &domain.EpisodeState{
		ID:        uuid.New(),
		UserID:    userID,
		PodcastID: ep.PodcastID,
		EpisodeID: ep.ID,
	}
}

// feed is a mergeable kind without a registered store.
type feed struct {
	id uuid.UUID
}

func (f *feed) Ref() domain.Ref { return domain.Ref{Kind: "feed", ID: f.id} }

func (f *feed) Scope() string { return "" }

func (f *feed) Info() any { return &struct{}{} }
