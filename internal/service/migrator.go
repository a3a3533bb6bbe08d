package service

import (
	"context"
	"fmt"
	"log/slog"

	"dario.cat/mergo"

	"podmerge/internal/domain"
)

// Migrator moves every reference from alias objects to a primary object
// and then deletes the aliases.
type Migrator struct {
	registry   *Registry
	reassign   *reassignHook
	deletion   *deletionHook
	bestEffort *bestEffort
	logger     *slog.Logger
}

// Merge merges aliases into primary in order and saves primary once. All
// objects are checked before anything is written. Attributes left blank on
// primary are taken from the first alias that has them.
func (m *Migrator) Merge(ctx context.Context, primary domain.Mergeable, aliases []domain.Mergeable, keepOld bool) (domain.Mergeable, error) {
	ref := primary.Ref()
	entity, ok := m.registry.Entity(ref.Kind)
	if !ok {
		return nil, &domain.UnsupportedTypeError{Op: "merge", Kind: ref.Kind}
	}
	for _, alias := range aliases {
		aref := alias.Ref()
		if aref.Kind != ref.Kind {
			return nil, &domain.TypeMismatchError{Want: ref.Kind, Got: aref.Kind}
		}
		if aref.ID == ref.ID {
			return nil, &domain.SelfMergeError{Kind: ref.Kind, ID: ref.ID}
		}
	}

	for _, alias := range aliases {
		logger := m.logger.With("primary", ref.String(), "alias", alias.Ref().String())
		logger.Debug("migrating references")

		if err := m.migrate(ctx, primary, alias); err != nil {
			return nil, err
		}

		if err := mergo.Merge(primary.Info(), alias.Info()); err != nil {
			return nil, fmt.Errorf("fill attributes from %s: %w", alias.Ref(), err)
		}

		if keepOld {
			continue
		}
		if err := m.deletion.BeforeDelete(ctx, primary, alias); err != nil {
			return nil, err
		}
		if err := entity.Delete(ctx, alias); err != nil {
			return nil, fmt.Errorf("delete %s: %w", alias.Ref(), err)
		}
		logger.Debug("deleted alias")
	}

	if err := entity.Save(ctx, primary); err != nil {
		return nil, fmt.Errorf("save %s: %w", ref, err)
	}
	return primary, nil
}

func (m *Migrator) migrate(ctx context.Context, primary, alias domain.Mergeable) error {
	kind := primary.Ref().Kind

	for _, rel := range m.registry.Reverse(kind) {
		if err := m.moveAll(ctx, rel, primary, alias, nil); err != nil {
			return err
		}
	}

	for _, rel := range m.registry.ManyToMany(kind) {
		detach := func(ctx context.Context, obj domain.Related) error {
			return rel.Detach(ctx, obj, alias)
		}
		if err := m.moveAll(ctx, rel, primary, alias, detach); err != nil {
			return err
		}
	}

	for _, rel := range m.registry.Generic(kind) {
		if err := m.moveAll(ctx, rel, primary, alias, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) moveAll(
	ctx context.Context,
	rel Relation,
	primary, alias domain.Mergeable,
	detach func(ctx context.Context, obj domain.Related) error,
) error {
	objs, err := rel.List(ctx, alias)
	if err != nil {
		return fmt.Errorf("list %s of %s: %w", rel.Name(), alias.Ref(), err)
	}

	for _, obj := range objs {
		if detach != nil {
			if err := detach(ctx, obj); err != nil {
				return fmt.Errorf("detach %s from %s: %w", rel.Name(), alias.Ref(), err)
			}
		}
		if err := rel.Repoint(obj, primary); err != nil {
			return err
		}
		if err := m.reassign.Reassign(ctx, obj, primary); err != nil {
			return err
		}
		err := m.bestEffort.save(ctx, rel.Name(),
			func(ctx context.Context) error { return rel.Save(ctx, obj) },
			func(ctx context.Context) error { return rel.Discard(ctx, obj) },
		)
		if err != nil {
			return err
		}
	}
	return nil
}
