package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jellysync/internal/config"
	"jellysync/internal/jellyfin"
	"jellysync/internal/library"
)

// reconcileLibrary converges one declared library: create it when missing,
// then always push the full options object. Creation and the options write
// are two sequential calls, never one atomic operation.
func (r *Reconciler) reconcileLibrary(ctx context.Context, lib config.Library) Outcome {
	log := r.logger.With("library", lib.Name)
	log.Info("reconciling library")

	existing, err := r.findLibrary(ctx, lib.Name)
	if err != nil {
		log.Error("failed to list libraries", "error", err)
		return Outcome{Kind: KindLibrary, Name: lib.Name, Action: ActionNone, Detail: err.Error()}
	}

	action := ActionUpdate
	if existing == nil {
		action = ActionCreate
		if err := r.createLibrary(ctx, lib); err != nil {
			log.Error("failed to create library", "error", err)
			return Outcome{Kind: KindLibrary, Name: lib.Name, Action: action, Detail: err.Error()}
		}
		// Re-fetch to learn the identifier the server assigned.
		existing, err = r.findLibrary(ctx, lib.Name)
		if err != nil {
			log.Error("failed to re-list libraries after create", "error", err)
			return Outcome{Kind: KindLibrary, Name: lib.Name, Action: action, Detail: err.Error()}
		}
		if existing == nil && !r.client.DryRun() {
			detail := "library not visible after creation"
			log.Error(detail)
			return Outcome{Kind: KindLibrary, Name: lib.Name, Action: action, Detail: detail}
		}
	} else {
		log.Info("library exists, updating options", "item_id", existing.ItemID)
	}

	itemID := ""
	if existing != nil {
		itemID = existing.ItemID
	}
	if err := r.applyLibraryOptions(ctx, itemID, lib, log); err != nil {
		log.Error("failed to apply library options", "error", err)
		return Outcome{Kind: KindLibrary, Name: lib.Name, Action: action, Detail: err.Error()}
	}

	return Outcome{Kind: KindLibrary, Name: lib.Name, Action: action, OK: true}
}

// findLibrary fetches the library list and matches by exact, case-sensitive name.
func (r *Reconciler) findLibrary(ctx context.Context, name string) (*jellyfin.VirtualFolder, error) {
	folders, err := r.client.VirtualFolders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range folders {
		if folders[i].Name == name {
			return &folders[i], nil
		}
	}
	return nil, nil
}

func (r *Reconciler) createLibrary(ctx context.Context, lib config.Library) error {
	collectionType := library.Category(lib.ContentType).CollectionType()

	// The creation call carries a single path. Remaining folders are not
	// sent; downstream behavior depends on this, so warn instead of fixing.
	if len(lib.Folders) > 1 {
		r.logger.Warn("only the first folder is sent on creation; add the rest manually",
			"library", lib.Name,
			"unsent_folders", strings.Join(lib.Folders[1:], ", "))
	}

	r.logger.Info("creating library",
		"library", lib.Name,
		"collection_type", collectionType,
		"folder", lib.Folders[0])
	return r.client.CreateVirtualFolder(ctx, lib.Name, collectionType, lib.Folders[0])
}

func (r *Reconciler) applyLibraryOptions(ctx context.Context, itemID string, lib config.Library, log *slog.Logger) error {
	opts := library.BuildOptions(lib)

	if len(opts.TypeOptions) > 0 {
		to := opts.TypeOptions[0]
		if len(to.MetadataFetchers) > 0 {
			log.Info("metadata downloaders", "names", strings.Join(to.MetadataFetchers, ", "))
		}
		if len(to.ImageFetchers) > 0 {
			log.Info("image fetchers", "names", strings.Join(to.ImageFetchers, ", "))
		}
		if len(to.MetadataSavers) > 0 {
			log.Info("metadata savers", "names", strings.Join(to.MetadataSavers, ", "))
		}
	}
	if meta := lib.Advanced.Metadata; meta != nil {
		if meta.PreferredLanguage != nil {
			log.Info("metadata language", "language", *meta.PreferredLanguage)
		}
		if meta.Country != nil {
			log.Info("metadata country", "country", *meta.Country)
		}
	}

	if err := r.client.UpdateLibraryOptions(ctx, itemID, opts); err != nil {
		return fmt.Errorf("apply options: %w", err)
	}
	return nil
}
