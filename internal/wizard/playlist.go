package wizard

import (
	"context"
	"fmt"

	"blobdl/internal/domain/consts"
	"blobdl/internal/domain/enums"
	"blobdl/internal/formats"
	"blobdl/internal/parsing"
	"blobdl/internal/utils/logging"
)

// playlistSelection offers one selection applied to every item: the per-item
// best and worst pseudo-options, then the formats every item shares.
func (w *Wizard) playlistSelection(ctx context.Context, target parsing.Target, media enums.MediaKind) (formats.Selection, error) {
	catalogs, err := w.batchCatalogs(ctx, target)
	if err != nil {
		return formats.Selection{}, err
	}

	opts := formats.Intersect(catalogs, media)
	logging.D(1, "%d items share %d selectable formats", len(catalogs), len(opts)-len(formats.PerItemOptions()))

	idx, err := w.Prompter.SelectOne(consts.PlaylistFormatPrompt, formats.Labels(opts), 0)
	if err != nil {
		return formats.Selection{}, err
	}
	return opts[idx].Selection, nil
}

// batchCatalogs parses one catalog per item. A malformed first item fails the
// step; later malformed items and items without formats are left out of the
// intersection.
func (w *Wizard) batchCatalogs(ctx context.Context, target parsing.Target) ([]formats.Catalog, error) {
	dump, err := w.fetch(ctx, target.URL, false)
	if err != nil {
		return nil, err
	}

	if !w.Structured {
		catalogs := formats.ParseTableDump(dump)
		if len(catalogs) == 0 {
			return nil, fmt.Errorf("%w: listing for %q holds no formats", ErrNoFormats, target.URL)
		}
		return catalogs, nil
	}

	roots := formats.Roots(dump)
	catalogs := make([]formats.Catalog, 0, len(roots))
	for i, root := range roots {
		c, err := formats.ParseJSON(root)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			logging.W("Skipping item %d of %d: %v", i+1, len(roots), err)
			continue
		}
		if c.Empty() {
			logging.W("Skipping item %d of %d: %q has no format information", i+1, len(roots), c.ItemID)
			continue
		}
		catalogs = append(catalogs, c)
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: listing for %q holds no items", ErrNoFormats, target.URL)
	}
	return catalogs, nil
}
