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

type videoChoice int

const (
	choiceBest videoChoice = iota
	choiceSmallest
	choiceConvert
	choiceFormatList
)

// videoSelection offers the single-video choices. Conversion is only offered
// when ffmpeg is available.
func (w *Wizard) videoSelection(ctx context.Context, target parsing.Target, media enums.MediaKind) (formats.Selection, error) {
	choices := []videoChoice{choiceBest, choiceSmallest}
	labels := []string{consts.BestSingleOption, consts.SmallestSingleOption}

	if _, err := w.LookPath(consts.FFmpeg); err == nil {
		choices = append(choices, choiceConvert)
		labels = append(labels, consts.ConvertSingleOption)
	} else {
		logging.W(consts.FFmpegMissingWarn)
	}
	choices = append(choices, choiceFormatList)
	labels = append(labels, consts.FormatListOption)

	idx, err := w.Prompter.SelectOne(consts.VideoFormatPrompt, labels, 0)
	if err != nil {
		return formats.Selection{}, err
	}

	switch choices[idx] {
	case choiceBest:
		return formats.BestQuality(), nil
	case choiceSmallest:
		return formats.SmallestSize(), nil
	case choiceConvert:
		return w.convertSelection(media)
	default:
		return w.formatListSelection(ctx, target, media)
	}
}

func (w *Wizard) convertSelection(media enums.MediaKind) (formats.Selection, error) {
	exts := consts.VideoConvertExtensions[:]
	if media == enums.MediaAudioOnly {
		exts = consts.AudioConvertExtensions[:]
	}

	idx, err := w.Prompter.SelectOne(consts.ConvertPrompt, exts, 0)
	if err != nil {
		return formats.Selection{}, err
	}
	return formats.ConvertTo(exts[idx]), nil
}

// formatListSelection offers every format of the item eligible for media.
func (w *Wizard) formatListSelection(ctx context.Context, target parsing.Target, media enums.MediaKind) (formats.Selection, error) {
	catalog, err := w.itemCatalog(ctx, target)
	if err != nil {
		return formats.Selection{}, err
	}

	opts := catalog.Options(media)
	if len(opts) == 0 {
		return formats.Selection{}, fmt.Errorf("%w: %s offers no %s formats", ErrNoFormats, catalog.Heading(), media)
	}

	if h := catalog.Heading(); h != "" {
		logging.I("Formats for %s", h)
	}
	idx, err := w.Prompter.SelectOne(consts.FormatListPrompt, formats.Labels(opts), 0)
	if err != nil {
		return formats.Selection{}, err
	}
	return opts[idx].Selection, nil
}

// itemCatalog fetches the catalog of the requested item. Without an explicit
// playlist index the listing is restricted to the URL's own video.
func (w *Wizard) itemCatalog(ctx context.Context, target parsing.Target) (formats.Catalog, error) {
	dump, err := w.fetch(ctx, target.URL, target.ItemIndex == 0)
	if err != nil {
		return formats.Catalog{}, err
	}

	if w.Structured {
		if target.ItemIndex == 0 {
			root, err := formats.SelectRoot(dump, 1)
			if err != nil {
				return formats.Catalog{}, err
			}
			return formats.ParseJSON(root)
		}
		return formats.ItemAt(dump, target.ItemIndex)
	}

	items := formats.ParseTableItems(dump)
	if len(items) < target.Root() {
		return formats.Catalog{}, fmt.Errorf("%w: requested item %d, listing has %d",
			formats.ErrNoSuchRoot, target.Root(), len(items))
	}
	c := items[target.Root()-1]
	if c.Empty() {
		return formats.Catalog{}, fmt.Errorf("%w: item %d has no format information", ErrNoFormats, target.Root())
	}
	return c, nil
}
