package builder

import (
	"blobdl/internal/domain/command"
	"blobdl/internal/domain/enums"
	"blobdl/internal/formats"
	"blobdl/internal/utils/logging"
)

// selectionArgs maps a selection to yt-dlp format flags for the media kind.
func selectionArgs(sel formats.Selection, media enums.MediaKind) []string {
	switch sel.Kind {
	case enums.SelectUniqueFormat:
		return []string{command.Format, sel.Value}

	case enums.SelectBestQuality:
		return []string{command.Format, pick(media, command.BestVideo, command.BestAudioOnly, command.BestVideoOnly)}

	case enums.SelectWorstQuality:
		return []string{command.Format, pick(media, command.WorstVideo, command.WorstAudioOnly, command.WorstVideoOnly)}

	case enums.SelectSmallestSize:
		return []string{
			command.FormatSort, command.SmallestSort,
			command.Format, pick(media, command.AnyVideoAudio, command.AnyAudio, command.AnyVideoOnly),
		}

	case enums.SelectConvertTo:
		if media == enums.MediaAudioOnly {
			return []string{command.Format, command.AnyAudio, command.ExtractAud, command.AudioFormat, sel.Value}
		}
		return []string{
			command.Format, pick(media, command.AnyVideoAudio, command.AnyAudio, command.AnyVideoOnly),
			command.RecodeVideo, sel.Value,
		}

	default:
		logging.E("Unknown selection kind %v, letting yt-dlp choose", sel.Kind)
		return nil
	}
}

func pick(media enums.MediaKind, video, audioOnly, videoOnly string) string {
	switch media {
	case enums.MediaAudioOnly:
		return audioOnly
	case enums.MediaVideoOnly:
		return videoOnly
	default:
		return video
	}
}
