package wizard_test

import "blobdl/internal/command/builder"

func builderCommon() builder.Common {
	return builder.Common{Executable: "yt-dlp"}
}
