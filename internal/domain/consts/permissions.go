package consts

// Permissions for files and directories blobdl creates.
const (
	// World readable.
	PermsOutputDir = 0o755
	PermsLogDir    = 0o755
	PermsLogFile   = 0o644

	// Owner only.
	PermsCookieFile = 0o600
)
