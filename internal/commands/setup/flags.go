package setup

const (
	flagOverwrite      = "overwrite"
	flagOverwriteShort = "o"
	flagOverwriteUsage = "overwrite the settings file if it exists"
)
