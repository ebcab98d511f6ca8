package export

// Destination values for Config.Destination.
const (
	DestinationFile    = "file"
	DestinationStorage = "storage"
	DestinationBoth    = "both"
)

// Config holds configuration for the profile export.
type Config struct {
	// Enabled turns the export on or off.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// SortData sorts the profile like the game does before saving.
	SortData bool `mapstructure:"sort_data" default:"true"`
	// MergeStorage merges the sealed monster storage into the profile data
	// instead of saving the login profile on its own.
	MergeStorage bool `mapstructure:"merge_storage" default:"true"`
	// TimestampedCopy additionally saves a timestamped copy in a separate folder.
	TimestampedCopy bool `mapstructure:"timestamped_copy" default:"false"`
	// FilesPath is the local directory profiles are written to.
	FilesPath string `mapstructure:"files_path" default:"./exports"`
	// Destination selects where profiles are written (file, storage, both).
	Destination string `mapstructure:"destination" default:"file"`
	// StoragePrefix is the object prefix used for the storage destination.
	StoragePrefix string `mapstructure:"storage_prefix" default:"profiles"`
	// QueueSize is the number of pending writes buffered before ingestion waits.
	QueueSize int `mapstructure:"queue_size" default:"32"`
	// Index records every saved file in the database when one is connected.
	Index bool `mapstructure:"index" default:"false"`
}

// Options returns the behaviour toggles of the exporter.
func (c Config) Options() Options {
	return Options{
		Enabled:         c.Enabled,
		SortData:        c.SortData,
		MergeStorage:    c.MergeStorage,
		TimestampedCopy: c.TimestampedCopy,
	}
}

// IsValidDestination checks if the configured destination is valid.
func (c Config) IsValidDestination() bool {
	switch c.Destination {
	case DestinationFile, DestinationStorage, DestinationBoth:
		return true
	default:
		return false
	}
}

// Options are the behaviour toggles of an Exporter.
type Options struct {
	// Enabled turns all event handling on or off.
	Enabled bool
	// SortData applies the canonical ordering to login profiles.
	SortData bool
	// MergeStorage holds login profiles until the storage list arrives.
	MergeStorage bool
	// TimestampedCopy writes a timestamped copy on authenticated logins.
	TimestampedCopy bool
}

// DefaultOptions returns the toggles used when nothing is configured.
func DefaultOptions() Options {
	return Options{Enabled: true, SortData: true, MergeStorage: true}
}
