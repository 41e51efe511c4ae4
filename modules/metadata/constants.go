package metadata

const (
	Version = "v0.1.0"
)
