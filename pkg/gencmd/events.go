package gencmd

type (
	// Sent to update the total artifact count.
	EventSetArtifactTotal int

	// Sent when an artifact write has started.
	EventWritingArtifact string

	// Sent when an artifact has been written, or when a fatal error occurs
	// during the write.
	EventWroteArtifact struct {
		Err      error
		Artifact string
	}

	// Sent when all work has completed.
	EventDone struct {
		Err error
	}
)
