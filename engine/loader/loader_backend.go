package loader

// loaderBackend defines the generic interface for encoding scene snapshots.
// Concrete implementations (e.g., jsonLoaderBackendImpl) handle format-specific details.
type loaderBackend interface {
	// Extension returns the file extension, including the dot, that the backend reads and writes.
	//
	// Returns:
	//   - string: the extension (e.g. ".json")
	Extension() string

	// Marshal encodes a snapshot.
	//
	// Parameters:
	//   - data: the snapshot to encode
	//
	// Returns:
	//   - []byte: the encoded document
	//   - error: error if encoding fails
	Marshal(data SceneData) ([]byte, error)

	// Unmarshal decodes a snapshot.
	//
	// Parameters:
	//   - raw: the encoded document
	//
	// Returns:
	//   - SceneData: the decoded snapshot
	//   - error: error if decoding fails
	Unmarshal(raw []byte) (SceneData, error)
}
