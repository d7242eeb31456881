package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithDir is an option builder that sets the directory snapshots are stored in.
//
// Parameters:
//   - dir: the snapshot directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the directory option to a loader
func WithDir(dir string) LoaderBuilderOption {
	return func(l *loader) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithSnapshot is an option builder that pre-populates the snapshot cache.
//
// Parameters:
//   - name: the cache key, without extension
//   - data: the snapshot to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the snapshot option to a loader
func WithSnapshot(name string, data SceneData) LoaderBuilderOption {
	return func(l *loader) {
		l.sceneCache[name] = data.clone()
	}
}
