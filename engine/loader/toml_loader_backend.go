package loader

import (
	"github.com/pelletier/go-toml/v2"
)

// tomlLoaderBackendImpl is a loaderBackend for TOML documents. Objects and parts are
// written as arrays of tables.
type tomlLoaderBackendImpl struct{}

var _ loaderBackend = &tomlLoaderBackendImpl{}

func newTOMLLoaderBackend() loaderBackend {
	return &tomlLoaderBackendImpl{}
}

func (b *tomlLoaderBackendImpl) Extension() string {
	return ".toml"
}

func (b *tomlLoaderBackendImpl) Marshal(data SceneData) ([]byte, error) {
	return toml.Marshal(data)
}

func (b *tomlLoaderBackendImpl) Unmarshal(raw []byte) (SceneData, error) {
	var data SceneData
	err := toml.Unmarshal(raw, &data)
	return data, err
}
