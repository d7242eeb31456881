package loader

import (
	"github.com/goccy/go-json"
)

// jsonLoaderBackendImpl is a loaderBackend for indented JSON documents.
type jsonLoaderBackendImpl struct{}

var _ loaderBackend = &jsonLoaderBackendImpl{}

func newJSONLoaderBackend() loaderBackend {
	return &jsonLoaderBackendImpl{}
}

func (b *jsonLoaderBackendImpl) Extension() string {
	return ".json"
}

func (b *jsonLoaderBackendImpl) Marshal(data SceneData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func (b *jsonLoaderBackendImpl) Unmarshal(raw []byte) (SceneData, error) {
	var data SceneData
	err := json.Unmarshal(raw, &data)
	return data, err
}
