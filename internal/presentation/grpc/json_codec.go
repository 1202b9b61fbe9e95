package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The service is called with a JSON codec until the proto definitions are
// generated; requests and responses marshal their DTO JSON tags directly.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
