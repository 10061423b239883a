package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgPackDataConverter encodes workflow and activity arguments with msgpack.
// Field names follow the json tags so schema types such as
// AmbulanceAssignment keep the same keys in cadence history as in the API.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

func (c *MsgPackDataConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseJSONTag(true)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode argument %d (%v): %w", i, reflect.TypeOf(v), err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes values in the order they were encoded. It fails when the
// payload holds fewer values than requested.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtrs ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input)).UseJSONTag(true)
	for i, ptr := range valuePtrs {
		if err := dec.Decode(ptr); err != nil {
			return fmt.Errorf("decode argument %d (%v): %w", i, reflect.TypeOf(ptr), err)
		}
	}
	return nil
}
